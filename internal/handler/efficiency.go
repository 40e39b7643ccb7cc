package handler

import "net/http"

// Efficiency handles GET /api/efficiency.
// Supports ?car_id= and ?days= (default 30).
func (s *Server) Efficiency(w http.ResponseWriter, r *http.Request) {
	carID, err := intParam(r, "car_id")
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	days, err := intParam(r, "days")
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	summary, err := s.efficiency.Summary(r.Context(), carID, days)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
