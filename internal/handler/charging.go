package handler

import "net/http"

// ChargingStats handles GET /api/charging-stats.
// Supports ?car_id= and ?days= (default 30).
func (s *Server) ChargingStats(w http.ResponseWriter, r *http.Request) {
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

	stats, err := s.charging.Stats(r.Context(), carID, days)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
