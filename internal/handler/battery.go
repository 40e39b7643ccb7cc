package handler

import "net/http"

// BatteryStatus handles GET /api/battery-status.
// Supports ?car_id=. Returns 404 when no position has been recorded yet.
func (s *Server) BatteryStatus(w http.ResponseWriter, r *http.Request) {
	carID, err := intParam(r, "car_id")
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	status, err := s.battery.Latest(r.Context(), carID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}
