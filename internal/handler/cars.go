package handler

import (
	"net/http"

	"teslamate-chat/internal/domain"
)

// Cars handles GET /api/cars.
func (s *Server) Cars(w http.ResponseWriter, r *http.Request) {
	cars, err := s.cars.List(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string][]domain.Car{"cars": cars})
}
