package handler

import "net/http"

// TotalDistance handles GET /api/total-distance.
// Supports ?car_id= and ?unit=km|mi (default km).
func (s *Server) TotalDistance(w http.ResponseWriter, r *http.Request) {
	carID, err := intParam(r, "car_id")
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	summary, err := s.drives.TotalDistance(r.Context(), carID, r.URL.Query().Get("unit"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// RecentDrives handles GET /api/recent-drives.
// Supports ?car_id= and ?limit= (default 10, capped at 100).
func (s *Server) RecentDrives(w http.ResponseWriter, r *http.Request) {
	carID, err := intParam(r, "car_id")
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	limit, err := intParam(r, "limit")
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	drives, err := s.drives.Recent(r.Context(), carID, limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, drives)
}

// DrivesByDate handles GET /api/drives-by-date.
// Requires ?start_date=; ?end_date= defaults to today. Both are inclusive
// calendar dates. An empty range is a 200 with zero totals, never a 404.
func (s *Server) DrivesByDate(w http.ResponseWriter, r *http.Request) {
	carID, err := intParam(r, "car_id")
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	from, err := dateParam(r, "start_date")
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	if from == nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", "start_date is required")
		return
	}
	to, err := dateParam(r, "end_date")
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	if to == nil {
		today := s.today()
		to = &today
	}

	result, err := s.drives.ByDateRange(r.Context(), carID, *from, *to)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
