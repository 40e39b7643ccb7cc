package handler

import "net/http"

// Root handles GET /.
// Returns the service banner so a human poking the base URL sees something.
func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "TeslaMate Chat API Running",
		"version": Version,
	})
}

// Health handles GET /api/health.
// Pings the telemetry store; 503 when the database is unreachable.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "database_unavailable",
			"database error: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "connected",
	})
}
