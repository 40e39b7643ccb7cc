package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"teslamate-chat/internal/domain"
)

// DrivingJournal handles GET /api/driving-journal.
// Requires ?start_date=; ?end_date= defaults to today. Optional overrides:
// ?rate_per_mil=, ?padding_km=, ?car_id=. With ?format=csv the entries are
// rendered as a CSV download instead of JSON.
func (s *Server) DrivingJournal(w http.ResponseWriter, r *http.Request) {
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
	rate, err := floatParam(r, "rate_per_mil")
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	padding, err := floatParam(r, "padding_km")
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "csv" {
		respondError(w, http.StatusUnprocessableEntity, "validation_error",
			fmt.Sprintf("format must be json or csv, got %q", format))
		return
	}

	report, err := s.journal.Report(r.Context(), carID, *from, *to, rate, padding)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	if format == "csv" {
		writeJournalCSV(w, report)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// writeJournalCSV renders the journal entries as a CSV download, one row per
// day plus a trailing totals row.
func writeJournalCSV(w http.ResponseWriter, report domain.JournalReport) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=korjournal_%s_%s.csv", report.Period.Start, report.Period.End))

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{
		"date", "weekday", "start", "destination", "purpose",
		"distance_km_actual", "distance_km_journal", "distance_mil",
		"reimbursement_sek", "num_trips",
	})
	for _, e := range report.Entries {
		_ = cw.Write([]string{
			e.Date, e.Weekday, e.Start, e.Destination, e.Purpose,
			formatFloat(e.DrivenKm), formatFloat(e.JournalKm), formatFloat(e.Mil),
			formatFloat(e.ReimbursementSek), strconv.Itoa(e.NumTrips),
		})
	}
	_ = cw.Write([]string{
		"total", "", "", "", "",
		"", formatFloat(report.Summary.TotalKm), formatFloat(report.Summary.TotalMil),
		formatFloat(report.Summary.TotalReimbursementSek), strconv.Itoa(report.Summary.TotalDays),
	})
	cw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// today returns the current date at midnight UTC, matching the granularity
// of the date query parameters.
func (s *Server) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
