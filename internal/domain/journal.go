package domain

import "time"

// KmPerMil converts kilometers to Swedish mil (1 mil = 10 km).
const KmPerMil = 10.0

// PurposeBusinessTrip is the journal purpose recorded for every entry.
// Swedish tax journals distinguish business from private driving; this
// service only reports business use.
const PurposeBusinessTrip = "Tjänsteresa"

// MultipleStops is the destination label used when a day's drives end in
// too many distinct places, or in none with a known address.
const MultipleStops = "Multiple stops"

// JournalEntry is one day of the driving journal: the day's drives in
// chronological order plus the derived totals and inferred destination.
type JournalEntry struct {
	Date        string `json:"date"`    // YYYY-MM-DD in the vehicle's time zone
	Weekday     string `json:"weekday"` // Swedish weekday name
	Start       string `json:"start"`
	Destination string `json:"destination"`
	Purpose     string `json:"purpose"`

	// DrivenKm is the sum of logged drive distances; JournalKm adds the
	// configured per-day padding for unlogged movement.
	DrivenKm         float64 `json:"distance_km_actual"`
	JournalKm        float64 `json:"distance_km_journal"`
	Mil              float64 `json:"distance_mil"`
	ReimbursementSek float64 `json:"reimbursement_sek"`

	NumTrips int     `json:"num_trips"`
	Drives   []Drive `json:"drives,omitempty"`
}

// JournalSummary holds the range totals of a journal report.
type JournalSummary struct {
	TotalDays             int     `json:"total_days"`
	TotalMil              float64 `json:"total_mil"`
	TotalKm               float64 `json:"total_km"`
	TotalReimbursementSek float64 `json:"total_reimbursement_sek"`
	RatePerMil            float64 `json:"rate_per_mil"`
	PaddingKmPerDay       float64 `json:"padding_km_per_day"`
}

// Period is an inclusive calendar date range.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DriveAnomaly flags a drive excluded from the journal because its data is
// not trustworthy (e.g. end timestamp before start). Anomalies are advisory;
// they never fail the report.
type DriveAnomaly struct {
	DriveID int    `json:"drive_id"`
	Reason  string `json:"reason"`
}

// JournalReport is the full driving journal for a date range.
// Entries are sorted by date ascending. Summary totals are sums over the
// entries; see service.BuildJournalReport for the invariants.
type JournalReport struct {
	Period    Period         `json:"period"`
	Entries   []JournalEntry `json:"entries"`
	Summary   JournalSummary `json:"summary"`
	Anomalies []DriveAnomaly `json:"anomalies,omitempty"`
}

var swedishWeekdays = [7]string{
	time.Sunday:    "Söndag",
	time.Monday:    "Måndag",
	time.Tuesday:   "Tisdag",
	time.Wednesday: "Onsdag",
	time.Thursday:  "Torsdag",
	time.Friday:    "Fredag",
	time.Saturday:  "Lördag",
}

// SwedishWeekday returns the Swedish name for t's weekday.
func SwedishWeekday(t time.Time) string {
	return swedishWeekdays[t.Weekday()]
}
