package domain

import "time"

// UnknownLocation is the documented placeholder substituted for a missing
// address label. Drives recorded before geocoding completes have no
// start/end address row to join against.
const UnknownLocation = "Unknown"

// Drive represents one drive from the TeslaMate drives table, joined with
// the addresses table for human-readable start/end labels.
type Drive struct {
	ID          int        `json:"id"`
	CarID       int16      `json:"car_id"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"` // nil while a drive is still in progress
	DistanceKm  float64    `json:"distance_km"`
	DurationMin int        `json:"duration_min"`

	StartLocation string `json:"start_location"`
	EndLocation   string `json:"end_location"`

	// Odometer readings in km. Distance falls back to EndKm−StartKm when
	// TeslaMate has not populated the distance column.
	StartKm *float64 `json:"start_km,omitempty"`
	EndKm   *float64 `json:"end_km,omitempty"`

	// Ideal-range bookkeeping used by the efficiency estimate.
	StartIdealRangeKm *float64 `json:"start_ideal_range_km,omitempty"`
	EndIdealRangeKm   *float64 `json:"end_ideal_range_km,omitempty"`
	RangeUsedKm       *float64 `json:"range_used_km,omitempty"`
}

// DistanceSummary is the lifetime distance aggregate for one car (or all cars).
type DistanceSummary struct {
	TotalDistance float64 `json:"total_distance"`
	Unit          string  `json:"unit"` // "kilometer" or "miles"
	TotalTrips    int     `json:"total_trips"`
}

// DriveRange is the response envelope for a date-bounded drive listing.
// Dates are inclusive calendar days in YYYY-MM-DD form.
type DriveRange struct {
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
	Drives           []Drive `json:"drives"`
	Count            int     `json:"count"`
	TotalDistanceKm  float64 `json:"total_distance_km"`
	TotalDurationMin int     `json:"total_duration_min"`
}

// RecentDrives is the response envelope for the latest-drives listing.
type RecentDrives struct {
	Drives []Drive `json:"recent_drives"`
	Count  int     `json:"count"`
}
