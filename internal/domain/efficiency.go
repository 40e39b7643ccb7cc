package domain

// EfficiencySample is the raw aggregate the repo returns for the efficiency
// estimate: driven distance and ideal-range consumed over a window.
type EfficiencySample struct {
	TotalKm     float64
	RangeUsedKm float64
	TripCount   int
}

// EfficiencySummary is the derived energy-use estimate for a lookback window.
// The estimate scales ideal-range consumption by the configured battery
// capacity; it is an approximation, not a metered value.
type EfficiencySummary struct {
	PeriodDays      int     `json:"period_days"`
	TotalDistanceKm float64 `json:"total_distance_km"`
	AvgWhPerKm      float64 `json:"average_wh_per_km"`
	AvgKwhPer100Km  float64 `json:"average_kwh_per_100km"`
	TripCount       int     `json:"trip_count"`
}
