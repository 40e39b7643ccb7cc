package domain

// ChargingStats aggregates charging_processes rows over a lookback window.
// A window with no sessions is a valid zero-valued result, not an error.
type ChargingStats struct {
	PeriodDays       int     `json:"period_days"`
	Sessions         int     `json:"total_charging_sessions"`
	TotalEnergyKwh   float64 `json:"total_energy_kwh"`
	AvgEnergyKwh     float64 `json:"average_kwh_per_session"`
	TotalChargingHrs float64 `json:"total_charging_time_hours"`
	TotalCost        float64 `json:"total_cost"`
}
