package domain

import "time"

// BatteryStatus is the most recent battery snapshot for a car, built from
// the latest positions row joined with the cars table.
// Pointer fields are nil when TeslaMate has not recorded the reading.
type BatteryStatus struct {
	BatteryLevel       *int       `json:"battery_level_percent"`
	UsableBatteryLevel *int       `json:"usable_battery_level_percent"`
	RatedRangeKm       *float64   `json:"rated_range_km"`
	IdealRangeKm       *float64   `json:"ideal_range_km"`
	EstimatedRangeKm   *float64   `json:"estimated_range_km"`
	BatteryHeaterOn    bool       `json:"battery_heater_on"`
	LastUpdated        *time.Time `json:"last_updated"`
	CarName            string     `json:"car_name,omitempty"`
	CarModel           string     `json:"car_model,omitempty"`
}
