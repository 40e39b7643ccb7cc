// Package domain contains the core data types for the TeslaMate Chat API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler, tools).
//
// All records are read-only views over the TeslaMate schema; nothing in this
// service ever writes them back.
package domain

import "time"

// Car mirrors a row of the TeslaMate cars table.
// TeslaMate uses a smallint primary key, not a UUID.
type Car struct {
	ID          int16      `json:"id"`
	VIN         string     `json:"vin,omitempty"`
	Model       string     `json:"model,omitempty"`
	TrimBadging string     `json:"trim_badging,omitempty"`
	Name        string     `json:"name,omitempty"`
	Efficiency  *float64   `json:"efficiency,omitempty"` // kWh/km rating, nil until TeslaMate learns it
	InsertedAt  time.Time  `json:"inserted_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
