package domain

// Query window defaults and caps shared by the HTTP layer and the tool
// adapter. Caps keep a single request from scanning years of telemetry.
const (
	DefaultRowLimit = 10
	MaxRowLimit     = 100

	DefaultLookbackDays = 30
	MaxLookbackDays     = 3650
)

// ClampRowLimit resolves an optional row-limit query parameter.
// Nil or out-of-range values fall back to DefaultRowLimit; values above
// MaxRowLimit are capped.
func ClampRowLimit(raw *int) int {
	if raw == nil || *raw < 1 {
		return DefaultRowLimit
	}
	if *raw > MaxRowLimit {
		return MaxRowLimit
	}
	return *raw
}

// ClampLookbackDays resolves an optional lookback-window parameter in days.
// Nil or out-of-range values fall back to DefaultLookbackDays; values above
// MaxLookbackDays are capped.
func ClampLookbackDays(raw *int) int {
	if raw == nil || *raw < 1 {
		return DefaultLookbackDays
	}
	if *raw > MaxLookbackDays {
		return MaxLookbackDays
	}
	return *raw
}
