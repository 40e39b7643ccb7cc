// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the TeslaMate Chat API server
// and the tool adapter. Values are populated by Load from environment
// variables; none of them travel in the request protocol.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the TeslaMate Postgres connection string. Required.
	// The service only ever reads from this database.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"] so a chat frontend on any host can reach the API.
	// Set CORS_ORIGINS to a comma-separated list to restrict.
	CORSOrigins []string

	// RatePerMil is the default reimbursement rate in SEK per Swedish mil
	// used by the driving journal. Defaults to 25. Requests may override it.
	RatePerMil float64

	// JournalPaddingKm is the fixed distance in km added to each journal
	// day to approximate unlogged movement (parking maneuvers, charger
	// relocation). A heuristic, deliberately configurable. Defaults to 3.
	JournalPaddingKm float64

	// JournalTimeZone is the IANA zone used to partition drives into
	// calendar days. TeslaMate stores timestamps in UTC; journal days
	// follow the vehicle's local clock. Defaults to "Europe/Stockholm".
	JournalTimeZone string

	// BatteryCapacityKwh scales the ideal-range delta into energy for the
	// efficiency estimate. Defaults to 75.
	BatteryCapacityKwh float64

	// APIBaseURL is the Query Service base URL the tool adapter calls.
	// Defaults to "http://localhost:8080".
	APIBaseURL string

	// ToolHTTPTimeout bounds each outbound tool adapter call.
	// Defaults to 10s. No retries are attempted.
	ToolHTTPTimeout time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set, or any
// values that do not parse.
func Load() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSOrigins:     splitCSV(getEnv("CORS_ORIGINS", "*")),
		JournalTimeZone: getEnv("JOURNAL_TIME_ZONE", "Europe/Stockholm"),
		APIBaseURL:      getEnv("TESLAMATE_API_URL", "http://localhost:8080"),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	var err error
	if cfg.RatePerMil, err = getFloat("RATE_PER_MIL", 25); err != nil {
		return Config{}, err
	}
	if cfg.RatePerMil < 0 {
		return Config{}, fmt.Errorf("RATE_PER_MIL must not be negative, got %v", cfg.RatePerMil)
	}
	if cfg.JournalPaddingKm, err = getFloat("JOURNAL_PADDING_KM", 3); err != nil {
		return Config{}, err
	}
	if cfg.JournalPaddingKm < 0 {
		return Config{}, fmt.Errorf("JOURNAL_PADDING_KM must not be negative, got %v", cfg.JournalPaddingKm)
	}
	if cfg.BatteryCapacityKwh, err = getFloat("BATTERY_CAPACITY_KWH", 75); err != nil {
		return Config{}, err
	}
	if cfg.ToolHTTPTimeout, err = getDuration("TOOL_HTTP_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getFloat parses the environment variable named by key as a float64,
// returning fallback when it is unset.
func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", key, v)
	}
	return f, nil
}

// getDuration parses the environment variable named by key as a
// time.Duration (e.g. "10s", "1m"), returning fallback when it is unset.
func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
