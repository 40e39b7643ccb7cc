// Package handler implements the HTTP handlers for the TeslaMate Chat API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (cars.go, journal.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"

	"teslamate-chat/internal/domain"
)

// Version is reported by the root endpoint.
const Version = "2.0"

// CarServicer defines the car operations the handler depends on.
// Defining interfaces here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type CarServicer interface {
	List(ctx context.Context) ([]domain.Car, error)
}

// DriveServicer defines the drive listing and distance operations.
type DriveServicer interface {
	TotalDistance(ctx context.Context, carID *int, unit string) (domain.DistanceSummary, error)
	Recent(ctx context.Context, carID *int, limit *int) (domain.RecentDrives, error)
	ByDateRange(ctx context.Context, carID *int, from, to time.Time) (domain.DriveRange, error)
}

// BatteryServicer defines the battery snapshot operation.
type BatteryServicer interface {
	Latest(ctx context.Context, carID *int) (domain.BatteryStatus, error)
}

// ChargingServicer defines the charging aggregate operation.
type ChargingServicer interface {
	Stats(ctx context.Context, carID *int, days *int) (domain.ChargingStats, error)
}

// EfficiencyServicer defines the consumption estimate operation.
type EfficiencyServicer interface {
	Summary(ctx context.Context, carID *int, days *int) (domain.EfficiencySummary, error)
}

// JournalServicer defines the driving journal operation.
type JournalServicer interface {
	Report(ctx context.Context, carID *int, from, to time.Time, rate, padding *float64) (domain.JournalReport, error)
}

// Pinger reports whether the telemetry store is reachable.
// *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server implements all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	cars       CarServicer
	drives     DriveServicer
	battery    BatteryServicer
	charging   ChargingServicer
	efficiency EfficiencyServicer
	journal    JournalServicer
	db         Pinger

	// now is injectable so date-default behavior is testable.
	now func() time.Time
}

// NewServer constructs the Server with all its dependencies.
func NewServer(cars CarServicer, drives DriveServicer, battery BatteryServicer,
	charging ChargingServicer, efficiency EfficiencyServicer, journal JournalServicer,
	db Pinger) *Server {
	return &Server{
		cars:       cars,
		drives:     drives,
		battery:    battery,
		charging:   charging,
		efficiency: efficiency,
		journal:    journal,
		db:         db,
		now:        time.Now,
	}
}

// Routes returns the router with every endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", s.Root)
	r.Get("/api/health", s.Health)
	r.Get("/api/cars", s.Cars)
	r.Get("/api/total-distance", s.TotalDistance)
	r.Get("/api/battery-status", s.BatteryStatus)
	r.Get("/api/charging-stats", s.ChargingStats)
	r.Get("/api/recent-drives", s.RecentDrives)
	r.Get("/api/drives-by-date", s.DrivesByDate)
	r.Get("/api/driving-journal", s.DrivingJournal)
	r.Get("/api/efficiency", s.Efficiency)
	return r
}
