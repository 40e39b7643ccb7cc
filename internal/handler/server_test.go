package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teslamate-chat/internal/domain"
	"teslamate-chat/internal/handler"
)

// Hand-written function-field mocks for every servicer interface.
// Tests set only the methods they expect to be called; an unset method
// panics, which surfaces unexpected calls immediately.

type mockCars struct {
	list func(ctx context.Context) ([]domain.Car, error)
}

func (m *mockCars) List(ctx context.Context) ([]domain.Car, error) { return m.list(ctx) }

type mockDrives struct {
	totalDistance func(ctx context.Context, carID *int, unit string) (domain.DistanceSummary, error)
	recent        func(ctx context.Context, carID *int, limit *int) (domain.RecentDrives, error)
	byDateRange   func(ctx context.Context, carID *int, from, to time.Time) (domain.DriveRange, error)
}

func (m *mockDrives) TotalDistance(ctx context.Context, carID *int, unit string) (domain.DistanceSummary, error) {
	return m.totalDistance(ctx, carID, unit)
}
func (m *mockDrives) Recent(ctx context.Context, carID *int, limit *int) (domain.RecentDrives, error) {
	return m.recent(ctx, carID, limit)
}
func (m *mockDrives) ByDateRange(ctx context.Context, carID *int, from, to time.Time) (domain.DriveRange, error) {
	return m.byDateRange(ctx, carID, from, to)
}

type mockBattery struct {
	latest func(ctx context.Context, carID *int) (domain.BatteryStatus, error)
}

func (m *mockBattery) Latest(ctx context.Context, carID *int) (domain.BatteryStatus, error) {
	return m.latest(ctx, carID)
}

type mockCharging struct {
	stats func(ctx context.Context, carID *int, days *int) (domain.ChargingStats, error)
}

func (m *mockCharging) Stats(ctx context.Context, carID *int, days *int) (domain.ChargingStats, error) {
	return m.stats(ctx, carID, days)
}

type mockEfficiency struct {
	summary func(ctx context.Context, carID *int, days *int) (domain.EfficiencySummary, error)
}

func (m *mockEfficiency) Summary(ctx context.Context, carID *int, days *int) (domain.EfficiencySummary, error) {
	return m.summary(ctx, carID, days)
}

type mockJournal struct {
	report func(ctx context.Context, carID *int, from, to time.Time, rate, padding *float64) (domain.JournalReport, error)
}

func (m *mockJournal) Report(ctx context.Context, carID *int, from, to time.Time, rate, padding *float64) (domain.JournalReport, error) {
	return m.report(ctx, carID, from, to, rate, padding)
}

type mockPinger struct {
	ping func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error { return m.ping(ctx) }

// deps bundles the mocks so tests override just what they need.
type deps struct {
	cars       *mockCars
	drives     *mockDrives
	battery    *mockBattery
	charging   *mockCharging
	efficiency *mockEfficiency
	journal    *mockJournal
	db         *mockPinger
}

func newDeps() *deps {
	return &deps{
		cars:       &mockCars{},
		drives:     &mockDrives{},
		battery:    &mockBattery{},
		charging:   &mockCharging{},
		efficiency: &mockEfficiency{},
		journal:    &mockJournal{},
		db:         &mockPinger{ping: func(context.Context) error { return nil }},
	}
}

func (d *deps) server() *handler.Server {
	return handler.NewServer(d.cars, d.drives, d.battery, d.charging, d.efficiency, d.journal, d.db)
}

// get runs a GET request through the full router and returns the recorder.
func get(t *testing.T, s *handler.Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)
	return rec
}
