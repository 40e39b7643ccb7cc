package repo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"teslamate-chat/testutil"
)

// beginTx opens a transaction on the test database and registers a rollback.
// Running every test inside a rolled-back transaction gives per-test
// isolation without any cleanup SQL.
func beginTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })
	return tx
}

// seedCar inserts a minimal cars row and returns its id.
func seedCar(t *testing.T, tx pgx.Tx, id int16, name string) int16 {
	t.Helper()
	_, err := tx.Exec(context.Background(),
		`INSERT INTO cars (id, vin, model, name, inserted_at) VALUES ($1, $2, '3', $3, $4)`,
		id, fmt.Sprintf("5YJ3E7EB1KF%06d", id), name, time.Now().UTC())
	require.NoError(t, err)
	return id
}

// seedAddress inserts an addresses row and returns its id.
func seedAddress(t *testing.T, tx pgx.Tx, label string) int {
	t.Helper()
	var id int
	err := tx.QueryRow(context.Background(),
		`INSERT INTO addresses (display_name) VALUES ($1) RETURNING id`, label).Scan(&id)
	require.NoError(t, err)
	return id
}

// driveRow holds the nullable drives columns a test wants to control.
type driveRow struct {
	carID          int16
	start          time.Time
	end            *time.Time
	distance       *float64
	durationMin    *int
	startAddressID *int
	endAddressID   *int
	startKm        *float64
	endKm          *float64
	startRangeKm   *float64
	endRangeKm     *float64
}

// seedDrive inserts a drives row and returns its id.
func seedDrive(t *testing.T, tx pgx.Tx, row driveRow) int {
	t.Helper()
	var id int
	err := tx.QueryRow(context.Background(), `
		INSERT INTO drives (car_id, start_date, end_date, distance, duration_min,
		                    start_address_id, end_address_id, start_km, end_km,
		                    start_ideal_range_km, end_ideal_range_km)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		row.carID, row.start, row.end, row.distance, row.durationMin,
		row.startAddressID, row.endAddressID, row.startKm, row.endKm,
		row.startRangeKm, row.endRangeKm).Scan(&id)
	require.NoError(t, err)
	return id
}

func ptr[T any](v T) *T { return &v }
