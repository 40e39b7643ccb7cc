package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"

	"teslamate-chat/internal/domain"
)

// CarRepo defines the read operations over the TeslaMate cars table.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows it to be unit-tested with a mock.
type CarRepo interface {
	// List returns all cars ordered by id.
	List(ctx context.Context) ([]domain.Car, error)
}

// pgCarRepo is the Postgres implementation of CarRepo.
type pgCarRepo struct {
	db db
}

// NewCarRepo constructs a CarRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewCarRepo(db db) CarRepo {
	return &pgCarRepo{db: db}
}

// List returns every car TeslaMate tracks. Text columns are nullable in the
// TeslaMate schema; they come back as empty strings here.
func (r *pgCarRepo) List(ctx context.Context) ([]domain.Car, error) {
	const q = `
		SELECT id, COALESCE(vin, ''), COALESCE(model, ''),
		       COALESCE(trim_badging, ''), COALESCE(name, ''),
		       efficiency::float8, inserted_at, updated_at
		FROM cars
		ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.CarRepo.List: %w", err)
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var (
			c          domain.Car
			efficiency pgtype.Float8
			updatedAt  pgtype.Timestamptz
		)
		err := rows.Scan(&c.ID, &c.VIN, &c.Model, &c.TrimBadging, &c.Name,
			&efficiency, &c.InsertedAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("repo.CarRepo.List: scan: %w", err)
		}
		if efficiency.Valid {
			e := efficiency.Float64
			c.Efficiency = &e
		}
		if updatedAt.Valid {
			u := updatedAt.Time
			c.UpdatedAt = &u
		}
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CarRepo.List: rows: %w", err)
	}

	return cars, nil
}
