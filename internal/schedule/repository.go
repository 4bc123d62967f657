package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OccupiedRange is a booked or blocked absolute time range on one court.
type OccupiedRange struct {
	Start  time.Time
	End    time.Time
	Kind   IntervalKind
	Reason string
}

// Repository loads the occupancy data behind a day's slot grid.
type Repository interface {
	// Occupancy returns every booking (status != cancelled) and maintenance
	// block on the court intersecting [dayStart, dayEnd).
	Occupancy(ctx context.Context, courtID string, dayStart, dayEnd time.Time) ([]OccupiedRange, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Occupancy(ctx context.Context, courtID string, dayStart, dayEnd time.Time) ([]OccupiedRange, error) {
	var ranges []OccupiedRange

	// Bookings on the court, cancelled ones ignored
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("start_time", "end_time").
		From("public.bookings").
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.NotEq{"status": "cancelled"}).
		Where(squirrel.Lt{"start_time": dayEnd}).
		Where(squirrel.Gt{"end_time": dayStart}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build occupancy bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load booked ranges failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		rg := OccupiedRange{Kind: KindBooked}
		if err := rows.Scan(&rg.Start, &rg.End); err != nil {
			return nil, fmt.Errorf("scan booked range failed: %w", err)
		}
		ranges = append(ranges, rg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load booked ranges failed: %w", err)
	}

	// Maintenance blocks on the court
	query, args, err = psql.Select("start_time", "end_time", "reason").
		From("public.court_blocks").
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.Lt{"start_time": dayEnd}).
		Where(squirrel.Gt{"end_time": dayStart}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build occupancy blocks query failed: %w", err)
	}

	blockRows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load blocked ranges failed: %w", err)
	}
	defer blockRows.Close()

	for blockRows.Next() {
		rg := OccupiedRange{Kind: KindBlocked}
		if err := blockRows.Scan(&rg.Start, &rg.End, &rg.Reason); err != nil {
			return nil, fmt.Errorf("scan blocked range failed: %w", err)
		}
		ranges = append(ranges, rg)
	}
	if err := blockRows.Err(); err != nil {
		return nil, fmt.Errorf("load blocked ranges failed: %w", err)
	}

	return ranges, nil
}
