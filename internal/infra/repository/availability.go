package repository

import (
	"context"
	"time"

	"cowork-booking/internal/domain/availability"
	"cowork-booking/internal/infra"
	"cowork-booking/internal/infra/db"
	"cowork-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const countReservableDays = `
SELECT count(*)
FROM availability
WHERE service_offering_id = $1
  AND date = ANY($2::date[])
  AND NOT is_blocked
  AND available_units >= $3`

// All-or-nothing: the update only runs when every requested day is eligible.
// FOR UPDATE re-checks the predicate against rows committed by concurrent
// writers, so the counter can never go below zero.
const decreaseUnits = `
WITH eligible AS (
    SELECT date
    FROM availability
    WHERE service_offering_id = $1
      AND date = ANY($2::date[])
      AND NOT is_blocked
      AND available_units >= $3
    FOR UPDATE
), total AS (
    SELECT count(*) AS n FROM eligible
)
UPDATE availability a
SET available_units = a.available_units - $3,
    updated_at = now()
FROM total
WHERE a.service_offering_id = $1
  AND a.date IN (SELECT date FROM eligible)
  AND total.n = $4`

const increaseUnits = `
UPDATE availability a
SET available_units = LEAST(a.available_units + $3, o.max_capacity),
    updated_at = now()
FROM service_offerings o
WHERE o.id = a.service_offering_id
  AND a.service_offering_id = $1
  AND a.date = ANY($2::date[])`

const upsertDay = `
INSERT INTO availability (service_offering_id, date, available_units, is_blocked)
VALUES ($1, $2, $3, $4)
ON CONFLICT (service_offering_id, date) DO UPDATE
SET available_units = EXCLUDED.available_units,
    is_blocked = EXCLUDED.is_blocked,
    updated_at = now()`

const findDays = `
SELECT service_offering_id, date, available_units, is_blocked
FROM availability
WHERE service_offering_id = $1
  AND date = ANY($2::date[])
ORDER BY date`

type AvailabilityRepository struct {
	db db.DBTX
}

func NewAvailabilityRepository(db db.DBTX) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) CheckAvailability(ctx context.Context, offeringID uuid.UUID, days []time.Time, quantity int) (bool, error) {
	if len(days) == 0 {
		return false, nil
	}
	var n int
	err := r.db.QueryRow(ctx, countReservableDays, offeringID, pgconv.DatesToPgtype(days), quantity).Scan(&n)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check availability", err)
	}
	return n == len(days), nil
}

func (r *AvailabilityRepository) DecreaseUnits(ctx context.Context, offeringID uuid.UUID, days []time.Time, quantity int) (bool, error) {
	if len(days) == 0 {
		return false, nil
	}
	tag, err := r.db.Exec(ctx, decreaseUnits, offeringID, pgconv.DatesToPgtype(days), quantity, len(days))
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrease available units", err)
	}
	return tag.RowsAffected() == int64(len(days)), nil
}

func (r *AvailabilityRepository) IncreaseUnits(ctx context.Context, offeringID uuid.UUID, days []time.Time, quantity int) error {
	if len(days) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, increaseUnits, offeringID, pgconv.DatesToPgtype(days), quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to increase available units", err)
	}
	return nil
}

func (r *AvailabilityRepository) UpsertDay(ctx context.Context, rec *availability.Record) error {
	_, err := r.db.Exec(ctx, upsertDay,
		rec.OfferingID(),
		pgconv.DateToPgtype(rec.Date()),
		rec.AvailableUnits(),
		rec.IsBlocked(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert availability day", err)
	}
	return nil
}

func (r *AvailabilityRepository) FindDays(ctx context.Context, offeringID uuid.UUID, days []time.Time) ([]*availability.Record, error) {
	rows, err := r.db.Query(ctx, findDays, offeringID, pgconv.DatesToPgtype(days))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load availability days", err)
	}
	defer rows.Close()

	var out []*availability.Record
	for rows.Next() {
		var (
			id      uuid.UUID
			date    pgtype.Date
			units   int
			blocked bool
		)
		if err := rows.Scan(&id, &date, &units, &blocked); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability day", err)
		}
		rec, err := availability.NewRecord(id, date.Time, units, blocked)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid availability row", err, infra.KindDBFailure)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate availability days", err)
	}
	return out, nil
}
