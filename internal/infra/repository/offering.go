package repository

import (
	"context"

	"cowork-booking/internal/domain/money"
	"cowork-booking/internal/domain/offering"
	"cowork-booking/internal/infra"
	"cowork-booking/internal/infra/db"
	"cowork-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findOfferingByID = `
SELECT id, branch_id, service_id, vendor_id, name, price_per_unit, currency,
       price_unit, min_duration, max_duration, max_capacity, is_available
FROM service_offerings
WHERE id = $1`

type OfferingRepository struct {
	db db.DBTX
}

func NewOfferingRepository(db db.DBTX) *OfferingRepository {
	return &OfferingRepository{db: db}
}

func (r *OfferingRepository) FindByID(ctx context.Context, id uuid.UUID) (*offering.Offering, error) {
	var (
		row                 offeringRow
		minDur, maxDur      pgtype.Int4
		price               pgtype.Numeric
		currency, priceUnit string
	)
	err := r.db.QueryRow(ctx, findOfferingByID, id).Scan(
		&row.id, &row.branchID, &row.serviceID, &row.vendorID, &row.name,
		&price, &currency, &priceUnit, &minDur, &maxDur, &row.maxCapacity, &row.isAvailable,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service offering not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service offering", err)
	}

	amount, err := pgconv.DecimalFromNumeric(price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid offering price", err, infra.KindDBFailure)
	}
	cur, err := money.NewCurrency(currency)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid offering currency", err, infra.KindDBFailure)
	}
	pricePerUnit, err := money.New(amount, cur)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid offering price", err, infra.KindDBFailure)
	}
	unit, err := offering.NewPriceUnit(priceUnit)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid offering price unit", err, infra.KindDBFailure)
	}

	return offering.ReconstructOffering(
		row.id, row.branchID, row.serviceID, row.vendorID,
		row.name,
		pricePerUnit,
		unit,
		pgconv.IntPtrFromPgtype(minDur),
		pgconv.IntPtrFromPgtype(maxDur),
		row.maxCapacity,
		row.isAvailable,
	), nil
}

type offeringRow struct {
	id, branchID, serviceID, vendorID uuid.UUID
	name                              string
	maxCapacity                       int
	isAvailable                       bool
}
