package repository

import (
	"context"
	"time"

	"cowork-booking/internal/domain/approval"
	"cowork-booking/internal/infra"
	"cowork-booking/internal/infra/db"
	"cowork-booking/internal/pkg/pgconv"
	"cowork-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const approvalColumns = `
id, vendor_id, branch_id, service_id, request_type, old_value, new_value,
reason, status, created_at, reviewed_by, review_notes, reviewed_at`

const findBranchVendor = `SELECT vendor_id FROM branches WHERE id = $1`

const findApprovalForUpdate = `SELECT` + approvalColumns + ` FROM approval_requests WHERE id = $1 FOR UPDATE`

const saveApproval = `
INSERT INTO approval_requests (` + approvalColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (id) DO UPDATE
SET status = EXCLUDED.status,
    reviewed_by = EXCLUDED.reviewed_by,
    review_notes = EXCLUDED.review_notes,
    reviewed_at = EXCLUDED.reviewed_at`

const approvalViewSelect = `
SELECT ar.id, ar.vendor_id, v.name, ar.branch_id, b.name, ar.service_id, s.name,
       ar.request_type, ar.old_value, ar.new_value, ar.reason, ar.status,
       ar.created_at, ar.reviewed_by, ar.review_notes, ar.reviewed_at
FROM approval_requests ar
JOIN vendors v ON v.id = ar.vendor_id
JOIN branches b ON b.id = ar.branch_id
LEFT JOIN services s ON s.id = ar.service_id`

const findApprovalViewsByStatus = approvalViewSelect + `
WHERE ar.status = $1
ORDER BY ar.created_at ASC, ar.id ASC`

const findApprovalViewsByVendor = approvalViewSelect + `
WHERE ar.vendor_id = $1
ORDER BY ar.created_at DESC, ar.id DESC`

type ApprovalRepository struct {
	db db.DBTX
}

func NewApprovalRepository(db db.DBTX) *ApprovalRepository {
	return &ApprovalRepository{db: db}
}

func (r *ApprovalRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*approval.Request, error) {
	req, err := scanApproval(r.db.QueryRow(ctx, findApprovalForUpdate, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("approval request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find approval request", err)
	}
	return req, nil
}

func (r *ApprovalRepository) Save(ctx context.Context, req *approval.Request) error {
	_, err := r.db.Exec(ctx, saveApproval,
		req.ID(),
		req.VendorID(),
		req.BranchID(),
		pgconv.UUIDPtrToPgtype(req.ServiceID()),
		req.RequestType().String(),
		pgconv.StringPtrToPgtype(req.OldValue()),
		req.NewValue(),
		pgconv.StringPtrToPgtype(req.Reason()),
		req.Status().String(),
		req.CreatedAt(),
		pgconv.UUIDPtrToPgtype(req.ReviewedBy()),
		pgconv.StringPtrToPgtype(req.ReviewNotes()),
		pgconv.TimePtrToPgtype(req.ReviewedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save approval request", err)
	}
	return nil
}

func (r *ApprovalRepository) BranchVendor(ctx context.Context, branchID uuid.UUID) (uuid.UUID, error) {
	var vendorID uuid.UUID
	if err := r.db.QueryRow(ctx, findBranchVendor, branchID).Scan(&vendorID); err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("branch not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find branch", err)
	}
	return vendorID, nil
}

func (r *ApprovalRepository) FindByStatus(ctx context.Context, status approval.Status) ([]*queries.ApprovalView, error) {
	return r.findViews(ctx, findApprovalViewsByStatus, status.String())
}

func (r *ApprovalRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*queries.ApprovalView, error) {
	return r.findViews(ctx, findApprovalViewsByVendor, vendorID)
}

func (r *ApprovalRepository) findViews(ctx context.Context, query string, arg any) ([]*queries.ApprovalView, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approval requests", err)
	}
	defer rows.Close()

	out := make([]*queries.ApprovalView, 0)
	for rows.Next() {
		var (
			v                             queries.ApprovalView
			serviceID, reviewedBy         pgtype.UUID
			serviceName, oldValue, reason pgtype.Text
			reviewNotes                   pgtype.Text
			reviewedAt                    pgtype.Timestamptz
		)
		if err := rows.Scan(
			&v.ID, &v.VendorID, &v.VendorName, &v.BranchID, &v.BranchName, &serviceID, &serviceName,
			&v.RequestType, &oldValue, &v.NewValue, &reason, &v.Status,
			&v.CreatedAt, &reviewedBy, &reviewNotes, &reviewedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan approval request", err)
		}
		v.ServiceID = pgconv.UUIDPtrFromPgtype(serviceID)
		v.ServiceName = pgconv.StringPtrFromPgtype(serviceName)
		v.OldValue = pgconv.StringPtrFromPgtype(oldValue)
		v.Reason = pgconv.StringPtrFromPgtype(reason)
		v.ReviewedBy = pgconv.UUIDPtrFromPgtype(reviewedBy)
		v.ReviewNotes = pgconv.StringPtrFromPgtype(reviewNotes)
		v.ReviewedAt = pgconv.TimePtrFromPgtype(reviewedAt)
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate approval requests", err)
	}
	return out, nil
}

func scanApproval(row pgx.Row) (*approval.Request, error) {
	var (
		id, vendorID, branchID  uuid.UUID
		serviceID, reviewedBy   pgtype.UUID
		requestType, newValue   string
		status                  string
		oldValue, reason, notes pgtype.Text
		createdAt               time.Time
		reviewedAt              pgtype.Timestamptz
	)
	if err := row.Scan(
		&id, &vendorID, &branchID, &serviceID, &requestType, &oldValue, &newValue,
		&reason, &status, &createdAt, &reviewedBy, &notes, &reviewedAt,
	); err != nil {
		return nil, err
	}

	rt, err := approval.NewRequestType(requestType)
	if err != nil {
		return nil, err
	}
	st, err := approval.NewStatus(status)
	if err != nil {
		return nil, err
	}

	return approval.ReconstructRequest(
		id, vendorID, branchID,
		pgconv.UUIDPtrFromPgtype(serviceID),
		rt,
		pgconv.StringPtrFromPgtype(oldValue),
		newValue,
		pgconv.StringPtrFromPgtype(reason),
		st,
		createdAt,
		pgconv.UUIDPtrFromPgtype(reviewedBy),
		pgconv.StringPtrFromPgtype(notes),
		pgconv.TimePtrFromPgtype(reviewedAt),
	), nil
}
