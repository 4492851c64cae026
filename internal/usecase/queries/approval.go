package queries

//go:generate mockgen -source=approval.go -destination=../../../tests/mock/queries/approval.go -package=queriesmock

import (
	"context"

	"cowork-booking/internal/domain/approval"

	"github.com/google/uuid"
)

type ApprovalQueries interface {
	FindByStatus(ctx context.Context, status approval.Status) ([]*ApprovalView, error)
	FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*ApprovalView, error)
}

type ApprovalReadStore interface {
	FindByStatus(ctx context.Context, status approval.Status) ([]*ApprovalView, error)
	FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*ApprovalView, error)
}

type approvalQueriesImpl struct {
	readStore ApprovalReadStore
}

func NewApprovalQueries(readStore ApprovalReadStore) ApprovalQueries {
	return &approvalQueriesImpl{readStore: readStore}
}

func (q *approvalQueriesImpl) FindByStatus(ctx context.Context, status approval.Status) ([]*ApprovalView, error) {
	return q.readStore.FindByStatus(ctx, status)
}

func (q *approvalQueriesImpl) FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*ApprovalView, error) {
	return q.readStore.FindByVendor(ctx, vendorID)
}
