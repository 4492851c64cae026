package commands

//go:generate mockgen -source=approval.go -destination=../../../tests/mock/commands/approval.go -package=commandsmock

import (
	"context"
	"log/slog"

	"cowork-booking/internal/domain/approval"
	"cowork-booking/internal/infra"
	"cowork-booking/internal/pkg/clock"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ApprovalCommands interface {
	Submit(ctx context.Context, vendorID uuid.UUID, in SubmitApprovalInput) (*approval.Request, error)
	Approve(ctx context.Context, id, reviewerID uuid.UUID, notes string) (*approval.Request, error)
	Reject(ctx context.Context, id, reviewerID uuid.UUID, notes string) (*approval.Request, error)
}

type approvalCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier NotificationSender
	clock    clock.Clock
}

func NewApprovalCommands(uow shared.UnitOfWork, notifier NotificationSender, clock clock.Clock) ApprovalCommands {
	return &approvalCommandsImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clock,
	}
}

func (u *approvalCommandsImpl) Submit(ctx context.Context, vendorID uuid.UUID, in SubmitApprovalInput) (*approval.Request, error) {
	requestType, err := approval.NewRequestType(in.RequestType)
	if err != nil {
		return nil, err
	}
	req, err := approval.NewRequest(
		vendorID,
		in.BranchID,
		in.ServiceID,
		requestType,
		in.OldValue,
		in.NewValue,
		in.Reason,
		u.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		owner, err := tx.Approvals().BranchVendor(ctx, in.BranchID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBranchNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if owner != vendorID {
			return ErrForbidden
		}
		if err := tx.Approvals().Save(ctx, req); err != nil {
			// the branch and vendor are known to exist at this point
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrServiceNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "approval request submitted",
		slog.String("approval_id", req.ID().String()),
		slog.String("vendor_id", vendorID.String()),
		slog.String("type", requestType.String()))
	return req, nil
}

// Approve records the decision only. Applying the requested change to the
// catalogue is done by the catalogue owner.
func (u *approvalCommandsImpl) Approve(ctx context.Context, id, reviewerID uuid.UUID, notes string) (*approval.Request, error) {
	return u.review(ctx, id, true, func(r *approval.Request) error {
		return r.Approve(reviewerID, notes, u.clock.Now())
	})
}

func (u *approvalCommandsImpl) Reject(ctx context.Context, id, reviewerID uuid.UUID, notes string) (*approval.Request, error) {
	return u.review(ctx, id, false, func(r *approval.Request) error {
		return r.Reject(reviewerID, notes, u.clock.Now())
	})
}

func (u *approvalCommandsImpl) review(ctx context.Context, id uuid.UUID, approved bool, apply func(*approval.Request) error) (*approval.Request, error) {
	var reviewed *approval.Request
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Approvals().FindByIDForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrApprovalNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := apply(r); err != nil {
			return err
		}
		if err := tx.Approvals().Save(ctx, r); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		reviewed = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "approval request reviewed",
		slog.String("approval_id", id.String()),
		slog.String("status", reviewed.Status().String()))

	u.notifier.SendApprovalResult(ctx, reviewed.VendorID(), reviewed, approved, reviewed.ReviewNotes())
	return reviewed, nil
}
