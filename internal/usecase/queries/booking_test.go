//go:build unit

package queries_test

import (
	"context"
	"testing"

	"cowork-booking/internal/domain/user"
	"cowork-booking/internal/infra"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/usecase/queries"
	"cowork-booking/tests/common/builder"
	queriesmock "cowork-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueriesGetByID(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	vendorID := uuid.New()
	o := builder.NewOfferingBuilder().WithVendor(vendorID).Build()
	b := builder.NewBookingBuilder().WithCustomer(owner).WithOffering(o.ID()).BuildDomain()

	tests := []struct {
		name         string
		actor        uuid.UUID
		role         user.Role
		loadOffering bool
		visible      bool
	}{
		{name: "owner", actor: owner, role: user.RoleCustomer, visible: true},
		{name: "another customer", actor: uuid.New(), role: user.RoleCustomer},
		{name: "offering's vendor", actor: vendorID, role: user.RoleVendor, loadOffering: true, visible: true},
		{name: "another vendor", actor: uuid.New(), role: user.RoleVendor, loadOffering: true},
		{name: "admin", actor: uuid.New(), role: user.RoleAdmin, visible: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockBookingReadStore(ctrl)
			offerings := queriesmock.NewMockOfferingReadStore(ctrl)
			store.EXPECT().FindByID(gomock.Any(), b.ID()).Return(b, nil)
			if tt.loadOffering {
				offerings.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)
			}

			got, err := queries.NewBookingQueries(store, offerings).GetByID(ctx, tt.actor, tt.role, b.ID())
			if !tt.visible {
				assert.ErrorIs(t, err, queries.ErrBookingNotFound)
				assert.True(t, errs.Is(err, errs.ErrNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.ID(), got.ID())
		})
	}

	t.Run("missing booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := queries.NewBookingQueries(store, queriesmock.NewMockOfferingReadStore(ctrl)).
			GetByID(ctx, owner, user.RoleCustomer, uuid.New())
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})
}
