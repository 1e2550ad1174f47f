//go:build unit

package queries_test

import (
	"context"
	"testing"

	"tembea/internal/domain/identity"
	"tembea/internal/usecase/queries"
	queriesmock "tembea/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	guestID := uuid.New()
	hostID := uuid.New()
	bookingID := uuid.New()

	view := &queries.BookingView{
		ID:      bookingID,
		GuestID: &guestID,
		HostID:  hostID,
		Status:  "confirmed",
	}

	newEnv := func(t *testing.T) (*queriesmock.MockBookingViewRepo, queries.BookingQueries) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockBookingViewRepo(ctrl)
		return repo, queries.NewBookingQueries(repo)
	}

	testCases := []struct {
		name       string
		actorID    uuid.UUID
		role       identity.Role
		expectDeny bool
	}{
		{name: "guest reads own booking", actorID: guestID, role: identity.RoleGuest},
		{name: "host reads booking on own listing", actorID: hostID, role: identity.RoleHost},
		{name: "admin reads anything", actorID: uuid.New(), role: identity.RoleAdmin},
		{name: "other guest denied", actorID: uuid.New(), role: identity.RoleGuest, expectDeny: true},
		{name: "other host denied", actorID: uuid.New(), role: identity.RoleHost, expectDeny: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, q := newEnv(t)
			repo.EXPECT().FindByID(ctx, bookingID).Return(view, nil)

			got, err := q.GetByID(ctx, tc.actorID, tc.role, bookingID)
			if tc.expectDeny {
				assert.ErrorIs(t, err, queries.ErrBookingAccessDenied)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bookingID, got.ID)
		})
	}

	t.Run("anonymous booking is visible only to host and admin", func(t *testing.T) {
		repo, q := newEnv(t)
		anon := &queries.BookingView{ID: bookingID, GuestID: nil, HostID: hostID}
		repo.EXPECT().FindByID(ctx, bookingID).Return(anon, nil)

		_, err := q.GetByID(ctx, uuid.New(), identity.RoleGuest, bookingID)
		assert.ErrorIs(t, err, queries.ErrBookingAccessDenied)
	})
}

func TestBookingQueries_ListLimits(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	testCases := []struct {
		name     string
		limit    int
		expected int32
	}{
		{name: "zero falls back to default", limit: 0, expected: 50},
		{name: "negative falls back to default", limit: -1, expected: 50},
		{name: "over the cap falls back to default", limit: 500, expected: 50},
		{name: "in range passes through", limit: 20, expected: 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := queriesmock.NewMockBookingViewRepo(ctrl)
			q := queries.NewBookingQueries(repo)

			repo.EXPECT().FindByGuestID(ctx, ownerID, tc.expected).Return(nil, nil)
			_, err := q.ListByGuest(ctx, ownerID, tc.limit)
			require.NoError(t, err)

			repo.EXPECT().FindByHostID(ctx, ownerID, tc.expected).Return(nil, nil)
			_, err = q.ListByHost(ctx, ownerID, tc.limit)
			require.NoError(t, err)
		})
	}
}
