package queries

import (
	"context"

	"tembea/internal/domain/identity"
	"tembea/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingAccessDenied = errs.New("booking access denied")

type BookingQueries interface {
	// GetByID enforces visibility: guests see their own bookings, hosts see
	// bookings on their own listings, admins see everything.
	GetByID(ctx context.Context, actorID uuid.UUID, role identity.Role, id uuid.UUID) (*BookingView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID, limit int) ([]*BookingListItem, error)
	ListByHost(ctx context.Context, hostID uuid.UUID, limit int) ([]*BookingListItem, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByGuestID(ctx context.Context, guestID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByHostID(ctx context.Context, hostID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, role identity.Role, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if role == identity.RoleAdmin {
		return view, nil
	}
	if view.GuestID != nil && *view.GuestID == actorID {
		return view, nil
	}
	if view.HostID == actorID {
		return view, nil
	}

	return nil, errs.Mark(errs.New("actor may not read this booking"), ErrBookingAccessDenied)
}

func (q *bookingQueriesImpl) ListByGuest(ctx context.Context, guestID uuid.UUID, limit int) ([]*BookingListItem, error) {
	return q.repo.FindByGuestID(ctx, guestID, normalizeLimit(limit))
}

func (q *bookingQueriesImpl) ListByHost(ctx context.Context, hostID uuid.UUID, limit int) ([]*BookingListItem, error) {
	return q.repo.FindByHostID(ctx, hostID, normalizeLimit(limit))
}

func normalizeLimit(limit int) int32 {
	if limit <= 0 || limit > 100 {
		return 50
	}
	return int32(limit)
}
