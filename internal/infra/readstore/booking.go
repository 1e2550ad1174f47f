package readstore

import (
	"context"
	"errors"

	"tembea/internal/infra"
	"tembea/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db infra.DBTX
}

func NewBookingReadStore(db infra.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.item_id, l.name, l.host_id, b.booking_type, b.guest_id,
		       b.guest_name, b.guest_phone, b.guest_email, b.slots_booked,
		       b.visit_date, b.total_amount_cents, b.status, b.payment_status,
		       b.payment_method, b.mpesa_receipt, b.refund_due,
		       b.booking_details, b.created_at, b.updated_at
		FROM bookings b
		JOIN listings l ON l.id = b.item_id
		WHERE b.id = $1
	`

	view := &queries.BookingView{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.ItemID,
		&view.ItemName,
		&view.HostID,
		&view.BookingType,
		&view.GuestID,
		&view.GuestName,
		&view.GuestPhone,
		&view.GuestEmail,
		&view.SlotsBooked,
		&view.VisitDate,
		&view.TotalAmountCents,
		&view.Status,
		&view.PaymentStatus,
		&view.PaymentMethod,
		&view.MpesaReceipt,
		&view.RefundDue,
		&view.Details,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return view, nil
}

const bookingListColumns = `
	b.id, b.item_id, l.name, b.visit_date, b.slots_booked,
	b.total_amount_cents, b.status, b.payment_status, b.payment_method,
	b.created_at
`

func (r *BookingReadStore) FindByGuestID(ctx context.Context, guestID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	query := `
		SELECT ` + bookingListColumns + `
		FROM bookings b
		JOIN listings l ON l.id = b.item_id
		WHERE b.guest_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, guestID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by guest", err)
	}
	defer rows.Close()

	return scanBookingList(rows)
}

func (r *BookingReadStore) FindByHostID(ctx context.Context, hostID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	query := `
		SELECT ` + bookingListColumns + `
		FROM bookings b
		JOIN listings l ON l.id = b.item_id
		WHERE l.host_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, hostID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by host", err)
	}
	defer rows.Close()

	return scanBookingList(rows)
}

func scanBookingList(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	var items []*queries.BookingListItem
	for rows.Next() {
		item := &queries.BookingListItem{}
		if err := rows.Scan(
			&item.ID,
			&item.ItemID,
			&item.ItemName,
			&item.VisitDate,
			&item.SlotsBooked,
			&item.TotalAmountCents,
			&item.Status,
			&item.PaymentStatus,
			&item.PaymentMethod,
			&item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking list", err)
	}

	return items, nil
}

var _ queries.BookingViewRepo = (*BookingReadStore)(nil)
