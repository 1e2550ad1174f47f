package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tembea/internal/domain/booking"
	"tembea/internal/infra"
	"tembea/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, db infra.DBTX, b *booking.Booking) (uuid.UUID, error) {
	detailsJSON, err := json.Marshal(b.Details())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to marshal booking details", err)
	}

	const query = `
		INSERT INTO bookings (
			id, item_id, booking_type, guest_id, guest_name, guest_phone, guest_email,
			slots_booked, visit_date, total_amount_cents, status, payment_status,
			payment_method, refund_due, booking_details
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12,
			$13, $14, $15
		)
		RETURNING id
	`

	var id uuid.UUID
	err = db.QueryRow(ctx, query,
		b.ID(),
		b.ItemID(),
		b.BookingType(),
		b.GuestID(),
		b.Contact().Name(),
		nilIfEmpty(b.Contact().Phone()),
		nilIfEmpty(b.Contact().Email()),
		b.SlotsBooked(),
		b.VisitDate(),
		b.TotalAmount().Cents(),
		b.Status().String(),
		b.PaymentStatus().String(),
		b.PaymentMethod().String(),
		b.RefundDue(),
		detailsJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) AttachCheckout(ctx context.Context, db infra.DBTX, id uuid.UUID, checkoutRequestID, merchantRequestID string) error {
	const query = `
		UPDATE bookings
		SET checkout_request_id = $2, merchant_request_id = $3, updated_at = now()
		WHERE id = $1
	`

	tag, err := db.Exec(ctx, query, id, checkoutRequestID, merchantRequestID)
	if err != nil {
		return infra.WrapRepoErr("failed to attach checkout to booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

const bookingColumns = `
	id, item_id, booking_type, guest_id, guest_name, guest_phone, guest_email,
	slots_booked, visit_date, total_amount_cents, status, payment_status,
	payment_method, checkout_request_id, merchant_request_id, mpesa_receipt,
	refund_due, booking_details, created_at, updated_at
`

// FindByCheckoutIDForUpdate row-locks the matched booking so concurrent
// callback deliveries for the same token serialize here.
func (r *BookingRepository) FindByCheckoutIDForUpdate(ctx context.Context, db infra.DBTX, checkoutRequestID string) (*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE checkout_request_id = $1 FOR UPDATE`
	return r.scanBooking(db.QueryRow(ctx, query, checkoutRequestID))
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, db infra.DBTX, id uuid.UUID) (*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	return r.scanBooking(db.QueryRow(ctx, query, id))
}

func (r *BookingRepository) UpdateState(ctx context.Context, db infra.DBTX, b *booking.Booking) error {
	const query = `
		UPDATE bookings
		SET status = $2, payment_status = $3, mpesa_receipt = $4, refund_due = $5, updated_at = now()
		WHERE id = $1
	`

	tag, err := db.Exec(ctx, query,
		b.ID(),
		b.Status().String(),
		b.PaymentStatus().String(),
		b.MpesaReceipt(),
		b.RefundDue(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *BookingRepository) FailStalePending(ctx context.Context, db infra.DBTX, before time.Time) (int64, error) {
	const query = `
		UPDATE bookings
		SET status = 'cancelled', payment_status = 'failed', updated_at = now()
		WHERE status = 'pending'
		  AND payment_status = 'pending'
		  AND payment_method <> 'manual_entry'
		  AND created_at < $1
	`

	tag, err := db.Exec(ctx, query, before)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to fail stale pending bookings", err)
	}

	return tag.RowsAffected(), nil
}

func (r *BookingRepository) scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, itemID        uuid.UUID
		bookingType       string
		guestID           *uuid.UUID
		guestName         string
		guestPhone        *string
		guestEmail        *string
		slotsBooked       int32
		visitDate         time.Time
		totalAmountCents  int64
		status            string
		paymentStatus     string
		paymentMethod     string
		checkoutRequestID *string
		merchantRequestID *string
		mpesaReceipt      *string
		refundDue         bool
		detailsJSON       []byte
		createdAt         time.Time
		updatedAt         time.Time
	)

	err := row.Scan(
		&id, &itemID, &bookingType, &guestID, &guestName, &guestPhone, &guestEmail,
		&slotsBooked, &visitDate, &totalAmountCents, &status, &paymentStatus,
		&paymentMethod, &checkoutRequestID, &merchantRequestID, &mpesaReceipt,
		&refundDue, &detailsJSON, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan booking", err)
	}

	var details booking.Details
	if len(detailsJSON) > 0 {
		if err := json.Unmarshal(detailsJSON, &details); err != nil {
			return nil, infra.WrapRepoErr("failed to unmarshal booking details", err)
		}
	}

	total, err := booking.NewMoney(totalAmountCents)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid persisted amount", err)
	}

	contact := booking.ReconstructGuestContact(guestName, deref(guestPhone), deref(guestEmail))

	return booking.ReconstructBooking(
		id, itemID, bookingType, guestID, contact, slotsBooked, visitDate, total,
		booking.Status(status), booking.PaymentStatus(paymentStatus), booking.Method(paymentMethod),
		checkoutRequestID, merchantRequestID, mpesaReceipt, refundDue, details,
		createdAt, updatedAt,
	), nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var _ shared.BookingRepository = (*BookingRepository)(nil)
