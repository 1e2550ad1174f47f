//go:build unit || e2e

package builder

import (
	"time"

	"tembea/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID                uuid.UUID
	ItemID            uuid.UUID
	BookingType       string
	GuestID           *uuid.UUID
	GuestName         string
	GuestPhone        string
	GuestEmail        string
	SlotsBooked       int32
	VisitDate         time.Time
	TotalAmountCents  int64
	Status            string
	PaymentStatus     string
	PaymentMethod     string
	CheckoutRequestID *string
	RefundDue         bool
}

func NewBookingBuilder() *BookingBuilder {
	guestID := uuid.New()
	checkoutID := "ws_CO_" + uuid.NewString()
	return &BookingBuilder{
		ID:                uuid.New(),
		ItemID:            uuid.New(),
		BookingType:       "trip",
		GuestID:           &guestID,
		GuestName:         "Wanjiku Kamau",
		GuestPhone:        "254712345678",
		SlotsBooked:       2,
		VisitDate:         time.Now().AddDate(0, 0, 14).Truncate(24 * time.Hour),
		TotalAmountCents:  500_000,
		Status:            "pending",
		PaymentStatus:     "pending",
		PaymentMethod:     "mpesa",
		CheckoutRequestID: &checkoutID,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Confirmed() *BookingBuilder {
	b.Status = "confirmed"
	b.PaymentStatus = "paid"
	return b
}

func (b *BookingBuilder) Cancelled() *BookingBuilder {
	b.Status = "cancelled"
	return b
}

func (b *BookingBuilder) ManualEntry() *BookingBuilder {
	b.Status = "confirmed"
	b.PaymentStatus = "paid"
	b.PaymentMethod = "manual_entry"
	b.GuestID = nil
	b.CheckoutRequestID = nil
	return b
}

func (b *BookingBuilder) WithVisitDateIn(d time.Duration) *BookingBuilder {
	b.VisitDate = time.Now().Add(d)
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	now := time.Now()
	total, _ := booking.NewMoney(b.TotalAmountCents)
	contact := booking.ReconstructGuestContact(b.GuestName, b.GuestPhone, b.GuestEmail)

	return booking.ReconstructBooking(
		b.ID, b.ItemID, b.BookingType, b.GuestID, contact,
		b.SlotsBooked, b.VisitDate, total,
		booking.Status(b.Status), booking.PaymentStatus(b.PaymentStatus), booking.Method(b.PaymentMethod),
		b.CheckoutRequestID, nil, nil, b.RefundDue,
		booking.Details{Source: "online"},
		now, now,
	)
}
