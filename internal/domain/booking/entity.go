package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidSlots             = errors.New("slots booked must be positive")
	ErrVisitDateRequired        = errors.New("visit date is required")
	ErrVisitDateInPast          = errors.New("visit date cannot be in the past")
	ErrNoFacilities             = errors.New("at least one facility must be selected")
	ErrAlreadyTerminal          = errors.New("booking payment state is terminal")
	ErrNotConfirmable           = errors.New("only pending bookings can be confirmed")
	ErrAlreadyCancelled         = errors.New("booking is already cancelled")
	ErrCancellationWindowClosed = errors.New("bookings can only be cancelled more than 48 hours before the visit date")
)

// CancellationCutoff is the minimum lead time before visit_date for a
// guest-initiated cancellation.
const CancellationCutoff = 48 * time.Hour

// Details is the denormalized pricing snapshot persisted with a booking so
// later renders stay stable even if listing prices change.
type Details struct {
	Source     string             `json:"source"`
	EnteredBy  string             `json:"entered_by,omitempty"`
	Notes      string             `json:"notes,omitempty"`
	Facilities []FacilityDetail   `json:"selectedFacilities,omitempty"`
	Activities []ActivitySelection `json:"activities,omitempty"`
}

type FacilityDetail struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

type Booking struct {
	id                uuid.UUID
	itemID            uuid.UUID
	bookingType       string
	guestID           *uuid.UUID
	contact           GuestContact
	slotsBooked       int32
	visitDate         time.Time
	totalAmount       Money
	status            Status
	paymentStatus     PaymentStatus
	paymentMethod     Method
	checkoutRequestID *string
	merchantRequestID *string
	mpesaReceipt      *string
	refundDue         bool
	details           Details
	createdAt         time.Time
	updatedAt         time.Time
}

func newBooking(
	itemID uuid.UUID,
	bookingType string,
	guestID *uuid.UUID,
	contact GuestContact,
	slotsBooked int32,
	visitDate time.Time,
	totalAmount Money,
	method Method,
	details Details,
) (*Booking, error) {
	if slotsBooked <= 0 {
		return nil, ErrInvalidSlots
	}
	if visitDate.IsZero() {
		return nil, ErrVisitDateRequired
	}

	b := &Booking{
		id:            uuid.New(),
		itemID:        itemID,
		bookingType:   bookingType,
		guestID:       guestID,
		contact:       contact,
		slotsBooked:   slotsBooked,
		visitDate:     visitDate,
		totalAmount:   totalAmount,
		status:        StatusPending,
		paymentStatus: PaymentPending,
		paymentMethod: method,
		details:       details,
	}
	if method == MethodManualEntry {
		// No payment round trip: manual entries are settled on the spot.
		b.status = StatusConfirmed
		b.paymentStatus = PaymentPaid
	}
	return b, nil
}

func ReconstructBooking(
	id, itemID uuid.UUID,
	bookingType string,
	guestID *uuid.UUID,
	contact GuestContact,
	slotsBooked int32,
	visitDate time.Time,
	totalAmount Money,
	status Status,
	paymentStatus PaymentStatus,
	paymentMethod Method,
	checkoutRequestID, merchantRequestID, mpesaReceipt *string,
	refundDue bool,
	details Details,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                id,
		itemID:            itemID,
		bookingType:       bookingType,
		guestID:           guestID,
		contact:           contact,
		slotsBooked:       slotsBooked,
		visitDate:         visitDate,
		totalAmount:       totalAmount,
		status:            status,
		paymentStatus:     paymentStatus,
		paymentMethod:     paymentMethod,
		checkoutRequestID: checkoutRequestID,
		merchantRequestID: merchantRequestID,
		mpesaReceipt:      mpesaReceipt,
		refundDue:         refundDue,
		details:           details,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// AttachCheckout records the gateway correlation token issued at charge
// initiation. The token is the key phase two (the callback) looks up by.
func (b *Booking) AttachCheckout(checkoutRequestID, merchantRequestID string) {
	b.checkoutRequestID = &checkoutRequestID
	b.merchantRequestID = &merchantRequestID
}

// Confirm transitions a pending booking to confirmed/paid after a
// successful payment callback survived the authoritative capacity check.
func (b *Booking) Confirm(receipt string) error {
	if b.paymentStatus.Terminal() {
		return ErrAlreadyTerminal
	}
	if b.status != StatusPending {
		return ErrNotConfirmable
	}
	b.status = StatusConfirmed
	b.paymentStatus = PaymentPaid
	if receipt != "" {
		b.mpesaReceipt = &receipt
	}
	return nil
}

// RejectOverflow handles the post-payment overflow case: payment succeeded
// but capacity was exhausted by an earlier commit. The guest must be
// refunded, so the booking is flagged for refund processing.
func (b *Booking) RejectOverflow() error {
	if b.paymentStatus.Terminal() {
		return ErrAlreadyTerminal
	}
	b.status = StatusCancelled
	b.paymentStatus = PaymentFailed
	b.refundDue = true
	return nil
}

// FailPayment records a declined or abandoned charge. The ledger is never
// touched for failed payments.
func (b *Booking) FailPayment() error {
	if b.paymentStatus.Terminal() {
		return ErrAlreadyTerminal
	}
	b.paymentStatus = PaymentFailed
	return nil
}

// RefundAfterCancel records a successful charge that settled after the
// booking was already cancelled. The money was taken but the slot is gone,
// so the guest must be refunded. The ledger is never touched here: cancelled
// bookings never committed capacity.
func (b *Booking) RefundAfterCancel() error {
	if b.paymentStatus.Terminal() {
		return ErrAlreadyTerminal
	}
	b.paymentStatus = PaymentFailed
	b.refundDue = true
	return nil
}

// CancelByGuest enforces the 48-hour window against the visit date.
func (b *Booking) CancelByGuest(now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if b.visitDate.Sub(now) <= CancellationCutoff {
		return ErrCancellationWindowClosed
	}
	b.status = StatusCancelled
	return nil
}

// CancelByHost has no window restriction.
func (b *Booking) CancelByHost() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

// ReleasesLedger reports whether cancelling this booking must decrement
// the availability ledger (only committed capacity was ever counted).
func (b *Booking) ReleasesLedger() bool {
	return b.status == StatusConfirmed || b.paymentStatus == PaymentPaid || b.paymentStatus == PaymentCompleted
}

func (b *Booking) IsManualEntry() bool {
	return b.paymentMethod == MethodManualEntry
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) ItemID() uuid.UUID          { return b.itemID }
func (b *Booking) BookingType() string        { return b.bookingType }
func (b *Booking) GuestID() *uuid.UUID        { return b.guestID }
func (b *Booking) Contact() GuestContact      { return b.contact }
func (b *Booking) SlotsBooked() int32         { return b.slotsBooked }
func (b *Booking) VisitDate() time.Time       { return b.visitDate }
func (b *Booking) TotalAmount() Money         { return b.totalAmount }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) PaymentMethod() Method      { return b.paymentMethod }
func (b *Booking) CheckoutRequestID() *string { return b.checkoutRequestID }
func (b *Booking) MerchantRequestID() *string { return b.merchantRequestID }
func (b *Booking) MpesaReceipt() *string      { return b.mpesaReceipt }
func (b *Booking) RefundDue() bool            { return b.refundDue }
func (b *Booking) Details() Details           { return b.details }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
