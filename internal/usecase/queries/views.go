package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID               uuid.UUID       `json:"id"`
	ItemID           uuid.UUID       `json:"item_id"`
	ItemName         string          `json:"item_name"`
	HostID           uuid.UUID       `json:"host_id"`
	BookingType      string          `json:"booking_type"`
	GuestID          *uuid.UUID      `json:"guest_id,omitempty"`
	GuestName        string          `json:"guest_name"`
	GuestPhone       *string         `json:"guest_phone,omitempty"`
	GuestEmail       *string         `json:"guest_email,omitempty"`
	SlotsBooked      int32           `json:"slots_booked"`
	VisitDate        time.Time       `json:"visit_date"`
	TotalAmountCents int64           `json:"total_amount_cents"`
	Status           string          `json:"status"`
	PaymentStatus    string          `json:"payment_status"`
	PaymentMethod    string          `json:"payment_method"`
	MpesaReceipt     *string         `json:"mpesa_receipt,omitempty"`
	RefundDue        bool            `json:"refund_due"`
	Details          json.RawMessage `json:"booking_details,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type BookingListItem struct {
	ID               uuid.UUID `json:"id"`
	ItemID           uuid.UUID `json:"item_id"`
	ItemName         string    `json:"item_name"`
	VisitDate        time.Time `json:"visit_date"`
	SlotsBooked      int32     `json:"slots_booked"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"payment_status"`
	PaymentMethod    string    `json:"payment_method"`
	CreatedAt        time.Time `json:"created_at"`
}

// AvailabilityView is advisory: it may lag the ledger by up to the cache TTL.
type AvailabilityView struct {
	ItemID    uuid.UUID `json:"item_id"`
	VisitDate time.Time `json:"visit_date"`
	Capacity  int32     `json:"capacity"`
	Booked    int32     `json:"booked"`
	Remaining int32     `json:"remaining"`
}

type ListingEarnings struct {
	ListingID    uuid.UUID `json:"listing_id"`
	ListingName  string    `json:"listing_name"`
	GrossCents   int64     `json:"gross_cents"`
	BookingCount int64     `json:"booking_count"`
}

type PayoutSummary struct {
	HostID         uuid.UUID          `json:"host_id"`
	GrossCents     int64              `json:"gross_cents"`
	BookingCount   int64              `json:"booking_count"`
	RefundDueCount int64              `json:"refund_due_count"`
	PerListing     []*ListingEarnings `json:"per_listing"`
}

type CommissionRow struct {
	ID                 uuid.UUID `json:"id"`
	BookingID          uuid.UUID `json:"booking_id"`
	CommissionType     string    `json:"commission_type"`
	AmountCents        int64     `json:"amount_cents"`
	BookingAmountCents int64     `json:"booking_amount_cents"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

type CommissionReport struct {
	ReferrerID   uuid.UUID        `json:"referrer_id"`
	Rows         []*CommissionRow `json:"rows"`
	TotalCents   int64            `json:"total_cents"`
	PendingCents int64            `json:"pending_cents"`
	PaidCents    int64            `json:"paid_cents"`
}
