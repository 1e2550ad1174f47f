package response

import (
	"encoding/json"
	"time"

	"tembea/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID               uuid.UUID       `json:"id"`
	ItemID           uuid.UUID       `json:"itemId"`
	ItemName         string          `json:"itemName"`
	BookingType      string          `json:"bookingType"`
	GuestName        string          `json:"guestName"`
	GuestPhone       *string         `json:"guestPhone,omitempty"`
	GuestEmail       *string         `json:"guestEmail,omitempty"`
	SlotsBooked      int32           `json:"slotsBooked"`
	VisitDate        time.Time       `json:"visitDate"`
	TotalAmountCents int64           `json:"totalAmountCents"`
	Status           string          `json:"status"`
	PaymentStatus    string          `json:"paymentStatus"`
	PaymentMethod    string          `json:"paymentMethod"`
	MpesaReceipt     *string         `json:"mpesaReceipt,omitempty"`
	RefundDue        bool            `json:"refundDue"`
	Details          json.RawMessage `json:"bookingDetails,omitempty"`
	CustomerMessage  string          `json:"customerMessage,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type BookingListResponse struct {
	ID               uuid.UUID `json:"id"`
	ItemID           uuid.UUID `json:"itemId"`
	ItemName         string    `json:"itemName"`
	VisitDate        time.Time `json:"visitDate"`
	SlotsBooked      int32     `json:"slotsBooked"`
	TotalAmountCents int64     `json:"totalAmountCents"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"paymentStatus"`
	PaymentMethod    string    `json:"paymentMethod"`
	CreatedAt        time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingListResponse {
	resp := &BookingListResponse{}
	_ = copier.Copy(resp, rm)
	return resp
}
