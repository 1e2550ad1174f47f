package request

import (
	"strings"
	"time"

	"tembea/internal/domain/booking"

	"github.com/google/uuid"
)

type FacilityInput struct {
	Name             string `json:"name" binding:"required"`
	PricePerDayCents int64  `json:"price_per_day_cents" binding:"required"`
	StartDate        string `json:"start_date" binding:"required"`
	EndDate          string `json:"end_date" binding:"required"`
}

type ActivityInput struct {
	Name      string `json:"name" binding:"required"`
	Headcount int32  `json:"headcount" binding:"required,min=1"`
}

type CreateBookingRequest struct {
	ItemID     uuid.UUID       `json:"item_id" binding:"required"`
	ItemType   string          `json:"item_type" binding:"required,oneof=trip event hotel adventure"`
	GuestName  string          `json:"guest_name" binding:"required"`
	Phone      string          `json:"phone" binding:"required"`
	Email      string          `json:"email,omitempty"`
	Slots      int32           `json:"slots,omitempty"`
	VisitDate  *string         `json:"visit_date,omitempty"`
	Facilities []FacilityInput `json:"facilities,omitempty"`
	Activities []ActivityInput `json:"activities,omitempty"`
}

type ManualBookingRequest struct {
	ItemID     uuid.UUID       `json:"item_id" binding:"required"`
	ItemType   string          `json:"item_type" binding:"required,oneof=trip event hotel adventure"`
	GuestName  string          `json:"guest_name" binding:"required"`
	Phone      string          `json:"phone,omitempty"`
	Email      string          `json:"email,omitempty"`
	Slots      int32           `json:"slots,omitempty"`
	VisitDate  *string         `json:"visit_date,omitempty"`
	Facilities []FacilityInput `json:"facilities,omitempty"`
	Activities []ActivityInput `json:"activities,omitempty"`
}

func (r CreateBookingRequest) Contact() (booking.GuestContact, error) {
	return buildContact(r.GuestName, r.Phone, r.Email)
}

func (r ManualBookingRequest) Contact() (booking.GuestContact, error) {
	return buildContact(r.GuestName, r.Phone, r.Email)
}

func buildContact(name, phone, email string) (booking.GuestContact, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)
	if email != "" && phone != "" {
		return booking.ReconstructGuestContact(name, phone, email), nil
	}
	contact := phone
	if contact == "" {
		contact = email
	}
	return booking.NewGuestContact(name, contact)
}

func (r CreateBookingRequest) ParseVisitDate() (time.Time, error) {
	return parseVisitDate(r.VisitDate)
}

func (r ManualBookingRequest) ParseVisitDate() (time.Time, error) {
	return parseVisitDate(r.VisitDate)
}

func parseVisitDate(raw *string) (time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return time.Time{}, booking.ErrVisitDateRequired
	}
	return time.Parse(time.DateOnly, strings.TrimSpace(*raw))
}

func (r CreateBookingRequest) ToFacilities() ([]booking.FacilitySelection, error) {
	return buildFacilities(r.Facilities)
}

func (r ManualBookingRequest) ToFacilities() ([]booking.FacilitySelection, error) {
	return buildFacilities(r.Facilities)
}

func buildFacilities(inputs []FacilityInput) ([]booking.FacilitySelection, error) {
	facilities := make([]booking.FacilitySelection, 0, len(inputs))
	for _, in := range inputs {
		start, err := time.Parse(time.DateOnly, in.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := time.Parse(time.DateOnly, in.EndDate)
		if err != nil {
			return nil, err
		}
		fac, err := booking.NewFacilitySelection(in.Name, in.PricePerDayCents, start, end)
		if err != nil {
			return nil, err
		}
		facilities = append(facilities, fac)
	}
	return facilities, nil
}

func (r CreateBookingRequest) ToActivities() []booking.ActivitySelection {
	return buildActivities(r.Activities)
}

func (r ManualBookingRequest) ToActivities() []booking.ActivitySelection {
	return buildActivities(r.Activities)
}

func buildActivities(inputs []ActivityInput) []booking.ActivitySelection {
	if len(inputs) == 0 {
		return nil
	}
	activities := make([]booking.ActivitySelection, len(inputs))
	for i, in := range inputs {
		activities[i] = booking.ActivitySelection{Name: in.Name, Headcount: in.Headcount}
	}
	return activities
}

type ApproveItemsRequest struct {
	ItemType string      `json:"item_type" binding:"required,oneof=trip event hotel adventure"`
	ItemIDs  []uuid.UUID `json:"item_ids" binding:"required,min=1"`
}
