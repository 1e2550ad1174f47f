package booking

import (
	"time"

	"tembea/internal/domain/listing"
	"tembea/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{Clock: clk}
}

// CreateSlotBooking builds a trip/event booking priced at a flat per-slot
// rate. The visit date must not be in the past.
func (f *Factory) CreateSlotBooking(
	item *listing.Listing,
	guestID *uuid.UUID,
	contact GuestContact,
	slots int32,
	visitDate time.Time,
	activities []ActivitySelection,
	method Method,
) (*Booking, error) {
	if slots <= 0 {
		return nil, ErrInvalidSlots
	}
	if visitDate.IsZero() {
		return nil, ErrVisitDateRequired
	}
	if visitDate.Before(truncateToDay(f.Clock.Now())) {
		return nil, ErrVisitDateInPast
	}

	total, err := NewMoney(item.PriceCents() * int64(slots))
	if err != nil {
		return nil, err
	}

	details := Details{
		Source:     detailsSource(method),
		Activities: activities,
	}
	if method == MethodManualEntry {
		details.EnteredBy = "host"
		details.Notes = "Manually entered offline booking"
	}

	return newBooking(item.ID(), item.ListingType().String(), guestID, contact, slots, visitDate, total, method, details)
}

// CreateFacilityBooking builds a hotel/adventure booking. slots_booked is
// the facility count, the total sums price x days per facility, and the
// earliest facility start date stands in as the visit date.
func (f *Factory) CreateFacilityBooking(
	item *listing.Listing,
	guestID *uuid.UUID,
	contact GuestContact,
	facilities []FacilitySelection,
	activities []ActivitySelection,
	method Method,
) (*Booking, error) {
	if len(facilities) == 0 {
		return nil, ErrNoFacilities
	}

	var totalCents int64
	visitDate := facilities[0].StartDate()
	facilityDetails := make([]FacilityDetail, len(facilities))
	for i, fac := range facilities {
		totalCents += fac.TotalCents()
		if fac.StartDate().Before(visitDate) {
			visitDate = fac.StartDate()
		}
		facilityDetails[i] = FacilityDetail{
			Name:       fac.Name(),
			PriceCents: fac.PricePerDayCents(),
			StartDate:  fac.StartDate().Format(time.DateOnly),
			EndDate:    fac.EndDate().Format(time.DateOnly),
		}
	}

	total, err := NewMoney(totalCents)
	if err != nil {
		return nil, err
	}

	details := Details{
		Source:     detailsSource(method),
		Facilities: facilityDetails,
		Activities: activities,
	}
	if method == MethodManualEntry {
		details.EnteredBy = "host"
		details.Notes = "Manually entered offline booking"
	}

	return newBooking(item.ID(), item.ListingType().String(), guestID, contact, int32(len(facilities)), visitDate, total, method, details)
}

func detailsSource(method Method) string {
	if method == MethodManualEntry {
		return "manual_entry"
	}
	return "online"
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
