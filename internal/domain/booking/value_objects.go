package booking

import (
	"errors"
	"math"
	"strings"
	"time"
)

var (
	ErrNegativeAmount      = errors.New("amount cannot be negative")
	ErrInvalidFacilityDate = errors.New("facility end date must not precede start date")
	ErrEmptyFacilityName   = errors.New("facility name cannot be empty")
	ErrEmptyContact        = errors.New("guest contact cannot be empty")
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// FacilitySelection is one bookable sub-unit (a room type, a camp site)
// with its own date range and per-day price, snapshotted at booking time.
type FacilitySelection struct {
	name             string
	pricePerDayCents int64
	startDate        time.Time
	endDate          time.Time
}

func NewFacilitySelection(name string, pricePerDayCents int64, startDate, endDate time.Time) (FacilitySelection, error) {
	if strings.TrimSpace(name) == "" {
		return FacilitySelection{}, ErrEmptyFacilityName
	}
	if pricePerDayCents < 0 {
		return FacilitySelection{}, ErrNegativeAmount
	}
	if endDate.Before(startDate) {
		return FacilitySelection{}, ErrInvalidFacilityDate
	}
	return FacilitySelection{
		name:             strings.TrimSpace(name),
		pricePerDayCents: pricePerDayCents,
		startDate:        startDate,
		endDate:          endDate,
	}, nil
}

func (f FacilitySelection) Name() string            { return f.name }
func (f FacilitySelection) PricePerDayCents() int64 { return f.pricePerDayCents }
func (f FacilitySelection) StartDate() time.Time    { return f.startDate }
func (f FacilitySelection) EndDate() time.Time      { return f.endDate }

// Days counts chargeable days as ceil(end-start), exclusive of the end
// date, with a minimum of one day. A same-day stay is charged one day.
func (f FacilitySelection) Days() int64 {
	diff := f.endDate.Sub(f.startDate)
	days := int64(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

func (f FacilitySelection) TotalCents() int64 {
	return f.pricePerDayCents * f.Days()
}

// ActivitySelection snapshots an add-on activity and its headcount.
type ActivitySelection struct {
	Name      string `json:"name"`
	Headcount int32  `json:"headcount"`
}

// GuestContact keeps how to reach the guest. A contact containing '@' is
// treated as an email address, anything else as a phone number.
type GuestContact struct {
	name  string
	phone string
	email string
}

func NewGuestContact(name, contact string) (GuestContact, error) {
	name = strings.TrimSpace(name)
	contact = strings.TrimSpace(contact)
	if name == "" || contact == "" {
		return GuestContact{}, ErrEmptyContact
	}
	gc := GuestContact{name: name}
	if strings.Contains(contact, "@") {
		gc.email = contact
	} else {
		gc.phone = contact
	}
	return gc, nil
}

func ReconstructGuestContact(name, phone, email string) GuestContact {
	return GuestContact{name: name, phone: phone, email: email}
}

func (g GuestContact) Name() string  { return g.name }
func (g GuestContact) Phone() string { return g.phone }
func (g GuestContact) Email() string { return g.email }
