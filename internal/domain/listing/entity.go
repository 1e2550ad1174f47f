package listing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("listing name cannot be empty")
	ErrInvalidCapacity = errors.New("total capacity must be positive")
	ErrInvalidType     = errors.New("invalid listing type")
	ErrNotApprovable   = errors.New("listing is not awaiting approval")
)

type Type string

const (
	TypeTrip      Type = "trip"
	TypeEvent     Type = "event"
	TypeHotel     Type = "hotel"
	TypeAdventure Type = "adventure"
)

func NewType(value string) (Type, error) {
	t := Type(value)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeTrip, TypeEvent, TypeHotel, TypeAdventure:
		return true
	default:
		return false
	}
}

// FacilityBased reports whether capacity units are facilities (rooms,
// camp sites) rather than seats.
func (t Type) FacilityBased() bool {
	return t == TypeHotel || t == TypeAdventure
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

type Listing struct {
	id             uuid.UUID
	hostID         uuid.UUID
	name           string
	listingType    Type
	priceCents     int64
	totalCapacity  int32
	approvalStatus ApprovalStatus
	isHidden       bool
	approvedAt     *time.Time
	approvedBy     *uuid.UUID
	createdAt      time.Time
	updatedAt      time.Time
}

func NewListing(hostID uuid.UUID, name string, listingType Type, priceCents int64, totalCapacity int32) (*Listing, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !listingType.IsValid() {
		return nil, ErrInvalidType
	}
	if totalCapacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Listing{
		id:             uuid.New(),
		hostID:         hostID,
		name:           name,
		listingType:    listingType,
		priceCents:     priceCents,
		totalCapacity:  totalCapacity,
		approvalStatus: ApprovalPending,
		isHidden:       true,
	}, nil
}

func ReconstructListing(
	id, hostID uuid.UUID,
	name string,
	listingType Type,
	priceCents int64,
	totalCapacity int32,
	approvalStatus ApprovalStatus,
	isHidden bool,
	approvedAt *time.Time,
	approvedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Listing {
	return &Listing{
		id:             id,
		hostID:         hostID,
		name:           name,
		listingType:    listingType,
		priceCents:     priceCents,
		totalCapacity:  totalCapacity,
		approvalStatus: approvalStatus,
		isHidden:       isHidden,
		approvedAt:     approvedAt,
		approvedBy:     approvedBy,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Bookable listings are approved and visible. Everything else is invisible
// to guests and must reject admission.
func (l *Listing) Bookable() bool {
	return l.approvalStatus == ApprovalApproved && !l.isHidden
}

func (l *Listing) Approve(adminID uuid.UUID, at time.Time) error {
	if l.approvalStatus == ApprovalApproved {
		return ErrNotApprovable
	}
	l.approvalStatus = ApprovalApproved
	l.approvedAt = &at
	l.approvedBy = &adminID
	l.isHidden = false
	return nil
}

func (l *Listing) OwnedBy(userID uuid.UUID) bool {
	return l.hostID == userID
}

func (l *Listing) ID() uuid.UUID                   { return l.id }
func (l *Listing) HostID() uuid.UUID               { return l.hostID }
func (l *Listing) Name() string                    { return l.name }
func (l *Listing) ListingType() Type               { return l.listingType }
func (l *Listing) PriceCents() int64               { return l.priceCents }
func (l *Listing) TotalCapacity() int32            { return l.totalCapacity }
func (l *Listing) ApprovalStatus() ApprovalStatus  { return l.approvalStatus }
func (l *Listing) IsHidden() bool                  { return l.isHidden }
func (l *Listing) ApprovedAt() *time.Time          { return l.approvedAt }
func (l *Listing) ApprovedBy() *uuid.UUID          { return l.approvedBy }
func (l *Listing) CreatedAt() time.Time            { return l.createdAt }
func (l *Listing) UpdatedAt() time.Time            { return l.updatedAt }
