//go:build unit || e2e

package builder

import (
	"time"

	"tembea/internal/domain/listing"
	"tembea/internal/usecase/shared"

	"github.com/google/uuid"
)

type ListingBuilder struct {
	ID             uuid.UUID
	HostID         uuid.UUID
	Name           string
	ListingType    string
	PriceCents     int64
	TotalCapacity  int32
	ApprovalStatus string
	IsHidden       bool
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		ID:             uuid.New(),
		HostID:         uuid.New(),
		Name:           "Diani Beach Day Trip",
		ListingType:    "trip",
		PriceCents:     250_000,
		TotalCapacity:  10,
		ApprovalStatus: "approved",
		IsHidden:       false,
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

func (b *ListingBuilder) WithType(listingType string) *ListingBuilder {
	b.ListingType = listingType
	return b
}

func (b *ListingBuilder) WithCapacity(capacity int32) *ListingBuilder {
	b.TotalCapacity = capacity
	return b
}

func (b *ListingBuilder) WithPriceCents(cents int64) *ListingBuilder {
	b.PriceCents = cents
	return b
}

func (b *ListingBuilder) Pending() *ListingBuilder {
	b.ApprovalStatus = "pending"
	b.IsHidden = true
	return b
}

func (b *ListingBuilder) BuildDomain() (*listing.Listing, error) {
	listingType, err := listing.NewType(b.ListingType)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return listing.ReconstructListing(
		b.ID, b.HostID, b.Name, listingType,
		b.PriceCents, b.TotalCapacity,
		listing.ApprovalStatus(b.ApprovalStatus), b.IsHidden,
		nil, nil, now, now,
	), nil
}

func (b *ListingBuilder) BuildSnapshot() *shared.ListingSnapshot {
	return &shared.ListingSnapshot{
		ID:             b.ID,
		HostID:         b.HostID,
		Name:           b.Name,
		ListingType:    b.ListingType,
		PriceCents:     b.PriceCents,
		TotalCapacity:  b.TotalCapacity,
		ApprovalStatus: b.ApprovalStatus,
		IsHidden:       b.IsHidden,
	}
}
