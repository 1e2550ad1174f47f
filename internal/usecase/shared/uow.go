package shared

import (
	"context"
	"encoding/json"
	"time"

	"tembea/internal/domain/booking"
	"tembea/internal/infra"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Ledger() LedgerRepository
	Listings() ListingRepository
	Callbacks() CallbackRepository
	Idempotency() IdempotencyRepository
	Reads() CommandReads
	DB() infra.DBTX
}

type CommandReads interface {
	ListingByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	BookedSlots(ctx context.Context, itemID uuid.UUID, visitDate time.Time) (int32, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ListingSnapshot struct {
	ID             uuid.UUID
	HostID         uuid.UUID
	Name           string
	ListingType    string
	PriceCents     int64
	TotalCapacity  int32
	ApprovalStatus string
	IsHidden       bool
}

type BookingSnapshot struct {
	ID            uuid.UUID
	ItemID        uuid.UUID
	BookingType   string
	GuestID       *uuid.UUID
	SlotsBooked   int32
	VisitDate     time.Time
	Status        string
	PaymentStatus string
	PaymentMethod string
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

// CallbackRecord is one row of the append-only payment callback log.
type CallbackRecord struct {
	ID                uuid.UUID
	CheckoutRequestID string
	MerchantRequestID string
	ResultCode        int
	ResultDesc        string
	RawPayload        json.RawMessage
	Receipt           string
	CreatedAt         time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, db infra.DBTX, b *booking.Booking) (uuid.UUID, error)
	AttachCheckout(ctx context.Context, db infra.DBTX, id uuid.UUID, checkoutRequestID, merchantRequestID string) error
	// FindByCheckoutIDForUpdate row-locks the booking matched by the
	// gateway correlation token; ErrNoRows surfaces as KindNotFound.
	FindByCheckoutIDForUpdate(ctx context.Context, db infra.DBTX, checkoutRequestID string) (*booking.Booking, error)
	FindByIDForUpdate(ctx context.Context, db infra.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateState(ctx context.Context, db infra.DBTX, b *booking.Booking) error
	// FailStalePending fails gateway bookings stuck pending beyond the cutoff.
	FailStalePending(ctx context.Context, db infra.DBTX, before time.Time) (int64, error)
}

type LedgerRepository interface {
	// IncrementGuarded applies the authoritative capacity check and the
	// increment in one statement; returns false when it would overflow.
	IncrementGuarded(ctx context.Context, db infra.DBTX, itemID uuid.UUID, visitDate time.Time, slots, capacity int32) (bool, error)
	Decrement(ctx context.Context, db infra.DBTX, itemID uuid.UUID, visitDate time.Time, slots int32) error
}

type ListingRepository interface {
	Approve(ctx context.Context, db infra.DBTX, listingType string, ids []uuid.UUID, adminID uuid.UUID, at time.Time) (int64, error)
}

type CallbackRepository interface {
	Insert(ctx context.Context, db infra.DBTX, rec *CallbackRecord) (uuid.UUID, error)
	MarkProcessed(ctx context.Context, db infra.DBTX, id uuid.UUID, outcome string, at time.Time) error
	FindUnprocessed(ctx context.Context, db infra.DBTX, before time.Time, limit int32) ([]*CallbackRecord, error)
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, db infra.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	UpdateStatusCompleted(ctx context.Context, db infra.DBTX, key, userID uuid.UUID, responseBodyHash string, resultBookingID uuid.UUID) error
	DeleteExpired(ctx context.Context, db infra.DBTX, now time.Time) (int64, error)
}
