package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tembea/internal/domain/booking"
	"tembea/internal/domain/identity"
	"tembea/internal/domain/listing"
	"tembea/internal/gateway/mpesa"
	reqdto "tembea/internal/handler/dto/request"
	"tembea/internal/infra"
	"tembea/internal/pkg/clock"
	"tembea/internal/pkg/errs"
	"tembea/internal/usecase/queries"
	"tembea/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrListingNotFound         = errs.New("listing not found")
	ErrListingNotBookable      = errs.New("listing is not open for booking")
	ErrNotListingOwner         = errs.New("listing belongs to another host")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrCancelNotAllowed        = errs.New("actor may not cancel this booking")
	ErrPaymentInitiation       = errs.New("payment initiation failed")
	ErrDuplicateBooking        = errs.New("duplicate booking request")
	ErrIdempotencyInProgress   = errs.New("idempotency in progress")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// CapacityExceededError reports how many slots were still available when the
// request asked for more.
type CapacityExceededError struct {
	Remaining int32
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacity exceeded: %d slots remaining", e.Remaining)
}

type AdmitResult struct {
	Booking         *queries.BookingView
	IsReplayed      bool
	CustomerMessage string
}

type BookingCommands interface {
	// Admit validates the request, persists a pending booking and fires the
	// STK push. Admission is advisory: the ledger commits capacity only when
	// the payment callback lands.
	Admit(ctx context.Context, req reqdto.CreateBookingRequest, guestID uuid.UUID, idempotencyKey uuid.UUID) (*AdmitResult, error)
	// ManualEntry records an offline sale. It settles synchronously: ledger
	// increment and confirmed/paid insert in one transaction, no gateway.
	ManualEntry(ctx context.Context, req reqdto.ManualBookingRequest, hostID uuid.UUID) (*queries.BookingView, error)
	Cancel(ctx context.Context, bookingID, actorID uuid.UUID, role identity.Role) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	factory  *booking.Factory
	gateway  mpesa.Gateway
	viewRepo queries.BookingViewRepo
	clock    clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	gateway mpesa.Gateway,
	viewRepo queries.BookingViewRepo,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		factory:  factory,
		gateway:  gateway,
		viewRepo: viewRepo,
		clock:    clk,
	}
}

func (c *bookingCommandsImpl) Admit(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	guestID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*AdmitResult, error) {
	requestHash := calculateRequestHash(req)
	expiresAt := c.clock.Now().Add(24 * time.Hour)

	replayed, err := c.handleIdempotency(ctx, idempotencyKey, guestID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return &AdmitResult{Booking: replayed, IsReplayed: true}, nil
	}

	item, err := c.loadBookableListing(ctx, req.ItemID, req.ItemType)
	if err != nil {
		return nil, err
	}

	entity, err := c.buildBooking(ctx, item, &guestID, admitRequestData(req), booking.MethodMpesa)
	if err != nil {
		return nil, err
	}

	if err := c.persistPending(ctx, entity, idempotencyKey, guestID, requestHash); err != nil {
		return nil, err
	}

	message, err := c.initiatePayment(ctx, entity, req.Phone, item.Name())
	if err != nil {
		return nil, err
	}

	view, err := c.viewRepo.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &AdmitResult{Booking: view, CustomerMessage: message}, nil
}

// handleIdempotency claims the key; a nil, nil return means this request is
// fresh and processing may continue.
func (c *bookingCommandsImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.BookingView, error) {
	claimErr := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().TryInsert(ctx, tx.DB(), idempotencyKey, userID, "POST /bookings", requestHash, expiresAt)
	})
	if claimErr == nil {
		return nil, nil
	}
	if !infra.IsKind(claimErr, infra.KindDuplicateKey) {
		return nil, errs.Mark(claimErr, ErrIdempotencyCheckFailed)
	}

	existing, err := c.uow.CommandReads().IdempotencyByKey(ctx, idempotencyKey, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.ResultBookingID == nil {
			return nil, errs.New("completed request missing result booking ID")
		}
		return c.viewRepo.FindByID(ctx, *existing.ResultBookingID)

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateBooking
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (c *bookingCommandsImpl) loadBookableListing(ctx context.Context, itemID uuid.UUID, itemType string) (*listing.Listing, error) {
	snap, err := c.uow.CommandReads().ListingByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.ListingType != itemType {
		return nil, ErrListingNotFound
	}

	item, err := listingFromSnapshot(snap)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if !item.Bookable() {
		return nil, ErrListingNotBookable
	}

	return item, nil
}

// requestData is the shape shared by online and manual admission requests.
type requestData struct {
	contact    func() (booking.GuestContact, error)
	visitDate  func() (time.Time, error)
	facilities func() ([]booking.FacilitySelection, error)
	activities func() []booking.ActivitySelection
	slots      int32
}

func admitRequestData(req reqdto.CreateBookingRequest) requestData {
	return requestData{
		contact:    req.Contact,
		visitDate:  req.ParseVisitDate,
		facilities: req.ToFacilities,
		activities: req.ToActivities,
		slots:      req.Slots,
	}
}

func manualRequestData(req reqdto.ManualBookingRequest) requestData {
	return requestData{
		contact:    req.Contact,
		visitDate:  req.ParseVisitDate,
		facilities: req.ToFacilities,
		activities: req.ToActivities,
		slots:      req.Slots,
	}
}

func (c *bookingCommandsImpl) buildBooking(
	ctx context.Context,
	item *listing.Listing,
	guestID *uuid.UUID,
	data requestData,
	method booking.Method,
) (*booking.Booking, error) {
	contact, err := data.contact()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if item.ListingType().FacilityBased() {
		facilities, err := data.facilities()
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		entity, err := c.factory.CreateFacilityBooking(item, guestID, contact, facilities, data.activities(), method)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		return entity, nil
	}

	visitDate, err := data.visitDate()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if method == booking.MethodMpesa {
		// Advisory capacity check; the callback transaction re-checks
		// against the ledger before anything commits.
		booked, err := c.uow.CommandReads().BookedSlots(ctx, item.ID(), visitDate)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if remaining := item.TotalCapacity() - booked; data.slots > remaining {
			if remaining < 0 {
				remaining = 0
			}
			return nil, &CapacityExceededError{Remaining: remaining}
		}
	}

	entity, err := c.factory.CreateSlotBooking(item, guestID, contact, data.slots, visitDate, data.activities(), method)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return entity, nil
}

func (c *bookingCommandsImpl) persistPending(
	ctx context.Context,
	entity *booking.Booking,
	idempotencyKey, userID uuid.UUID,
	requestHash string,
) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Bookings().Create(ctx, tx.DB(), entity)
		if err != nil {
			return err
		}
		return tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, userID, calculateIDHash(id), id)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// initiatePayment fires the STK push after the pending booking committed. A
// gateway failure marks the booking failed; the guest retries with a new
// Idempotency-Key.
func (c *bookingCommandsImpl) initiatePayment(ctx context.Context, entity *booking.Booking, phone, itemName string) (string, error) {
	result, err := c.gateway.InitiateSTKPush(ctx, mpesa.STKPushRequest{
		Phone:            phone,
		AmountCents:      entity.TotalAmount().Cents(),
		AccountReference: entity.ID().String(),
		Description:      itemName,
	})
	if err != nil {
		failErr := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			locked, lockErr := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), entity.ID())
			if lockErr != nil {
				return lockErr
			}
			if failErr := locked.FailPayment(); failErr != nil {
				return failErr
			}
			return tx.Bookings().UpdateState(ctx, tx.DB(), locked)
		})
		if failErr != nil {
			return "", errs.Mark(failErr, ErrDatabaseOperationFailed)
		}
		return "", errs.Mark(err, ErrPaymentInitiation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().AttachCheckout(ctx, tx.DB(), entity.ID(), result.CheckoutRequestID, result.MerchantRequestID)
	})
	if err != nil {
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return result.CustomerMessage, nil
}

func (c *bookingCommandsImpl) ManualEntry(
	ctx context.Context,
	req reqdto.ManualBookingRequest,
	hostID uuid.UUID,
) (*queries.BookingView, error) {
	snap, err := c.uow.CommandReads().ListingByID(ctx, req.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.HostID != hostID {
		return nil, ErrNotListingOwner
	}
	if snap.ListingType != req.ItemType {
		return nil, ErrListingNotFound
	}

	item, err := listingFromSnapshot(snap)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if !item.Bookable() {
		return nil, ErrListingNotBookable
	}

	entity, err := c.buildBooking(ctx, item, nil, manualRequestData(req), booking.MethodManualEntry)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		applied, err := tx.Ledger().IncrementGuarded(
			ctx, tx.DB(),
			entity.ItemID(), entity.VisitDate(),
			entity.SlotsBooked(), item.TotalCapacity(),
		)
		if err != nil {
			return err
		}
		if !applied {
			booked, err := tx.Reads().BookedSlots(ctx, entity.ItemID(), entity.VisitDate())
			if err != nil {
				return err
			}
			remaining := item.TotalCapacity() - booked
			if remaining < 0 {
				remaining = 0
			}
			return &CapacityExceededError{Remaining: remaining}
		}

		_, err = tx.Bookings().Create(ctx, tx.DB(), entity)
		return err
	})
	if err != nil {
		var capErr *CapacityExceededError
		if errors.As(err, &capErr) {
			return nil, capErr
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.viewRepo.FindByID(ctx, entity.ID())
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID, actorID uuid.UUID, role identity.Role) error {
	now := c.clock.Now()

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Bookings().FindByIDForUpdate(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		releases := entity.ReleasesLedger()

		switch {
		case entity.GuestID() != nil && *entity.GuestID() == actorID:
			if err := entity.CancelByGuest(now); err != nil {
				return err
			}
		default:
			snap, err := tx.Reads().ListingByID(ctx, entity.ItemID())
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if snap.HostID != actorID && role != identity.RoleAdmin {
				return ErrCancelNotAllowed
			}
			if err := entity.CancelByHost(); err != nil {
				return err
			}
		}

		if err := tx.Bookings().UpdateState(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if releases {
			if err := tx.Ledger().Decrement(ctx, tx.DB(), entity.ItemID(), entity.VisitDate(), entity.SlotsBooked()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		return nil
	})
}

func listingFromSnapshot(snap *shared.ListingSnapshot) (*listing.Listing, error) {
	listingType, err := listing.NewType(snap.ListingType)
	if err != nil {
		return nil, err
	}
	return listing.ReconstructListing(
		snap.ID, snap.HostID, snap.Name, listingType,
		snap.PriceCents, snap.TotalCapacity,
		listing.ApprovalStatus(snap.ApprovalStatus), snap.IsHidden,
		nil, nil, time.Time{}, time.Time{},
	), nil
}

func calculateRequestHash(req any) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
