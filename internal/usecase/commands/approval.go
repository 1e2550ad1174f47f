package commands

import (
	"context"

	"tembea/internal/domain/listing"
	reqdto "tembea/internal/handler/dto/request"
	"tembea/internal/pkg/clock"
	"tembea/internal/pkg/errs"
	"tembea/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidItemType = errs.New("invalid item type")
	ErrNoItemIDs       = errs.New("no item ids given")
)

type ApprovalCommands interface {
	// ApproveItems marks the listings approved and visible, returning the
	// number of rows touched. IDs of the wrong type are silently skipped.
	ApproveItems(ctx context.Context, req reqdto.ApproveItemsRequest, adminID uuid.UUID) (int64, error)
}

type approvalCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewApprovalCommands(uow shared.UnitOfWork, clk clock.Clock) ApprovalCommands {
	return &approvalCommandsImpl{uow: uow, clock: clk}
}

func (c *approvalCommandsImpl) ApproveItems(ctx context.Context, req reqdto.ApproveItemsRequest, adminID uuid.UUID) (int64, error) {
	itemType, err := listing.NewType(req.ItemType)
	if err != nil {
		return 0, ErrInvalidItemType
	}
	if len(req.ItemIDs) == 0 {
		return 0, ErrNoItemIDs
	}

	var updated int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count, err := tx.Listings().Approve(ctx, tx.DB(), itemType.String(), req.ItemIDs, adminID, c.clock.Now())
		if err != nil {
			return err
		}
		updated = count
		return nil
	})
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return updated, nil
}
