package commands

import (
	"context"

	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/errs"
)

// RemoveOrderCommandHandler deletes an order and its parcels. The two
// deletes are independent writes: parcels first, so a failure in between
// leaves an order whose embedded list still names its parcels (recoverable)
// rather than orphaned normalized records.
type RemoveOrderCommandHandler struct {
	storeFactory DualStoreFactory
}

// NewRemoveOrderCommandHandler creates the handler for order deletion.
func NewRemoveOrderCommandHandler(storeFactory DualStoreFactory) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{storeFactory: storeFactory}
}

// Handle deletes the order after verifying the administrator role and the
// order's existence.
func (h *RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.ActorRole() != status.Administrator {
		return ErrAdministratorRequired
	}

	store := h.storeFactory.Create()
	orders := store.OrderRepository()
	parcels := store.ParcelRepository()

	if _, err := orders.Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := parcels.RemoveByOrder(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := orders.Remove(ctx, cmd.OrderID()); err != nil {
		return errs.NewPartialUpdateError([]string{StepParcel}, err)
	}

	return nil
}
