package commands

import (
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/guard"
)

var (
	// ErrRemoveOrderCommandIsNotConstructed is returned when the command
	// was not created through its constructor.
	ErrRemoveOrderCommandIsNotConstructed = errors.New(
		"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
	)

	// ErrAdministratorRequired is returned when a non-administrator
	// attempts to delete an order.
	ErrAdministratorRequired = errors.New("order deletion requires the administrator role")
)

// RemoveOrderCommand represents an administrator's request to delete an
// order and, cascading, its parcels. Tracking events are retained as the
// audit trail.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actorRole status.Role

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a validated deletion request.
func NewRemoveOrderCommand(orderID kernel.UUID, actorRole status.Role) (RemoveOrderCommand, error) {
	cmd := RemoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorRole(actorRole),
	); err != nil {
		return RemoveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c RemoveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorRole returns the asserted role of the acting user.
func (c RemoveOrderCommand) ActorRole() status.Role {
	return c.actorRole
}

func (c *RemoveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RemoveOrderCommand) setActorRole(actorRole status.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}
	c.actorRole = actorRole
	return nil
}
