package commands

import (
	"errors"
	"fmt"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when the command was
// not created through its constructor.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new order with one
// parcel per line item. Every parcel starts at the beginning of the
// pipeline.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, customerID, actorID,
//	    []string{"TRK-001", "TRK-002"})
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	actorID         kernel.UUID
	trackingNumbers []string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated order registration. At least
// one line item is required: an order without parcels is malformed by
// definition.
func NewCreateOrderCommand(
	orderID, customerID, actorID kernel.UUID,
	trackingNumbers []string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setActorID(actorID),
		cmd.setTrackingNumbers(trackingNumbers),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the owning customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ActorID returns the identifier of the user placing the order.
func (c CreateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// TrackingNumbers returns one carrier tracking number per line item.
func (c CreateOrderCommand) TrackingNumbers() []string {
	out := make([]string, len(c.trackingNumbers))
	copy(out, c.trackingNumbers)
	return out
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *CreateOrderCommand) setTrackingNumbers(trackingNumbers []string) error {
	if len(trackingNumbers) == 0 {
		return errs.NewValueIsRequiredError("trackingNumbers")
	}
	for i, tn := range trackingNumbers {
		if tn == "" {
			return errs.NewValueIsRequiredError(fmt.Sprintf("trackingNumbers[%d]", i))
		}
	}
	c.trackingNumbers = make([]string, len(trackingNumbers))
	copy(c.trackingNumbers, trackingNumbers)
	return nil
}
