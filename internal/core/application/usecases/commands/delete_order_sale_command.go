package commands

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrDeleteOrderSaleCommandIsNotConstructed = errors.New(
	"DeleteOrderSaleCommand must be created via NewDeleteOrderSaleCommand constructor",
)

// DeleteOrderSaleCommand soft deletes an order sale together with its line items.
type DeleteOrderSaleCommand struct { //nolint:recvcheck //using for validation
	userID kernel.ID
	saleID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteOrderSaleCommand creates a delete command issued by userID.
func NewDeleteOrderSaleCommand(userID, saleID kernel.ID) (DeleteOrderSaleCommand, error) {
	cmd := DeleteOrderSaleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setSaleID(saleID),
	); err != nil {
		return DeleteOrderSaleCommand{}, err
	}

	return cmd, nil
}

func (c DeleteOrderSaleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderSaleCommandIsNotConstructed)
}

func (c DeleteOrderSaleCommand) UserID() kernel.ID {
	return c.userID
}

func (c DeleteOrderSaleCommand) SaleID() kernel.ID {
	return c.saleID
}

func (c *DeleteOrderSaleCommand) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	c.userID = userID
	return nil
}

func (c *DeleteOrderSaleCommand) setSaleID(saleID kernel.ID) error {
	if err := saleID.Validate(); err != nil {
		return fmt.Errorf("order sale id: %w", err)
	}
	c.saleID = saleID
	return nil
}
