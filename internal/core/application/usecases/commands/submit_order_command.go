package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand is a customer's order as typed into the order form.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand("Mona Adel", "12 Nile St", "01001234567", "2x koshary")
//	var validationErr *errs.ValidationError
//	if errors.As(err, &validationErr) {
//	    fmt.Println(validationErr.Fields) // names of the blank fields
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerName string
	address      string
	phone        string
	orderDetails string

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand trims every field and fails with *errs.ValidationError naming each
// field that is blank.
func NewSubmitOrderCommand(customerName, address, phone, orderDetails string) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		orderID: kernel.NewUUID(),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setTrimmed(&cmd.customerName, "customerName", customerName),
		setTrimmed(&cmd.address, "address", address),
		setTrimmed(&cmd.phone, "phone", phone),
		setTrimmed(&cmd.orderDetails, "orderDetails", orderDetails),
	); err != nil {
		return SubmitOrderCommand{}, errs.NewValidationError(err)
	}

	return cmd, nil
}

func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID is generated up front so a failed submission can still be referred to.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SubmitOrderCommand) CustomerName() string {
	return c.customerName
}

func (c SubmitOrderCommand) Address() string {
	return c.address
}

func (c SubmitOrderCommand) Phone() string {
	return c.phone
}

func (c SubmitOrderCommand) OrderDetails() string {
	return c.orderDetails
}

func setTrimmed(dst *string, paramName, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*dst = trimmed
	return nil
}
