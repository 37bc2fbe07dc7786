package ordersale

import (
	"fmt"

	"sales/internal/pkg/errs"
)

// Status is the delivery state of an order sale.
type Status int

const (
	// Unknown marks an uninitialized status.
	Unknown Status = iota

	// Pending sales have not been delivered yet.
	Pending

	// Delivered sales are locked for non-admin users.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Delivered: "Delivered",
	}
}

// Validate checks that the status is Pending or Delivered.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
