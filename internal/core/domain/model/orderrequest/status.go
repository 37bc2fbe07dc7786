package orderrequest

import (
	"fmt"

	"sales/internal/pkg/errs"
)

// Status is the production state of an order request.
//
//	Pending ──> InProduction ──> Finished
type Status int

const (
	// Unknown marks an uninitialized status.
	Unknown Status = iota

	// Pending requests are waiting to be produced.
	Pending

	// InProduction requests are being produced. Their sales are locked for non-admin users.
	InProduction

	// Finished requests have been produced completely.
	Finished
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		Pending:      "Pending",
		InProduction: "InProduction",
		Finished:     "Finished",
	}
}

// Validate checks that the status is one of Pending, InProduction or Finished.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Out of range values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
