package kernel

import (
	"fmt"
	"strconv"

	"sales/internal/pkg/errs"
)

// ID is the numeric primary key of a record in the relational store.
// The zero value means the record has not been persisted yet.
type ID int64

// NewID validates that raw is a positive identifier.
func NewID(raw int64) (ID, error) {
	id := ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate returns an error unless the identifier is positive.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

// IsZero reports whether the identifier has not been assigned yet.
func (id ID) IsZero() bool {
	return id == 0
}

// Int64 returns the raw value.
func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
