// Package setdiff classifies two keyed collections into the elements that
// must be deleted, created or updated to turn the old collection into the new one.
package setdiff

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey is returned when a key appears more than once on the same side.
var ErrDuplicateKey = errors.New("duplicate key")

// Match pairs a persisted element with the submitted element that shares its key.
// New holds the authoritative values, Old carries the identity of the existing row.
type Match[T, U any] struct {
	Old T
	New U
}

// Result is the outcome of Diff. Every element of both inputs lands in exactly one bucket.
type Result[T, U any] struct {
	ToDelete []T
	ToCreate []U
	ToUpdate []Match[T, U]
}

// IsEmpty reports whether the result holds no operation at all.
func (r Result[T, U]) IsEmpty() bool {
	return len(r.ToDelete) == 0 && len(r.ToCreate) == 0 && len(r.ToUpdate) == 0
}

// Diff compares old and next by key.
//
//   - old elements whose key is absent from next go to ToDelete
//   - next elements whose key is absent from old go to ToCreate
//   - elements whose key is present on both sides go to ToUpdate
//
// Keys are compared with ==. Buckets keep the encounter order of their input
// (ToUpdate follows next). Duplicate keys on either side are rejected with ErrDuplicateKey.
func Diff[T, U any, K comparable](
	old []T,
	next []U,
	oldKey func(T) K,
	newKey func(U) K,
) (Result[T, U], error) {
	oldIndex := make(map[K]int, len(old))
	for i, item := range old {
		key := oldKey(item)
		if _, ok := oldIndex[key]; ok {
			return Result[T, U]{}, fmt.Errorf("%w in old collection: %v", ErrDuplicateKey, key)
		}
		oldIndex[key] = i
	}

	newKeys := make(map[K]struct{}, len(next))
	for _, item := range next {
		key := newKey(item)
		if _, ok := newKeys[key]; ok {
			return Result[T, U]{}, fmt.Errorf("%w in new collection: %v", ErrDuplicateKey, key)
		}
		newKeys[key] = struct{}{}
	}

	result := Result[T, U]{
		ToDelete: make([]T, 0),
		ToCreate: make([]U, 0),
		ToUpdate: make([]Match[T, U], 0),
	}

	for _, item := range old {
		if _, ok := newKeys[oldKey(item)]; !ok {
			result.ToDelete = append(result.ToDelete, item)
		}
	}

	for _, item := range next {
		i, ok := oldIndex[newKey(item)]
		if !ok {
			result.ToCreate = append(result.ToCreate, item)
			continue
		}
		result.ToUpdate = append(result.ToUpdate, Match[T, U]{Old: old[i], New: item})
	}

	return result, nil
}
