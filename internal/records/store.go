// Package records keeps the best run ever played: its duration and its kill
// count, stored as two string keys in a small key-value store.
package records

import (
	"context"
	"errors"
)

// ErrCorruptRecord is returned when a stored best value is not a number.
var ErrCorruptRecord = errors.New("corrupt record")

// Store is a string key-value store. Get reports ok=false for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
