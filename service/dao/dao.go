// Package dao defines the minimal persistence contract the engine stores
// run records behind, plus an in-memory implementation in the store
// sub-package. Hosts can plug any backend that satisfies Service.
package dao

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no record exists under the key.
var ErrNotFound = errors.New("record not found")

// Service is a generic key/value DAO for entities of type T keyed by K.
type Service[K comparable, T any] interface {
	Save(ctx context.Context, value *T) error
	Load(ctx context.Context, key K) (*T, error)
	Delete(ctx context.Context, key K) error
	List(ctx context.Context) ([]*T, error)
}
