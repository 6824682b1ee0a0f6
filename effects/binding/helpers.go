package binding

import (
	"context"
	"errors"

	"github.com/on-the-ground/partitions/shared/helper"
)

// GetFromBindingEffect fetches a typed value from the Binding effect using the provided key.
// Returns a zero value and error if the key is not found or the type is mismatched.
func GetFromBindingEffect[T any](ctx context.Context, key string) (T, error) {
	return helper.GetTypedValueOf[T](func() (any, error) {
		return Effect(ctx, key)
	})
}

// MustGetFromBindingEffect is the panic-on-failure variant of GetFromBindingEffect.
// It panics if the key is missing or the type doesn't match.
func MustGetFromBindingEffect[T any](ctx context.Context, key string) T {
	return helper.MustGetTypedValue[T](func() (any, error) {
		return Effect(ctx, key)
	})
}

// GetOrDefault is GetFromBindingEffect with def standing in for an unbound key.
// A bound value of the wrong type is still an error.
func GetOrDefault[T any](ctx context.Context, key string, def T) (T, error) {
	v, err := GetFromBindingEffect[T](ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return def, nil
	}
	return v, err
}
