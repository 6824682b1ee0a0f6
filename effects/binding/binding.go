package binding

import (
	"context"
	"errors"
	"fmt"

	"github.com/on-the-ground/partitions/effects"
	effectmodel "github.com/on-the-ground/partitions/effects/internal/model"
)

// ErrKeyNotFound is returned when neither this scope nor any upper scope binds a key.
var ErrKeyNotFound = errors.New("key not found")

// Payload defines a key-based lookup payload.
// Used as input to the Binding effect.
type Payload string

func (bp Payload) PartitionKey() string {
	return string(bp)
}

// WithEffectHandler registers a resumable, partitionable effect handler for bindings.
//
//   - Non-positive bufferSize or numWorkers fall back to 1.
//   - Accepts a key-value map used for lookups.
//   - Falls back to upper scopes if a key is not found locally.
//   - Returns a context with the effect handler registered.
//   - Returns a teardown function to close the handler; it returns the
//     context the handler was registered on.
func WithEffectHandler(
	ctx context.Context,
	bufferSize, numWorkers int,
	bindingMap map[string]any,
) (context.Context, func() context.Context) {
	bindingHandler := &bindingHandler{
		bindingMap: normalizeBindingMap(bindingMap),
	}
	return effects.WithResumablePartitionableEffectHandler[Payload, any](
		ctx,
		effectmodel.NewEffectScopeConfig(bufferSize, numWorkers),
		effectmodel.EffectBinding,
		bindingHandler.handle,
	)
}

// Effect performs a key-based lookup using the Binding effect handler.
//
// Returns either the value found or an error if the key is not found and no upper scope provides it.
func Effect(ctx context.Context, key string) (val any, err error) {
	resultCh := effects.PerformResumableEffect[Payload, any](ctx, effectmodel.EffectBinding, Payload(key))
	select {
	case res, ok := <-resultCh:
		if ok {
			return res.Value, res.Err
		}
		return nil, effects.ErrHandlerClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func normalizeBindingMap(bm map[string]any) map[string]any {
	if bm == nil {
		bm = make(map[string]any)
	}
	return bm
}

// delegateBindingEffect asks the scope above for key.
func delegateBindingEffect(upperCtx context.Context, key string) (res any, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rErr, ok := r.(error); ok && errors.Is(rErr, effectmodel.ErrNoEffectHandler) {
				res = nil
				err = fmt.Errorf("%w: %s", ErrKeyNotFound, key)
				return
			}
			panic(r)
		}
	}()

	return Effect(upperCtx, key)
}

type bindingHandler struct {
	bindingMap map[string]any
}

// handle looks up the key in the local bindingMap.
// - If found: returns the value.
// - If not found: delegates the effect to an upper handler, if there is one.
// - Otherwise: returns ErrKeyNotFound.
func (bh bindingHandler) handle(ctx context.Context, payload Payload) (any, error) {
	key := string(payload)
	v, ok := bh.bindingMap[key]
	if !ok {
		return delegateBindingEffect(ctx, key)
	}
	return v, nil
}
