package effects

import (
	"context"

	"github.com/on-the-ground/partitions/effects/internal/handlers"
	"github.com/on-the-ground/partitions/effects/internal/helper"
	effectmodel "github.com/on-the-ground/partitions/effects/internal/model"
	sharedHelper "github.com/on-the-ground/partitions/shared/helper"
	"go.uber.org/zap"
)

type (
	EffectEnum        = effectmodel.EffectEnum
	EffectScopeConfig = effectmodel.EffectScopeConfig
	Partitionable     = effectmodel.Partitionable
)

var (
	ErrNoEffectHandler = effectmodel.ErrNoEffectHandler
	ErrHandlerClosed   = handlers.ErrHandlerClosed
)

func NewEffectScopeConfig(bufferSize, numWorkers int) EffectScopeConfig {
	return effectmodel.NewEffectScopeConfig(bufferSize, numWorkers)
}

// WithResumablePartitionableEffectHandler registers a resumable effect handler for a given effect enum.
//
// This handler supports hash-based partitioning via PartitionKey(), so lookups for
// the same key are always served by the same worker.
//
// Usage:
//
//	ctx, end := WithResumablePartitionableEffectHandler(ctx, config, MyEffectEnum, handleFn)
//	defer end()
func WithResumablePartitionableEffectHandler[P Partitionable, R any](
	ctx context.Context,
	config EffectScopeConfig,
	enum EffectEnum,
	handleFn func(context.Context, P) (R, error),
	teardown ...func(),
) (context.Context, func() context.Context) {
	td := normalizeTeardown(teardown)
	handler := handlers.NewPartitionableResumableHandler(ctx, config, handleFn, td)
	ctxWith := context.WithValue(ctx, enum, handler)
	zap.L().Sugar().Debugf("created resumable effect handler: effectId: %v, enum: %v", handler.EffectId, enum)

	return ctxWith, func() context.Context {
		handler.Close()
		zap.L().Sugar().Debugf("closed resumable effect handler: effectId: %v, enum: %v", handler.EffectId, enum)
		return ctx
	}
}

// PerformResumableEffect sends a payload to the resumable effect handler.
//
// The returned channel yields one result and is closed.
// Panics if no handler is registered for the given effect enum.
func PerformResumableEffect[P Partitionable, R any](
	ctx context.Context,
	enum EffectEnum,
	payload P,
) <-chan handlers.ResumableResult[R] {
	handler := sharedHelper.MustGetTypedValue[handlers.ResumableHandler[P, R]](
		func() (any, error) {
			return helper.GetHandler(ctx, enum)
		},
	)
	return handler.PerformEffect(ctx, payload)
}

// WithFireAndForgetEffectHandler registers a fire-and-forget effect handler for a given effect enum.
//
// Suitable for one-shot effects like logging. This handler executes without returning a result.
// Payloads already queued when the handler is closed are still handled.
func WithFireAndForgetEffectHandler[P any](
	ctx context.Context,
	bufferSize int,
	enum EffectEnum,
	handleFn func(context.Context, P),
	teardown ...func(),
) (context.Context, func() context.Context) {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	td := normalizeTeardown(teardown)
	handler := handlers.NewFireAndForgetHandler(ctx, bufferSize, handleFn, td)
	ctxWith := context.WithValue(ctx, enum, handler)
	zap.L().Sugar().Debugf("created fire/forget effect handler: effectId: %v, enum: %v", handler.EffectId, enum)

	return ctxWith, func() context.Context {
		handler.Close()
		zap.L().Sugar().Debugf("closed fire/forget effect handler: effectId: %v, enum: %v", handler.EffectId, enum)
		return ctx
	}
}

// FireAndForgetEffect triggers a fire-and-forget effect for the given enum and payload.
//
// The handler will process the payload asynchronously.
// Panics if no handler is registered for the given enum.
func FireAndForgetEffect[P any](
	ctx context.Context,
	enum EffectEnum,
	payload P,
) {
	handler := sharedHelper.MustGetTypedValue[handlers.FireAndForgetHandler[P]](
		func() (any, error) {
			return helper.GetHandler(ctx, enum)
		},
	)
	handler.FireAndForgetEffect(ctx, payload)
}

// normalizeTeardown flattens optional teardown functions into a single callable.
//
// Accepts either 0 or 1 teardown functions. Panics if more than one is passed.
func normalizeTeardown(teardown []func()) func() {
	switch len(teardown) {
	case 1:
		return teardown[0]
	case 0:
		return func() {}
	default:
		panic("normalizeTeardown: only one or zero teardown functions allowed")
	}
}
