package handlers

import (
	"context"

	effectmodel "github.com/on-the-ground/partitions/effects/internal/model"
)

func NewPartitionableResumableHandler[P effectmodel.Partitionable, R any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	handleFn func(context.Context, P) (R, error),
	teardown func(),
) ResumableHandler[P, R] {
	return ResumableHandler[P, R]{
		effectScope: newEffectScope(
			ctx,
			func(ctx context.Context) WorkerDispatcher[ResumableEffectMessage[P, R]] {
				return NewPartitionedQueue(
					ctx,
					config.NumWorkers,
					config.BufferSize,
					func(ctx context.Context, msg ResumableEffectMessage[P, R]) {
						// resumeCh has room for exactly this one result
						msg.ResumeCh <- ResumableResultFrom(handleFn(ctx, msg.Payload))
						close(msg.ResumeCh)
					},
				)
			},
			teardown,
		),
	}
}

type ResumableHandler[P any, R any] struct {
	*effectScope[ResumableEffectMessage[P, R]]
}

// PerformEffect sends payload to the handler. The returned channel yields
// exactly one result and is then closed.
func (rh ResumableHandler[P, R]) PerformEffect(ctx context.Context, payload P) <-chan ResumableResult[R] {
	resumeCh := make(chan ResumableResult[R], 1)

	msg := ResumableEffectMessage[P, R]{
		Payload:  payload,
		ResumeCh: resumeCh,
	}
	if !rh.send(ctx, msg) {
		err := ctx.Err()
		if err == nil {
			err = ErrHandlerClosed
		}
		resumeCh <- ResumableResult[R]{Err: err}
		close(resumeCh)
	}
	return resumeCh
}

// ResumableResult represents the result of handled effects.
type ResumableResult[T any] struct {
	Value T
	Err   error
}

func ResumableResultFrom[R any](res R, err error) ResumableResult[R] {
	return ResumableResult[R]{Value: res, Err: err}
}

var _ effectmodel.Partitionable = ResumableEffectMessage[any, any]{}

type ResumableEffectMessage[P any, R any] struct {
	Payload  P
	ResumeCh chan ResumableResult[R]
}

func (rem ResumableEffectMessage[P, R]) PartitionKey() string {
	if p, ok := any(rem.Payload).(effectmodel.Partitionable); ok {
		return p.PartitionKey()
	}
	return ""
}
