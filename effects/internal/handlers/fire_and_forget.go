package handlers

import (
	"context"
)

func NewFireAndForgetHandler[P any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, P),
	teardown func(),
) FireAndForgetHandler[P] {
	return FireAndForgetHandler[P]{
		effectScope: newEffectScope(
			ctx,
			func(ctx context.Context) WorkerDispatcher[P] {
				return NewSingleQueue(ctx, bufferSize, handleFn)
			},
			teardown,
		),
	}
}

type FireAndForgetHandler[P any] struct {
	*effectScope[P]
}

// FireAndForgetEffect queues payload and returns without waiting for it to be
// handled. Payloads sent after the scope closed are dropped.
func (ffh FireAndForgetHandler[P]) FireAndForgetEffect(ctx context.Context, payload P) {
	ffh.send(ctx, payload)
}
