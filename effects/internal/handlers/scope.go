package handlers

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrHandlerClosed = errors.New("effect handler closed")

// effectScope owns the workers of one registered handler. Its lifetime is
// bounded by the context it was created with and by Close.
type effectScope[T any] struct {
	EffectId   string
	dispatcher WorkerDispatcher[T]
	done       <-chan struct{}
	closeFn    func()
	closeOnce  sync.Once
}

// Close stops the workers, waits for them to drain and runs the teardown.
// Calling it more than once is a no-op.
func (es *effectScope[T]) Close() {
	es.closeOnce.Do(es.closeFn)
}

// send hands msg to its worker. It reports false if either the caller's
// context or the scope ended first.
func (es *effectScope[T]) send(ctx context.Context, msg T) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case <-es.done:
		return false
	default:
	}
	select {
	case <-ctx.Done():
		return false
	case <-es.done:
		return false
	case es.dispatcher.GetChannelOf(msg) <- msg:
		return true
	}
}

func newEffectScope[T any](
	ctx context.Context,
	newDispatcher func(context.Context) WorkerDispatcher[T],
	teardown func(),
) *effectScope[T] {
	ctx, cancelFn := context.WithCancel(ctx)
	dispatcher := newDispatcher(ctx)
	return &effectScope[T]{
		EffectId:   uuid.New().String(),
		dispatcher: dispatcher,
		done:       ctx.Done(),
		closeFn: func() {
			cancelFn()
			dispatcher.Wait()
			teardown()
		},
	}
}
