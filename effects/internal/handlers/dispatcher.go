package handlers

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
	effectmodel "github.com/on-the-ground/partitions/effects/internal/model"
)

// WorkerDispatcher routes each message to the channel of the worker that
// handles it. Wait blocks until every worker has returned.
type WorkerDispatcher[T any] interface {
	GetChannelOf(msg T) chan T
	Wait()
}

// --- single queue ---

type singleQueue[T any] struct {
	effectCh chan T
	wg       *sync.WaitGroup
}

func (q singleQueue[T]) GetChannelOf(_ T) chan T {
	return q.effectCh
}

func (q singleQueue[T]) Wait() {
	q.wg.Wait()
}

func NewSingleQueue[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	wg := &sync.WaitGroup{}
	effCh := make(chan T, bufferSize)
	wg.Add(1)
	go work(ctx, effCh, handleFn, wg)
	return singleQueue[T]{effectCh: effCh, wg: wg}
}

// --- partitioned queue ---

type partitionedQueue[T effectmodel.Partitionable] struct {
	effectChs []chan T
	wg        *sync.WaitGroup
}

func (pq partitionedQueue[T]) GetChannelOf(msg T) chan T {
	return pq.effectChs[getIndexByHash(msg, len(pq.effectChs))]
}

func (pq partitionedQueue[T]) Wait() {
	pq.wg.Wait()
}

// NewPartitionedQueue starts numWorkers workers. Messages with the same
// PartitionKey always reach the same worker, in order.
func NewPartitionedQueue[T effectmodel.Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	wg := &sync.WaitGroup{}
	channels := make([]chan T, numWorkers)
	for i := range numWorkers {
		ch := make(chan T, bufferSize)
		wg.Add(1)
		go work(ctx, ch, handleFn, wg)
		channels[i] = ch
	}
	return partitionedQueue[T]{effectChs: channels, wg: wg}
}

// work handles messages until ctx is done, then handles whatever is still
// buffered so that nothing accepted before the scope closed is lost.
func work[T any](ctx context.Context, ch chan T, handleFn func(context.Context, T), wg *sync.WaitGroup) {
	defer wg.Done()
	for {
		select {
		case msg := <-ch:
			handleFn(ctx, msg)
		case <-ctx.Done():
			for {
				select {
				case msg := <-ch:
					handleFn(ctx, msg)
				default:
					return
				}
			}
		}
	}
}

func getIndexByHash(payload effectmodel.Partitionable, numChs int) int {
	switch numChs {
	case 0:
		panic("number of channels cannot be 0")
	case 1:
		return 0
	default:
		return int(xxhash.Sum64String(payload.PartitionKey()) % uint64(numChs))
	}
}
