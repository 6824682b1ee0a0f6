package effects_test

import (
	"context"
	"testing"
	"time"

	"github.com/on-the-ground/partitions/effects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testEffect effects.EffectEnum = "partitions_effect_enum_test"

type square int64

func (s square) PartitionKey() string { return "square" }

func TestResumableEffect_RoundTrip(t *testing.T) {
	ctx, end := effects.WithResumablePartitionableEffectHandler(
		context.Background(),
		effects.NewEffectScopeConfig(0, 0),
		testEffect,
		func(_ context.Context, s square) (int64, error) {
			return int64(s) * int64(s), nil
		},
	)
	defer end()

	res := <-effects.PerformResumableEffect[square, int64](ctx, testEffect, square(9))
	require.NoError(t, res.Err)
	assert.Equal(t, int64(81), res.Value)
}

func TestFireAndForgetEffect_TeardownRuns(t *testing.T) {
	got := make(chan string, 1)
	tornDown := false
	parent := context.Background()
	ctx, end := effects.WithFireAndForgetEffectHandler(
		parent,
		0,
		testEffect,
		func(_ context.Context, s string) { got <- s },
		func() { tornDown = true },
	)

	effects.FireAndForgetEffect(ctx, testEffect, "ping")
	assert.Equal(t, parent, end())
	assert.True(t, tornDown)
	assert.Equal(t, "ping", <-got)
}

func TestEffect_NoHandlerPanics(t *testing.T) {
	assert.Panics(t, func() {
		effects.FireAndForgetEffect(context.Background(), testEffect, "lost")
	})
}

func TestEffect_TooManyTeardownsPanics(t *testing.T) {
	assert.Panics(t, func() {
		effects.WithFireAndForgetEffectHandler(
			context.Background(), 1, testEffect,
			func(context.Context, string) {},
			func() {}, func() {},
		)
	})
}

func TestMeasure(t *testing.T) {
	span := effects.Measure(func() { time.Sleep(5 * time.Millisecond) })
	assert.GreaterOrEqual(t, span.Duration(), 5*time.Millisecond)
	assert.False(t, span.End().Before(span.Start()))
}
