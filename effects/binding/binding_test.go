package binding_test

import (
	"context"
	"testing"

	"github.com/on-the-ground/partitions/effects/binding"
	"github.com/on-the-ground/partitions/effects/configkeys"
	"github.com/on-the-ground/partitions/shared/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestBindingEffect_BasicLookup(t *testing.T) {
	ctx, closeFn := binding.WithEffectHandler(
		context.Background(),
		1, 1,
		map[string]any{
			configkeys.ConfigPartitionStrategy: "iterative",
		},
	)
	defer closeFn()

	v, err := binding.Effect(ctx, configkeys.ConfigPartitionStrategy)
	require.NoError(t, err)
	assert.Equal(t, "iterative", v)
}

func TestBindingEffect_KeyNotFound(t *testing.T) {
	ctx, closeFn := binding.WithEffectHandler(
		context.Background(),
		1, 1,
		map[string]any{"foo": 123},
	)
	defer closeFn()

	_, err := binding.Effect(ctx, "bar")
	assert.ErrorIs(t, err, binding.ErrKeyNotFound)
}

func TestBindingEffect_DelegatesToUpperScope(t *testing.T) {
	upperCtx, upperClose := binding.WithEffectHandler(
		context.Background(),
		1, 1,
		map[string]any{"upper": "delegated"},
	)
	defer upperClose()

	lowerCtx, lowerClose := binding.WithEffectHandler(
		upperCtx,
		1, 1,
		map[string]any{"lower": "local"},
	)
	defer lowerClose()

	v, err := binding.Effect(lowerCtx, "upper")
	require.NoError(t, err)
	assert.Equal(t, "delegated", v)

	v, err = binding.Effect(lowerCtx, "lower")
	require.NoError(t, err)
	assert.Equal(t, "local", v)

	_, err = binding.Effect(upperCtx, "lower")
	assert.ErrorIs(t, err, binding.ErrKeyNotFound)
}

func TestBindingEffect_ManyWorkers(t *testing.T) {
	bindings := map[string]any{}
	for _, k := range []string{"a", "b", "c", "d", "e", "f"} {
		bindings[k] = k + k
	}
	ctx, closeFn := binding.WithEffectHandler(context.Background(), 4, 3, bindings)
	defer closeFn()

	for k, want := range bindings {
		got, err := binding.Effect(ctx, k)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestGetFromBindingEffect_Typed(t *testing.T) {
	ctx, closeFn := binding.WithEffectHandler(
		context.Background(),
		1, 1,
		map[string]any{configkeys.ConfigPartitionCacheShards: 32},
	)
	defer closeFn()

	shards, err := binding.GetFromBindingEffect[int](ctx, configkeys.ConfigPartitionCacheShards)
	require.NoError(t, err)
	assert.Equal(t, 32, shards)

	_, err = binding.GetFromBindingEffect[string](ctx, configkeys.ConfigPartitionCacheShards)
	assert.ErrorIs(t, err, helper.ErrUnexpectedType)

	kind, err := binding.GetOrDefault(ctx, configkeys.ConfigPartitionCacheKind, "map")
	require.NoError(t, err)
	assert.Equal(t, "map", kind)

	_, err = binding.GetOrDefault(ctx, configkeys.ConfigPartitionCacheShards, "wrong type")
	assert.ErrorIs(t, err, helper.ErrUnexpectedType)

	assert.Equal(t, 32, binding.MustGetFromBindingEffect[int](ctx, configkeys.ConfigPartitionCacheShards))
	assert.Panics(t, func() {
		binding.MustGetFromBindingEffect[int](ctx, "missing")
	})
}

func TestBindingEffect_AfterTeardown(t *testing.T) {
	ctx, closeFn := binding.WithEffectHandler(context.Background(), 1, 1, nil)
	closeFn()

	_, err := binding.Effect(ctx, "anything")
	assert.Error(t, err)
}
