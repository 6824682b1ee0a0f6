package main

import (
	"bytes"
	"testing"

	"github.com/on-the-ground/partitions/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestPartitions_PrintsValue(t *testing.T) {
	for arg, want := range map[string]string{
		"7":  "15\n",
		"0":  "1\n",
		"50": "204226\n",
	} {
		stdout, _, err := execute(arg)
		require.NoError(t, err)
		assert.Equal(t, want, stdout, "partitions %s", arg)
	}
}

func TestPartitions_Flags(t *testing.T) {
	stdout, _, err := execute("--strategy", "iterative", "--cache", "memdb", "100")
	require.NoError(t, err)
	assert.Equal(t, "190569292\n", stdout)

	stdout, stderr, err := execute("--cache", "sharded", "--shards", "3", "--log-level", "info", "10")
	require.NoError(t, err)
	assert.Equal(t, "42\n", stdout)
	assert.Contains(t, stderr, "partition number computed")
}

func TestPartitions_InputErrors(t *testing.T) {
	for _, args := range [][]string{
		{"abc"},
		{},
		{"1", "2"},
		{"99999999999999999999"},
		{"--strategy", "guess", "3"},
		{"--log-level", "loud", "3"},
	} {
		stdout, stderr, err := execute(args...)
		assert.Error(t, err, "args %v", args)
		assert.Empty(t, stdout, "args %v", args)
		assert.Contains(t, stderr, "Error", "args %v", args)
	}
}

func TestPartitions_NegativeAfterDoubleDash(t *testing.T) {
	stdout, _, err := execute("--", "-3")
	assert.ErrorIs(t, err, partition.ErrNegative)
	assert.Empty(t, stdout)
}

func TestPentagonal(t *testing.T) {
	stdout, _, err := execute("pentagonal", "6")
	require.NoError(t, err)
	assert.Equal(t, "+1\n+2\n-5\n-7\n+12\n+15\n", stdout)

	_, _, err = execute("pentagonal", "-1")
	assert.Error(t, err)
	_, _, err = execute("pentagonal", "x")
	assert.Error(t, err)
}
