package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/on-the-ground/partitions/effects/binding"
	"github.com/on-the-ground/partitions/effects/configkeys"
	"github.com/on-the-ground/partitions/effects/log"
	"github.com/on-the-ground/partitions/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogBufferSize = 16

type rootOptions struct {
	strategy string
	cache    string
	shards   int
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "partitions N",
		Short: "Print the number of integer partitions of N",
		Long: `partitions computes p(N), the number of ways to write N as a sum of
positive integers, with Euler's pentagonal-number recurrence over
arbitrary-precision integers.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid n %q: %w", args[0], err)
			}
			return runPartitions(cmd, opts, n)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.strategy, "strategy", string(service.DefaultStrategy), "evaluation strategy: recursive or iterative")
	flags.StringVar(&opts.cache, "cache", service.DefaultCacheKind, "memo cache: map, sharded or memdb")
	flags.IntVar(&opts.shards, "shards", service.DefaultShards, "shard count for the sharded cache")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level written to stderr")

	cmd.AddCommand(newPentagonalCmd())
	return cmd
}

func runPartitions(cmd *cobra.Command, opts *rootOptions, n int64) error {
	logger, err := newLogger(opts.logLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	ctx, endOfBinding := binding.WithEffectHandler(cmd.Context(), 1, 1, map[string]any{
		configkeys.ConfigPartitionStrategy:          opts.strategy,
		configkeys.ConfigPartitionCacheKind:         opts.cache,
		configkeys.ConfigPartitionCacheShards:       opts.shards,
		configkeys.ConfigEffectLogHandlerBufferSize: defaultLogBufferSize,
	})
	defer endOfBinding()

	bufferSize, err := binding.GetOrDefault(ctx, configkeys.ConfigEffectLogHandlerBufferSize, defaultLogBufferSize)
	if err != nil {
		return err
	}
	ctx, endOfLog := log.WithZapEffectHandler(ctx, bufferSize, logger)
	defer endOfLog()

	res, err := service.Run(ctx, n)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Value.String())
	return err
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	)
	return zap.New(core), nil
}
