package main

import (
	"fmt"
	"strconv"

	"github.com/on-the-ground/partitions/sequence"
	"github.com/spf13/cobra"
)

func newPentagonalCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "pentagonal K",
		Short:        "Print the first K generalized pentagonal numbers with their recurrence signs",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid count %q: %w", args[0], err)
			}
			if k < 0 {
				return fmt.Errorf("invalid count %d: must be non-negative", k)
			}
			ps, signs := sequence.NewPentagonalNumberSequence(), sequence.NewSignCycle()
			out := cmd.OutOrStdout()
			for range k {
				if _, err := fmt.Fprintf(out, "%s%d\n", signs.Next(), ps.Next()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
