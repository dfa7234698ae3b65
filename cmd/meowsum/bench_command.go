package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/zeebo/meow/internal/bench"
)

func newBenchCommand(ctx *commandContext) *cobra.Command {
	var minTries int
	var budget time.Duration
	var maxSize int64

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure hashing throughput across input sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := bench.Options{
				MinTries: ctx.cfg.Bench.MinTries,
				Budget:   ctx.cfg.Bench.Budget(),
				MaxSize:  ctx.cfg.Bench.MaxSize,
			}
			if cmd.Flags().Changed("min-tries") {
				opts.MinTries = minTries
			}
			if cmd.Flags().Changed("budget") {
				opts.Budget = budget
			}
			if cmd.Flags().Changed("max-size") {
				opts.MaxSize = maxSize
			}

			impl, seed := ctx.impl, ctx.seed
			opts.Progress = func(r bench.Result) {
				ctx.log.Info("measured",
					"size", humanize.IBytes(uint64(r.Size)),
					"best", r.Best,
					"tries", r.Tries,
				)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Using %d-bit Meow implementation\n", int(impl.Width()))

			results, err := bench.Run(cmd.Context(), func(buf []byte) { impl.Sum(seed, buf) }, opts)
			if err != nil {
				return fmt.Errorf("bench: %w", err)
			}

			fmt.Fprintln(out, "Leaderboard:")
			fmt.Fprintln(out, bench.Render(results, bench.CPU().Hz, isTerminal(out)))
			return nil
		},
	}

	cmd.Flags().IntVar(&minTries, "min-tries", 10, "Minimum timed runs per size")
	cmd.Flags().DurationVar(&budget, "budget", 200*time.Millisecond, "Hashing time without a new best before moving on")
	cmd.Flags().Int64Var(&maxSize, "max-size", 64<<20, "Largest input size in bytes")

	return cmd
}
