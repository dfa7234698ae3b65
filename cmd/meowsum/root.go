package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := new(commandContext)

	rootCmd := &cobra.Command{
		Use:           "meowsum [file [file]]",
		Short:         "Hash and compare files with the Meow hash",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Using %d-bit Meow implementation\n", int(ctx.impl.Width()))

			switch len(args) {
			case 0:
				return hashTestBuffer(out, ctx.impl, ctx.seed)
			case 1:
				return hashFile(out, cmd.InOrStdin(), ctx.impl, ctx.seed, args[0])
			default:
				return compareFiles(cmd.Context(), out, ctx.impl, ctx.seed, args[0], args[1])
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&ctx.flags.config, "config", "c", "", "Configuration file path")
	pf.StringVar(&ctx.flags.seed, "seed", "0", "Seed as an unsigned integer (0x and 0b prefixes accepted)")
	pf.StringVar(&ctx.flags.width, "width", "auto", "Kernel width: auto, 128, 256 or 512")
	pf.StringVar(&ctx.flags.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	pf.StringVar(&ctx.flags.logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(newBenchCommand(ctx))
	rootCmd.AddCommand(newInfoCommand(ctx))

	return rootCmd
}
