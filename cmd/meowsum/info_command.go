package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the selected kernel and CPU features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cpu := cpuInfo()

			rows := [][]string{
				{"Kernel", ctx.impl.Width().String()},
				{"Block size", humanize.IBytes(uint64(ctx.impl.Width().BlockSize()))},
				{"CPU", cpu.Brand},
				{"Cores", fmt.Sprint(cpu.Cores)},
				{"Frequency", formatHz(cpu.Hz)},
				{"Features", strings.Join(cpu.Features, " ")},
			}

			if isTerminal(out) {
				fmt.Fprintln(out, renderTable([]string{"Property", "Value"}, rows))
				return nil
			}
			for _, row := range rows {
				fmt.Fprintf(out, "%s: %s\n", row[0], row[1])
			}
			return nil
		},
	}
}

func formatHz(hz int64) string {
	if hz <= 0 {
		return "unknown"
	}
	return humanize.SIWithDigits(float64(hz), 2, "Hz")
}
