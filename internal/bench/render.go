package bench

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Render formats results as a leaderboard. Bytes per cycle is included
// when hz is known. With pretty unset the table is rendered as CSV.
func Render(results []Result, hz int64, pretty bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := table.Row{"Size", "Best", "Tries", "Bytes/ns"}
	if hz > 0 {
		header = append(header, "Bytes/cycle")
	}
	tw.AppendHeader(header)

	for _, r := range results {
		row := table.Row{
			humanize.IBytes(uint64(r.Size)),
			r.Best.String(),
			r.Tries,
			fmt.Sprintf("%.3f", r.BytesPerNS()),
		}
		if hz > 0 {
			row = append(row, fmt.Sprintf("%.3f", r.BytesPerCycle(hz)))
		}
		tw.AppendRow(row)
	}

	configs := make([]table.ColumnConfig, len(header))
	for i := range configs {
		configs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignRight, AlignHeader: text.AlignLeft}
	}
	tw.SetColumnConfigs(configs)

	if !pretty {
		return tw.RenderCSV()
	}
	return tw.Render()
}
