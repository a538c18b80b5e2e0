package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/goodnatureofminers/blockinsight7000-cli/internal/blocktime"
	"github.com/rodaine/table"
)

var (
	red       = color.New(color.FgRed).SprintFunc()
	headerFmt = color.New(color.FgCyan, color.Underline).SprintfFunc()
)

// formatDuration renders whole seconds and minutes, both truncated toward zero.
func formatDuration(d time.Duration) string {
	seconds := int64(d / time.Second)
	return fmt.Sprintf("%ds, %dmin", seconds, seconds/60)
}

func formatLongDuration(d time.Duration) string {
	seconds := int64(d / time.Second)
	return fmt.Sprintf("%s, %ddays", formatDuration(d), seconds/86_400)
}

func printNextBlock(w io.Writer, estimate *blocktime.NextBlockEstimate, details bool) {
	_, _ = fmt.Fprintln(w, "Next block will be mined in: ")
	line := formatLongDuration(estimate.Remaining)
	if estimate.Overdue() {
		line = red(line + " (overdue)")
	}
	_, _ = fmt.Fprintln(w, line)

	if !details {
		return
	}
	_, _ = fmt.Fprintln(w)
	tbl := table.New("Field", "Value").WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt)
	tbl.AddRow("Tip height", estimate.TipHeight)
	tbl.AddRow("Tip time", estimate.TipTime.Format(time.RFC3339))
	tbl.AddRow("Epoch", fmt.Sprintf("%d (since block %d)", blocktime.Epoch(estimate.TipHeight), blocktime.EpochStart(estimate.TipHeight)))
	tbl.AddRow("Average", formatDuration(estimate.Average))
	tbl.AddRow("Elapsed", formatDuration(estimate.Elapsed))
	tbl.AddRow("Remaining", formatDuration(estimate.Remaining))
	tbl.Print()
}
