// Package observability renders the run-environment summary a simulation
// prints at startup.
package observability

import (
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"sim-base/system"
	"sim-base/text"
)

// Reporter formats a one-shot snapshot of the host and communicator a run
// starts under. Higher layers usually print it from rank zero only.
type Reporter struct {
	comm        system.Communicator
	distributed bool
	width       int
	colours     bool
}

// NewReporter builds a reporter over the given communicator. A nil comm
// describes a run without a distributed runtime. Values wider than width
// are wrapped at word boundaries.
func NewReporter(comm system.Communicator, distributed bool, width int, colours bool) *Reporter {
	if width <= 0 {
		width = 72
	}
	return &Reporter{comm: comm, distributed: distributed, width: width, colours: colours}
}

// Write renders the summary table to w.
func (r *Reporter) Write(w io.Writer) {
	header := "====== Run environment ======"
	if r.colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Fprintln(w, header)

	mode := "serial"
	if r.distributed {
		mode = "distributed"
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Value"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	rows := [][2]string{
		{"Host", system.Hostname()},
		{"Time", system.TimeHMS()},
		{"CPU load", fmt.Sprintf("%.2f", system.CPULoad())},
		{"Memory RSS", text.FormatInt(int(system.MemoryRSS()>>20), 0) + " MiB"},
		{"Mode", mode},
		{"Processes", text.FormatInt(system.ProcessCount(r.comm), 0)},
		{"Rank", text.FormatInt(system.ProcessRank(r.comm), 0)},
	}
	for _, row := range rows {
		field := row[0]
		for _, line := range text.BreakIntoLines(row[1], r.width, ' ') {
			table.Append([]string{field, line})
			field = ""
		}
	}
	table.Render()
}
