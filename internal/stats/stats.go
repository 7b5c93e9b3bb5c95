// Package stats renders word base summaries.
package stats

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/fhcli/internal/model"
	"github.com/verte-zerg/fhcli/internal/wordbase"
)

// Report describes one word base.
type Report struct {
	Backend  wordbase.Backend
	Location string
	Summary  model.Summary
}

// BuildReport counts the entries of wb.
func BuildReport(ctx context.Context, wb wordbase.WordBase, location string) (Report, error) {
	summary, err := wb.Stats(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to count words: %w", err)
	}
	return Report{
		Backend:  wordbase.Kind(wb),
		Location: location,
		Summary:  summary,
	}, nil
}

// Lines formats the report as an aligned key/value table. Used and unused
// counts are only shown for the table backend, which tracks usage.
func (r Report) Lines() []string {
	rows := [][]string{
		{"Backend", r.Backend.String()},
		{"Location", r.Location},
		{"Words", strconv.Itoa(r.Summary.Total)},
	}
	if r.Backend == wordbase.BackendTable {
		rows = append(rows,
			[]string{"Used", strconv.Itoa(r.Summary.Used)},
			[]string{"Unused", strconv.Itoa(r.Summary.Unused())},
		)
	}
	return formatTable(nil, rows, nil)
}

// Render writes the report to w.
func Render(w io.Writer, r Report) error {
	for _, line := range r.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
