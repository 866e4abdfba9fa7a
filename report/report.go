// Package report prints cache estimation results.
package report

import (
	"fmt"
	"io"

	"github.com/sarchlab/cachecost/estimation"
)

// Header is the first line of every report.
const Header = "Cache Metrics:"

// A Reporter presents estimated metrics to the user.
type Reporter interface {
	Report(m estimation.Metrics) error
}

// ConsoleReporter writes metrics as plain text, one metric per line.
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter creates a ConsoleReporter that writes to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

// Report writes the header followed by a "name: value" line per metric.
func (r *ConsoleReporter) Report(m estimation.Metrics) error {
	_, err := fmt.Fprintln(r.w, Header)
	if err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, e := range m.Entries() {
		_, err = fmt.Fprintf(r.w, "%s: %s\n", e.Name, e.Value)
		if err != nil {
			return fmt.Errorf("failed to write metric %s: %w", e.Name, err)
		}
	}

	return nil
}
