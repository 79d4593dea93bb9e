package report

import (
	"fmt"
	"io"
	"poe-recomb-sim/internal/models"
	"poe-recomb-sim/internal/simulation"
	"strings"
)

// FormatOutcome renders a single outcome line, e.g. "59.00%: 1p/0s (X[100])".
func FormatOutcome(probability float64, item models.Item) string {
	return fmt.Sprintf("%5.2f%%: %s", probability*100.0, item)
}

func formatBases(bases []simulation.Outcome[models.Item], withChance bool) string {
	parts := make([]string, 0, len(bases))
	for _, b := range bases {
		if withChance {
			parts = append(parts, fmt.Sprintf("%s (%.2f%%)", b.Value.BaseString(), b.Probability*100.0))
			continue
		}
		parts = append(parts, b.Value.BaseString())
	}
	return strings.Join(parts, ", ")
}

// Text renders the result the way the command line tool prints it.
func Text(r *simulation.Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Item 1: %s\n", r.Item1)
	fmt.Fprintf(&sb, "Item 2: %s\n", r.Item2)
	fmt.Fprintf(&sb, "Total: %dTP/%dTS\n", r.Prefixes.Len(), r.Suffixes.Len())
	sb.WriteString("\n")

	if r.ReportBase {
		fmt.Fprintf(&sb, "Bases: %s\n", formatBases(r.Candidates, true))
	} else {
		fmt.Fprintf(&sb, "Ilvl: %s\n", formatBases(r.Candidates, false))
	}

	for _, b := range r.Bases {
		for _, o := range b.Items.Entries() {
			sb.WriteString(FormatOutcome(o.Probability, o.Value))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func WriteText(w io.Writer, r *simulation.Result) error {
	_, err := io.WriteString(w, Text(r))
	return err
}
