package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"nrql2dql/internal/mappings"
)

// referenceDoc is the JSON shape of the full reference output,
// matching the mappings API endpoint.
type referenceDoc struct {
	mappings.Snapshot
	Operators []mappings.Entry `json:"operators"`
}

func newReferenceCmd(sess *session) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Show the conversion mapping tables",
		Long: "Show the attribute, aggregation, event type, operator, and time range\n" +
			"mappings the converter applies, including any loaded overlay entries.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateSection(section); err != nil {
				return err
			}
			conv, err := sess.Converter()
			if err != nil {
				return err
			}
			snap := conv.Tables().Snapshot()
			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, referenceDoc{Snapshot: snap, Operators: mappings.Operators()})
			}
			renderReference(os.Stdout, snap, section)
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "Limit table output to one section (fields, functions, events, operators, time)")

	return cmd
}

func validateSection(section string) error {
	switch section {
	case "", "fields", "functions", "events", "operators", "time":
		return nil
	}
	return fmt.Errorf("unknown section %q: use fields, functions, events, operators, or time", section)
}

// renderReference writes the mapping tables as titled sections.
func renderReference(w io.Writer, snap mappings.Snapshot, section string) {
	show := func(name string) bool { return section == "" || section == name }
	first := true
	title := func(s string) {
		if !first {
			_, _ = fmt.Fprintln(w)
		}
		first = false
		_, _ = fmt.Fprintln(w, s)
	}

	if show("fields") {
		title("Attributes")
		printTable(w, []string{"nrql attribute", "dql field"}, entryRows(snap.Fields, ""))
	}
	if show("functions") {
		title("Aggregations")
		printTable(w, []string{"nrql function", "dql function"}, entryRows(snap.Functions, "(no equivalent)"))
	}
	if show("events") {
		title("Event types")
		rows := make([][]string, 0, len(snap.Events))
		for _, ev := range snap.Events {
			key := ev.MetricKey
			if key == "" {
				key = "-"
			}
			rows = append(rows, []string{ev.Name, ev.Source, key})
		}
		printTable(w, []string{"event type", "source", "metric key"}, rows)
	}
	if show("operators") {
		title("Operators")
		printTable(w, []string{"nrql", "dql"}, entryRows(mappings.Operators(), ""))
	}
	if show("time") {
		title("Time ranges")
		printTable(w, []string{"nrql phrase", "duration"}, entryRows(snap.TimeLiterals, ""))
	}
}

// entryRows converts entries to table rows, substituting empty targets.
func entryRows(entries []mappings.Entry, emptyTarget string) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		target := e.Target
		if target == "" {
			target = emptyTarget
		}
		rows = append(rows, []string{e.Source, target})
	}
	return rows
}
