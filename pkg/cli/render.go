package cli

import (
	"fmt"
	"io"

	"nrql2dql/internal/domain"
)

// renderResult writes the human-readable report for one conversion:
// the converted query, the type and confidence line, then any
// warnings, manual-review items, and applied field mappings.
func renderResult(w io.Writer, res domain.Result) {
	_, _ = fmt.Fprintln(w, res.ConvertedQuery)
	_, _ = fmt.Fprintf(w, "\ntype: %s  confidence: %s\n", res.QueryType, res.Confidence)

	if len(res.Warnings) > 0 {
		_, _ = fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range res.Warnings {
			_, _ = fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
	if len(res.ManualReviewItems) > 0 {
		_, _ = fmt.Fprintln(w, "\nManual review:")
		for _, item := range res.ManualReviewItems {
			_, _ = fmt.Fprintf(w, "  - %s\n", item)
		}
	}
	if len(res.FieldMappingsApplied) > 0 {
		_, _ = fmt.Fprintln(w, "\nField mappings:")
		rows := make([][]string, 0, len(res.FieldMappingsApplied))
		for _, m := range res.FieldMappingsApplied {
			rows = append(rows, []string{m.Source, m.Target})
		}
		printTable(w, []string{"nrql field", "dql field"}, rows)
	}
}
