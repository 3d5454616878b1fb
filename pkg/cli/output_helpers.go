package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// getOutputFormat returns the effective output format from the root command's persistent flags.
func getOutputFormat(cmd *cobra.Command) string {
	v, _ := cmd.Root().PersistentFlags().GetString("output")
	return v
}

// getQuiet reports whether --quiet was set on the root command.
func getQuiet(cmd *cobra.Command) bool {
	v, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return v
}

func validateOutputFormat(output string) error {
	if output != "" && output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q: use 'table' or 'json'", output)
	}
	return nil
}

// printJSON writes v as indented JSON followed by a newline.
func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printTable writes rows as space-aligned columns under uppercased
// headers. Cells in the last column are not padded.
func printTable(w io.Writer, columns []string, rows [][]string) {
	if len(columns) == 0 {
		return
	}

	headers := make([]string, len(columns))
	widths := make([]int, len(columns))
	for i, c := range columns {
		headers[i] = strings.ToUpper(c)
		widths[i] = len(headers[i])
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		parts := make([]string, 0, len(cells))
		for i, cell := range cells {
			if i >= len(widths) {
				break
			}
			if i == len(widths)-1 {
				parts = append(parts, cell)
				continue
			}
			parts = append(parts, cell+strings.Repeat(" ", widths[i]-len(cell)))
		}
		_, _ = fmt.Fprintln(w, strings.Join(parts, "  "))
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
}
