package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"nrql2dql/internal/domain"
)

func newConvertCmd(sess *session) *cobra.Command {
	var (
		file        string
		outPath     string
		interactive bool
		workers     int
	)

	cmd := &cobra.Command{
		Use:   "convert [query]",
		Short: "Convert an NRQL query to DQL",
		Long: "Convert a single NRQL query passed as an argument, a file of queries\n" +
			"with --file, or queries typed at an interactive prompt with --interactive.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case interactive:
				if len(args) > 0 || file != "" {
					return fmt.Errorf("--interactive cannot be combined with a query argument or --file")
				}
				return runInteractive(cmd, sess)
			case file != "":
				if len(args) > 0 {
					return fmt.Errorf("--file cannot be combined with a query argument")
				}
				return runBatchFile(cmd, sess, file, outPath, workers)
			case len(args) == 1:
				return runSingle(cmd, sess, args[0])
			default:
				return fmt.Errorf("provide a query argument, --file, or --interactive")
			}
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read queries from a file, one per line")
	cmd.Flags().StringVar(&outPath, "out", "", "Write converted queries to a file instead of stdout")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Start an interactive conversion prompt")
	cmd.Flags().IntVar(&workers, "workers", 0, "Batch conversion concurrency (0 = number of CPUs)")

	return cmd
}

func runSingle(cmd *cobra.Command, sess *session, query string) error {
	conv, err := sess.Converter()
	if err != nil {
		return err
	}

	res := conv.Convert(query)
	if getQuiet(cmd) {
		_, _ = fmt.Fprintln(os.Stdout, res.ConvertedQuery)
		return nil
	}
	if getOutputFormat(cmd) == "json" {
		return printJSON(os.Stdout, res)
	}
	renderResult(os.Stdout, res)
	return nil
}

func runBatchFile(cmd *cobra.Command, sess *session, path, outPath string, workers int) error {
	conv, err := sess.Converter()
	if err != nil {
		return err
	}
	queries, err := readQueryFile(path)
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		return fmt.Errorf("no queries found in %s", path)
	}

	results, err := conv.ConvertAll(cmd.Context(), queries, workers)
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := writeBatchFile(outPath, results); err != nil {
			return err
		}
		if getOutputFormat(cmd) == "json" {
			return printJSON(os.Stdout, map[string]interface{}{
				"status":  "ok",
				"queries": len(results),
				"path":    outPath,
			})
		}
		_, _ = fmt.Fprintf(os.Stdout, "Converted %d queries to %s\n", len(results), outPath)
		return nil
	}

	if getQuiet(cmd) {
		for _, res := range results {
			_, _ = fmt.Fprintln(os.Stdout, res.ConvertedQuery)
		}
		return nil
	}
	if getOutputFormat(cmd) == "json" {
		return printJSON(os.Stdout, results)
	}
	for i, res := range results {
		if i > 0 {
			_, _ = fmt.Fprintln(os.Stdout)
		}
		_, _ = fmt.Fprintf(os.Stdout, "// Original: %s\n", res.OriginalQuery)
		renderResult(os.Stdout, res)
	}
	return nil
}

// readQueryFile loads one query per line, skipping blank lines and
// #-comment lines.
func readQueryFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		return nil, fmt.Errorf("open query file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	var queries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read query file: %w", err)
	}
	return queries, nil
}

// writeBatchFile writes each converted query preceded by a comment
// line carrying the source query, separated by blank lines.
func writeBatchFile(path string, results []domain.Result) error {
	var b strings.Builder
	for i, res := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("// Original: " + res.OriginalQuery + "\n")
		b.WriteString(res.ConvertedQuery + "\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil { //nolint:gosec // path is caller-controlled
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}

// runInteractive converts queries read line by line from stdin. The
// prompt and banner only appear when stdin is a terminal, so piped
// input behaves like a batch.
func runInteractive(cmd *cobra.Command, sess *session) error {
	conv, err := sess.Converter()
	if err != nil {
		return err
	}

	tty := term.IsTerminal(int(os.Stdin.Fd()))
	if tty {
		_, _ = fmt.Fprintf(os.Stdout, "nrql2dql %s interactive mode. Type a query, \"ref\" for the mapping tables, or \"exit\" to leave.\n", version)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if tty {
			_, _ = fmt.Fprint(os.Stdout, "nrql> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "exit", "quit", "q":
			return nil
		case "ref", "reference":
			renderReference(os.Stdout, conv.Tables().Snapshot(), "")
			_, _ = fmt.Fprintln(os.Stdout)
			continue
		}

		res := conv.Convert(line)
		if getQuiet(cmd) {
			_, _ = fmt.Fprintln(os.Stdout, res.ConvertedQuery)
			continue
		}
		if getOutputFormat(cmd) == "json" {
			if err := printJSON(os.Stdout, res); err != nil {
				return err
			}
			continue
		}
		renderResult(os.Stdout, res)
		_, _ = fmt.Fprintln(os.Stdout)
	}
	return scanner.Err()
}
