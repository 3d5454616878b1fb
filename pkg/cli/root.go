package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"nrql2dql/internal/convert"
	"nrql2dql/internal/mappings"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output, _ := rootCmd.PersistentFlags().GetString("output")
		if output == "json" {
			_ = printJSON(os.Stdout, map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// session carries flag, environment, and profile resolution from
// PersistentPreRunE to the subcommands that need a converter.
type session struct {
	mappingsPath string
	converter    *convert.Converter
}

// Converter builds the converter on first use, loading the mapping
// overlay if one was resolved. Commands that never convert, such as
// config and version, never touch the overlay file.
func (s *session) Converter() (*convert.Converter, error) {
	if s.converter != nil {
		return s.converter, nil
	}
	tables := mappings.Default()
	if s.mappingsPath != "" {
		var err error
		tables, err = mappings.Load(s.mappingsPath)
		if err != nil {
			return nil, fmt.Errorf("load mappings: %w", err)
		}
	}
	s.converter = convert.New(tables, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return s.converter, nil
}

func newRootCmd() *cobra.Command {
	var (
		output       string
		profile      string
		mappingsPath string
		quiet        bool
	)

	sess := &session{}

	rootCmd := &cobra.Command{
		Use:           "nrql2dql",
		Short:         "NRQL to DQL query converter",
		Long:          "Command-line interface for converting NRQL monitoring queries to DQL pipeline queries.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Load config from profile if flags/env not set
			cfg, err := LoadUserConfig()
			if err != nil {
				// Config file is optional
				cfg = &UserConfig{
					CurrentProfile: "default",
					Profiles:       map[string]Profile{},
				}
			}

			p := cfg.ActiveProfile(profile)

			// Apply precedence: flag > env > profile > default
			output = resolveFlag(cmd.Flags().Lookup("output"), "NRQL2DQL_OUTPUT", p.Output)
			mappingsPath = resolveFlag(cmd.Flags().Lookup("mappings"), "NRQL2DQL_MAPPINGS", p.Mappings)

			if err := validateOutputFormat(output); err != nil {
				return err
			}

			sess.mappingsPath = mappingsPath
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "Config profile to use")
	rootCmd.PersistentFlags().StringVar(&mappingsPath, "mappings", "", "Path to a YAML mapping overlay file")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only print converted queries")

	rootCmd.AddCommand(newConvertCmd(sess))
	rootCmd.AddCommand(newReferenceCmd(sess))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// resolveFlag resolves one flag's value with flag > env > profile > default
// precedence. A flag set on the command line always wins.
func resolveFlag(f *pflag.Flag, envKey, profileValue string) string {
	if f == nil {
		return ""
	}
	if f.Changed {
		return f.Value.String()
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if profileValue != "" {
		return profileValue
	}
	return f.Value.String()
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
	return cmd
}
