// Package cli provides the nl2sql command-line interface.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/miajio/nlsql/internal/config"
)

// Version is set at build time.
var Version = "0.1.0"

// app holds what PersistentPreRunE loads for the subcommands.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "nl2sql",
		Short: "Translate Spanish questions into SQL",
		Long: `nl2sql turns a Spanish question such as
"muéstrame los clientes donde la edad es mayor a 30" into SQL,
checks table and column names against a schema vocabulary and
offers corrections for unknown ones.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, used, err := config.Load(a.cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if used != "" {
				a.logger.Debug("using config file", "path", used)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: ./nl2sql.yaml)")
	pf.String("schema-file", "", "schema vocabulary file")
	pf.String("query-file", "", "transcript file read when no text is given")
	pf.String("audio-file", "", "audio recording passed to the transcriber")
	pf.String("output-file", "", "file the final SQL is written to")
	pf.String("store-dir", "", "badger directory for vocabulary and history (empty disables)")
	pf.Int("suggestions", 0, "maximum suggestions per unknown word")
	pf.Float64("cutoff", 0, "minimum similarity for a suggestion (0-1)")
	pf.String("interactive", "", "correction mode (auto|prompt|select|none)")
	pf.String("rules", "", "parser rule set (standard|extended)")
	pf.String("transcriber-command", "", "speech-to-text command; the audio path is appended")
	pf.BoolP("verbose", "v", false, "verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("rules", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.RulesStandard, config.RulesExtended}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("interactive", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.InteractiveAuto, config.InteractivePrompt, config.InteractiveSelect, config.InteractiveNone}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newTranslateCommand(a))
	rootCmd.AddCommand(newVocabCommand(a))
	rootCmd.AddCommand(newHistoryCommand(a))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "nl2sql v%s\n", Version)
		},
	}
}
