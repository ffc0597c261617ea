package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/miajio/nlsql/pkg/vocabulary"
)

func newVocabCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "List the known tables and columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := a.openEngine()
			if err != nil {
				return err
			}
			if engine != nil {
				defer engine.Close()
			}

			t, err := a.loadVocabulary(engine)
			if err != nil {
				return err
			}
			words := t.Words()
			sort.Strings(words)
			for _, w := range words {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
	cmd.AddCommand(newVocabImportCommand(a))
	return cmd
}

func newVocabImportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Store a schema file in the badger store",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.openEngine()
			if err != nil {
				return err
			}
			if engine == nil {
				return fmt.Errorf("vocab import: %w", errNoStore)
			}
			defer engine.Close()

			path := a.cfg.SchemaFile
			if len(args) == 1 {
				path = args[0]
			}
			t, err := vocabulary.LoadFile(path)
			if err != nil {
				return err
			}
			if err := vocabulary.NewStore(engine).Save(t, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d words from %s\n", t.Len(), path)
			return nil
		},
	}
}
