package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/miajio/nlsql/pkg/history"
)

func newHistoryCommand(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previous translations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := a.openEngine()
			if err != nil {
				return err
			}
			if engine == nil {
				return fmt.Errorf("history: %w", errNoStore)
			}
			defer engine.Close()

			entries, err := history.NewStore(engine, a.cfg.HistoryTTL).List(limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "no translations recorded")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s  %s\n", e.CreatedAt.Local().Format(time.DateTime), e.Input)
				fmt.Fprintf(out, "    %s\n", e.Final)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of entries to show (0 for all)")
	return cmd
}
