package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/deck/pkg/runner/history"
	"tableflip.dev/deck/pkg/timeutil"
)

func addHistory(topLevel *cobra.Command) {
	months := 1
	window := timeutil.DefaultWindow
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show journaled days and productivity totals.",
		Example: `
deck history
deck history --months 3
deck history --window 2w
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			since, _, err := timeutil.ParseWindow(window)
			if err != nil {
				return oo.HandleError(err)
			}
			set, err := openRecords()
			if err != nil {
				return oo.HandleError(err)
			}
			h := history.History{Records: set, Months: months, Window: since, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			return oo.HandleError(h.Do(context.Background()))
		},
	}
	cmd.Flags().IntVarP(&months, "months", "m", 1, "Number of months to show.")
	cmd.Flags().StringVarP(&window, "window", "w", window, "Look-back for recent entries, e.g. 3d or 1w2d.")

	topLevel.AddCommand(cmd)
}
