package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/deck/pkg/runner/theme"
)

func addTheme(topLevel *cobra.Command) {
	accent := ""
	cmd := &cobra.Command{
		Use:       "theme [dark|light]",
		Short:     "Show or change the colour theme.",
		ValidArgs: []string{"dark", "light"},
		Args:      cobra.MaximumNArgs(1),
		Example: `
deck theme
deck theme light --accent "#ff8800"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, b, err := open()
			if err != nil {
				return oo.HandleError(err)
			}
			t := theme.Theme{Blobs: b, Accent: accent, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			if len(args) == 1 {
				t.Mode = args[0]
			}
			return oo.HandleError(t.Do(context.Background()))
		},
	}
	cmd.Flags().StringVar(&accent, "accent", "", "Accent colour as #rrggbb.")

	topLevel.AddCommand(cmd)
}
