package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/deck/pkg/runner/modules"
)

func addModules(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "modules",
		Aliases: []string{"kinds"},
		Short:   "List the window kinds the dashboard can open.",
		Example: `
deck modules
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := modules.Modules{JSON: oo.JSON, Out: cmd.OutOrStdout()}
			return oo.HandleError(m.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
