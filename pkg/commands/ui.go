package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/deck/pkg/module"
	"tableflip.dev/deck/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	debug := false
	cmd := &cobra.Command{
		Use:   "ui [kind...]",
		Short: "open the dashboard in the terminal",
		Example: `
deck ui
deck ui todos focusTimer
`,
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return kindNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := make([]module.Kind, 0, len(args))
			for _, a := range args {
				k, err := module.ParseKind(a)
				if err != nil {
					return fmt.Errorf("%w (see deck modules)", err)
				}
				kinds = append(kinds, k)
			}
			s, b, err := open()
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			i := ui.UI{Settings: s, Blobs: b, Open: kinds, Debug: debug}
			return i.Do(context.Background())
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "Log at debug level.")

	topLevel.AddCommand(cmd)
}

func kindNames() []string {
	kinds := module.Kinds()
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, string(k))
	}
	return out
}
