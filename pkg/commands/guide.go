package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/deck/pkg/guide"
)

func addGuide(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "guide",
		Aliases: []string{"auto"},
		Short:   "Pick a command and its flags from prompts.",
		Example: `
deck guide
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			g := guide.Guide{
				Stdin:  cmd.InOrStdin(),
				Stdout: cmd.OutOrStdout(),
				Skip:   []string{cmd.Name(), "completion", "ui", "mcp"},
			}

			next, err := g.Choose(topLevel)
			if err != nil {
				return oo.HandleError(err)
			}
			flags, err := g.Flags(next)
			if err != nil {
				return oo.HandleError(err)
			}
			args, err := g.Args(next)
			if err != nil {
				return oo.HandleError(err)
			}
			return guide.Run(next, append(flags, args...))
		},
	}

	topLevel.AddCommand(cmd)
}
