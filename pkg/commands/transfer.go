package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/deck/pkg/commands/options"
	"tableflip.dev/deck/pkg/runner/transfer"
	"tableflip.dev/deck/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	to := &options.TransferOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every stored key to one document.",
		Example: `
deck export > backup.json
deck export --format yaml -o backup.yaml
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			format, err := to.GetFormat()
			if err != nil {
				return oo.HandleError(err)
			}
			if format == "" {
				format = store.FormatJSON
			}
			_, b, err := open()
			if err != nil {
				return oo.HandleError(err)
			}
			e := transfer.Export{Blobs: b, Format: format, Path: to.Path, Out: cmd.OutOrStdout()}
			return oo.HandleError(e.Do(context.Background()))
		},
	}
	options.AddFormatArg(cmd, to, "json")
	options.AddPathArg(cmd, to)

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	to := &options.TransferOptions{}
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore keys from a document written by export.",
		Example: `
deck import backup.yaml
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			format, err := to.GetFormat()
			if err != nil {
				return oo.HandleError(err)
			}
			_, b, err := open()
			if err != nil {
				return oo.HandleError(err)
			}
			i := transfer.Import{Blobs: b, Path: args[0], Format: format, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			return oo.HandleError(i.Do(context.Background()))
		},
	}
	options.AddFormatArg(cmd, to, "")

	topLevel.AddCommand(cmd)
}

func addClear(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Erase every stored key.",
		Example: `
deck clear
deck clear --yes
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, b, err := open()
			if err != nil {
				return oo.HandleError(err)
			}
			c := transfer.Clear{Blobs: b, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			if !co.Yes {
				c.Confirm = func() (bool, error) {
					return promptConfirm(cmd, "Erase all dashboard data")
				}
			}
			return oo.HandleError(c.Do(context.Background()))
		},
	}
	options.AddConfirmArg(cmd, co)

	topLevel.AddCommand(cmd)
}
