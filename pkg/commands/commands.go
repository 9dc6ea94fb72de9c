package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/deck/pkg/commands/options"
	"tableflip.dev/deck/pkg/records"
	"tableflip.dev/deck/pkg/store"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "deck",
		Short: base.Wrap80("A productivity dashboard of floating windows in the terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddOutputArg(cmd, oo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addModules(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addComplete(topLevel)
	addStrike(topLevel)
	addHistory(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addClear(topLevel)
	addAccount(topLevel)
	addTheme(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
	addCompletions(topLevel)
	addGuide(topLevel)
}

// open loads the settings and the blob store they point at.
func open() (*store.Settings, store.Blobs, error) {
	s, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	b, err := store.Load(s)
	if err != nil {
		return nil, nil, err
	}
	return s, b, nil
}

func openRecords() (*records.Set, error) {
	_, b, err := open()
	if err != nil {
		return nil, err
	}
	return records.Open(b), nil
}
