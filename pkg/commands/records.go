package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/deck/pkg/commands/options"
	"tableflip.dev/deck/pkg/records"
	"tableflip.dev/deck/pkg/runner/add"
	"tableflip.dev/deck/pkg/runner/complete"
	"tableflip.dev/deck/pkg/runner/get"
	"tableflip.dev/deck/pkg/runner/strike"
)

func addAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "add <collection> <text...>",
		Short: "Add a record to a collection.",
		Example: `
deck add todo call the bank
deck add note "# Standup"
deck add -i
`,
		ValidArgsFunction: bookCompletions,
		Args: func(cmd *cobra.Command, args []string) error {
			if i.Interactive {
				return nil
			}
			if len(args) < 2 {
				return errors.New("requires a collection and text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := openRecords()
			if err != nil {
				return oo.HandleError(err)
			}
			book, text := "", ""
			if len(args) > 0 {
				book = args[0]
				text = strings.Join(args[1:], " ")
			}
			if i.Interactive {
				if book == "" {
					if book, err = promptSelect(cmd, "Collection", set.Books()); err != nil {
						return err
					}
				}
				if text == "" {
					if text, err = promptText(cmd, "Text", false); err != nil {
						return err
					}
				}
			}
			cmd.SilenceUsage = true
			a := add.Add{
				Book:    book,
				Text:    text,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
				Records: set,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(a.Do(context.Background()))
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	openOnly := false

	cmd := &cobra.Command{
		Use:     "list [collection]",
		Aliases: []string{"get", "ls"},
		Short:   "List one collection or all of them.",
		Example: `
deck list
deck list todos --open -k
`,
		ValidArgsFunction: bookCompletions,
		Args:              cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			set, err := openRecords()
			if err != nil {
				return oo.HandleError(err)
			}
			g := get.Get{
				ShowID:  io.ShowID,
				Open:    openOnly,
				JSON:    oo.JSON,
				Records: set,
				Out:     cmd.OutOrStdout(),
			}
			if len(args) == 1 {
				g.Book = args[0]
			}
			return oo.HandleError(g.Do(context.Background()))
		},
	}
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&openOnly, "open", false, "Hide records that are done.")

	topLevel.AddCommand(cmd)
}

func addComplete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "done <collection> <id>",
		Aliases: []string{"complete", "x"},
		Short:   "Mark a goal, to-do or study session as done.",
		Example: `
deck done todos 5a7c...
`,
		ValidArgsFunction: bookCompletions,
		Args:              cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			set, err := openRecords()
			if err != nil {
				return oo.HandleError(err)
			}
			c := complete.Complete{
				Book:    args[0],
				ID:      args[1],
				JSON:    oo.JSON,
				Records: set,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(c.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addStrike(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <collection> <id>",
		Aliases: []string{"strike"},
		Short:   "Remove a record.",
		Example: `
deck rm notes 5a7c...
`,
		ValidArgsFunction: bookCompletions,
		Args:              cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			set, err := openRecords()
			if err != nil {
				return oo.HandleError(err)
			}
			s := strike.Strike{
				Book:    args[0],
				ID:      args[1],
				JSON:    oo.JSON,
				Records: set,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

// bookNames lists the collection keys without opening the store.
func bookNames() []string {
	return []string{
		records.KeyGoals,
		records.KeyNotes,
		records.KeyProductivityEntries,
		records.KeyResources,
		records.KeySongs,
		records.KeyStudySessions,
		records.KeyTodos,
	}
}

func bookCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, n := range bookNames() {
		if strings.HasPrefix(n, toComplete) {
			out = append(out, n)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
