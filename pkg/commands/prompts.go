package commands

import (
	"errors"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/deck/pkg/guide"
)

func promptText(cmd *cobra.Command, label string, mask bool) (string, error) {
	prompt := promptui.Prompt{
		Label:  label,
		Stdin:  io.NopCloser(cmd.InOrStdin()),
		Stdout: guide.NopCloser(cmd.OutOrStdout()),
	}
	if mask {
		prompt.Mask = '*'
	}
	return prompt.Run()
}

func promptConfirm(cmd *cobra.Command, label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    guide.NopCloser(cmd.OutOrStdout()),
	}
	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func promptSelect(cmd *cobra.Command, label string, items []string) (string, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ . | cyan }}",
		Inactive: "   {{ . }}",
		Selected: "➜  {{ . | cyan }}",
	}
	searcher := func(input string, index int) bool {
		return strings.Contains(strings.ToLower(items[index]), strings.ToLower(strings.TrimSpace(input)))
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     io.NopCloser(cmd.InOrStdin()),
		Stdout:    guide.NopCloser(cmd.OutOrStdout()),
	}
	_, picked, err := prompt.Run()
	return picked, err
}
