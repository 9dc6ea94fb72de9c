// Package guide walks a user through a cobra command tree with prompts:
// pick a command, answer for its flags and arguments, then run it.
package guide

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrNoCommands is returned when a command has nothing to choose from.
var ErrNoCommands = errors.New("guide: no commands to choose from")

const runLabel = "Run"

// NopCloser wraps w so promptui can own it without closing stdout.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Guide prompts on Stdin and Stdout.
type Guide struct {
	Stdin  io.Reader
	Stdout io.Writer
	// Skip names commands that are never offered.
	Skip []string
}

func (g *Guide) stdin() io.ReadCloser   { return io.NopCloser(g.Stdin) }
func (g *Guide) stdout() io.WriteCloser { return NopCloser(g.Stdout) }

// Candidates returns the runnable or nested subcommands of cmd that the
// guide offers.
func (g *Guide) Candidates(cmd *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, c := range cmd.Commands() {
		if !c.IsAvailableCommand() || c.Name() == "help" || g.skipped(c.Name()) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (g *Guide) skipped(name string) bool {
	for _, s := range g.Skip {
		if s == name {
			return true
		}
	}
	return false
}

// Choose descends from root until a command without subcommands is picked.
func (g *Guide) Choose(root *cobra.Command) (*cobra.Command, error) {
	subcommands := g.Candidates(root)
	if len(subcommands) == 0 {
		return nil, ErrNoCommands
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Short | green }}",
		Inactive: "   {{ .Name }} {{ .Short | cyan }}",
		Selected: "➜  {{ .Name | bold }}",
		Details: `
--------- {{ .Name }} ----------
{{ .Example }}`,
	}
	searcher := func(input string, index int) bool {
		c := subcommands[index]
		return matches(c.Name()+c.Short, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Command",
		Items:     subcommands,
		Templates: templates,
		Size:      10,
		Searcher:  searcher,
		Stdin:     g.stdin(),
		Stdout:    g.stdout(),
	}
	i, _, err := prompt.Run()
	if err != nil {
		return nil, err
	}

	next := subcommands[i]
	if next.HasAvailableSubCommands() && !next.Runnable() {
		return g.Choose(next)
	}
	return next, nil
}

func matches(s, input string) bool {
	s = strings.ReplaceAll(strings.ToLower(s), " ", "")
	input = strings.ReplaceAll(strings.ToLower(input), " ", "")
	return strings.Contains(s, input)
}

// Flags prompts for flags of cmd until Run is chosen and returns them as
// command line arguments.
func (g *Guide) Flags(cmd *cobra.Command) ([]string, error) {
	var fs []*pflag.Flag
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Hidden && f.Name != "help" {
			fs = append(fs, f)
		}
	})
	if len(fs) == 0 {
		return nil, nil
	}
	items := append([]*pflag.Flag{{Name: runLabel, Usage: "with the answers so far", Value: runValue{}}}, fs...)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . | magenta }}?",
		Active:   "➜  {{ .Name | bold }} {{ .Usage | green }}",
		Inactive: "   {{ .Name }} {{ .Usage | cyan }}",
		Selected: "➜  {{ .Name | bold }}",
		Details: `
--------- Details ----------
{{ if ne .Value.Type "run" }}default: {{ .DefValue }}
type: {{ .Value.Type }}{{ end }}`,
	}
	searcher := func(input string, index int) bool {
		return matches(items[index].Name, input)
	}

	var args []string
	cursor := 0
	for {
		prompt := promptui.Select{
			HideHelp:  true,
			Label:     "Flags for " + cmd.Name(),
			Items:     items,
			Templates: templates,
			Size:      10,
			CursorPos: cursor,
			Searcher:  searcher,
			Stdin:     g.stdin(),
			Stdout:    g.stdout(),
		}
		i, _, err := prompt.Run()
		if err != nil {
			return nil, err
		}
		if i == 0 {
			return args, nil
		}
		cursor = i

		f := items[i]
		answer, err := g.ask(asFlag(f)+" "+f.Usage, f)
		if err != nil {
			return nil, err
		}
		arg, err := FlagArg(f, answer)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
}

func (g *Guide) ask(label string, f *pflag.Flag) (string, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: f.DefValue,
		Validate: func(input string) error {
			_, err := FlagArg(f, input)
			return err
		},
		Stdin:  g.stdin(),
		Stdout: g.stdout(),
	}
	return prompt.Run()
}

// Args prompts for the positional arguments of cmd, split on spaces.
func (g *Guide) Args(cmd *cobra.Command) ([]string, error) {
	if cmd.Args == nil {
		return nil, nil
	}
	prompt := promptui.Prompt{
		Label: "Arguments for " + cmd.Use,
		Validate: func(input string) error {
			return cmd.ValidateArgs(strings.Fields(input))
		},
		Stdin:  g.stdin(),
		Stdout: g.stdout(),
	}
	answer, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	return strings.Fields(answer), nil
}

// Run parses args for cmd and invokes it.
func Run(cmd *cobra.Command, args []string) error {
	if err := cmd.ParseFlags(args); err != nil {
		return err
	}
	rest := cmd.Flags().Args()
	if err := cmd.ValidateArgs(rest); err != nil {
		return err
	}
	switch {
	case cmd.RunE != nil:
		return cmd.RunE(cmd, rest)
	case cmd.Run != nil:
		cmd.Run(cmd, rest)
		return nil
	}
	return fmt.Errorf("%s is not runnable", cmd.CommandPath())
}

// FlagArg formats answer as a --name=value argument for f. An empty answer
// takes the flag default.
func FlagArg(f *pflag.Flag, answer string) (string, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = f.DefValue
	}
	switch t := f.Value.Type(); t {
	case "bool":
		b, err := ParseBool(answer)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("--%s=%t", f.Name, b), nil
	case "int":
		if _, err := strconv.Atoi(answer); err != nil {
			return "", fmt.Errorf("%q is not a number", answer)
		}
	case "string", "stringSlice":
		if answer == "" {
			return "", errors.New("empty")
		}
	default:
		return "", fmt.Errorf("%q flags are not supported", t)
	}
	return fmt.Sprintf("--%s=%s", f.Name, answer), nil
}

// ParseBool is strconv.ParseBool with the addition of yes and no.
func ParseBool(str string) (bool, error) {
	switch strings.ToLower(str) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return strconv.ParseBool(str)
}

func asFlag(f *pflag.Flag) string {
	if f.Shorthand != "" {
		return fmt.Sprintf("--%s, -%s", f.Name, f.Shorthand)
	}
	return "--" + f.Name
}

type runValue struct{}

func (runValue) String() string   { return "" }
func (runValue) Set(string) error { return nil }
func (runValue) Type() string     { return "run" }
