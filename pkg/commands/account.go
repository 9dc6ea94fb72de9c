package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/deck/pkg/commands/options"
	"tableflip.dev/deck/pkg/runner/account"
	"tableflip.dev/deck/pkg/session"
)

func addAccount(topLevel *cobra.Command) {
	addRegister(topLevel)
	addLogin(topLevel)
	addLogout(topLevel)
	addWhoAmI(topLevel)
}

func addRegister(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a local account and sign in.",
		Example: `
deck register -u ada --name "Ada Lovelace"
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			req := session.RegisterRequest{Username: ao.Username, Name: ao.Name, Email: ao.Email}
			var err error
			if req.Username == "" {
				if req.Username, err = promptText(cmd, "Username", false); err != nil {
					return err
				}
			}
			if req.Password, err = promptText(cmd, "Password", true); err != nil {
				return err
			}
			if req.Confirm, err = promptText(cmd, "Confirm password", true); err != nil {
				return err
			}
			_, b, err := open()
			if err != nil {
				return oo.HandleError(err)
			}
			r := account.Register{Blobs: b, Request: req, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			return oo.HandleError(r.Do(context.Background()))
		},
	}
	options.AddUsernameArg(cmd, ao)
	options.AddProfileArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}

func addLogin(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to a local account.",
		Example: `
deck login -u ada
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			username := ao.Username
			var err error
			if username == "" {
				if username, err = promptText(cmd, "Username", false); err != nil {
					return err
				}
			}
			password, err := promptText(cmd, "Password", true)
			if err != nil {
				return err
			}
			_, b, err := open()
			if err != nil {
				return oo.HandleError(err)
			}
			l := account.Login{Blobs: b, Username: username, Password: password, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			return oo.HandleError(l.Do(context.Background()))
		},
	}
	options.AddUsernameArg(cmd, ao)

	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, b, err := open()
			if err != nil {
				return oo.HandleError(err)
			}
			l := account.Logout{Blobs: b, Out: cmd.OutOrStdout()}
			return oo.HandleError(l.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addWhoAmI(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, b, err := open()
			if err != nil {
				return oo.HandleError(err)
			}
			w := account.WhoAmI{Blobs: b, Events: ao.Events, JSON: oo.JSON, Out: cmd.OutOrStdout()}
			return oo.HandleError(w.Do(context.Background()))
		},
	}
	options.AddEventsArg(cmd, ao)

	topLevel.AddCommand(cmd)
}
