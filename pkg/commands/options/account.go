package options

import (
	"github.com/spf13/cobra"
)

// AccountOptions
type AccountOptions struct {
	Username string
	Name     string
	Email    string
	Events   bool
}

func AddUsernameArg(cmd *cobra.Command, o *AccountOptions) {
	cmd.Flags().StringVarP(&o.Username, "username", "u", "",
		"Username; prompted for when empty.")
}

func AddProfileArgs(cmd *cobra.Command, o *AccountOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "",
		"Display name.")
	cmd.Flags().StringVar(&o.Email, "email", "",
		"Email address.")
}

func AddEventsArg(cmd *cobra.Command, o *AccountOptions) {
	cmd.Flags().BoolVar(&o.Events, "events", false,
		"Also list the security log.")
}
