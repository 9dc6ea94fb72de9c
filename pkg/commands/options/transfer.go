package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/deck/pkg/store"
)

// TransferOptions
type TransferOptions struct {
	Format string
	Path   string
}

func AddFormatArg(cmd *cobra.Command, o *TransferOptions, def string) {
	cmd.Flags().StringVarP(&o.Format, "format", "f", def,
		"Document format. One of 'json' or 'yaml'.")
}

func AddPathArg(cmd *cobra.Command, o *TransferOptions) {
	cmd.Flags().StringVarP(&o.Path, "output", "o", "",
		"Write to a file instead of stdout.")
}

// GetFormat parses Format. An empty Format is left to the caller.
func (o *TransferOptions) GetFormat() (store.Format, error) {
	if o.Format == "" {
		return "", nil
	}
	return store.ParseFormat(o.Format)
}

// ConfirmOptions
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArg(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Do not ask for confirmation.")
}
