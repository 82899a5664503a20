package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/layout"
)

// ResetResult is the JSON payload of the reset command.
type ResetResult struct {
	Page      layout.PageType `json:"page"`
	Instances int             `json:"instances"`
}

// NewResetCommand creates the reset command.
func NewResetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <page-type>",
		Short: "Restore a page to its default template",
		Long: `Replace a page's stored layout with the built-in default template.

The replacement is atomic and mints fresh instance ids; the previous
layout is discarded.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(rootOpts, args[0], cmd)
		},
	}
}

func runReset(opts *RootOptions, pageArg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	pt, err := layout.ParsePageType(pageArg)
	if err != nil {
		if outputErr := formatter.Error(ErrCodePageType, err.Error(), nil); outputErr != nil {
			return outputErr
		}
		return NewExitError(ExitCommandError, "unknown page type")
	}

	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	page, err := st.ResetToDefault(cmd.Context(), opts.ShopID, pt)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("failed to reset page %q", pt), err)
	}

	if opts.Format == "json" {
		return formatter.Success(ResetResult{Page: pt, Instances: len(page.Layout)})
	}
	return formatter.Success(fmt.Sprintf("Page %q reset to default template (%d instances).", pt, len(page.Layout)))
}
