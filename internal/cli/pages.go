package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/layout"
)

// PageSummary is one row of the pages listing.
type PageSummary struct {
	Type      layout.PageType `json:"type"`
	Instances int             `json:"instances"`
	Empty     bool            `json:"empty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewPagesCommand creates the pages command.
func NewPagesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the shop's stored pages",
		Long: `List the stored pages of a shop with instance counts and timestamps.

Only pages that have been touched appear; a page type missing here is
provisioned from its default template the first time it is loaded.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPages(rootOpts, cmd)
		},
	}
}

func runPages(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	pages, err := st.LoadAll(cmd.Context(), opts.ShopID)
	if err != nil {
		outputErr := formatter.Error(ErrCodeStore, err.Error(), nil)
		if outputErr != nil {
			return outputErr
		}
		return NewExitError(ExitCommandError, "failed to load pages")
	}

	summaries := make([]PageSummary, len(pages))
	for i, p := range pages {
		summaries[i] = PageSummary{
			Type:      p.Type,
			Instances: len(p.Layout),
			Empty:     len(p.Layout) == 0,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		}
	}

	if opts.Format == "json" {
		return formatter.Success(summaries)
	}

	if len(summaries) == 0 {
		return formatter.Success(fmt.Sprintf("No pages stored for shop %q yet.", opts.ShopID))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Pages for shop %q:\n", opts.ShopID)
	for _, s := range summaries {
		state := fmt.Sprintf("%d instance(s)", s.Instances)
		if s.Empty {
			state = "empty"
		}
		fmt.Fprintf(&b, "  %-8s  %-14s  updated %s\n", s.Type, state, s.UpdatedAt.Format(time.RFC3339))
	}
	return formatter.Success(strings.TrimRight(b.String(), "\n"))
}
