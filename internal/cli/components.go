package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/catalog"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/component"
)

// ComponentSummary is one entry of the components listing.
type ComponentSummary struct {
	Type           string              `json:"type"`
	DisplayName    string              `json:"display_name"`
	Description    string              `json:"description"`
	Variants       []component.Variant `json:"variants"`
	DefaultVariant string              `json:"default_variant"`
}

// NewComponentsCommand creates the components command.
func NewComponentsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List the component catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComponents(rootOpts, cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

func runComponents(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	reg, err := catalog.Registry()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build component registry", err)
	}

	var summaries []ComponentSummary
	for _, typ := range reg.Types() {
		meta, _ := reg.Metadata(typ)
		summaries = append(summaries, ComponentSummary{
			Type:           typ,
			DisplayName:    meta.DisplayName,
			Description:    meta.Description,
			Variants:       meta.Variants,
			DefaultVariant: meta.DefaultVariant,
		})
	}

	if opts.Format == "json" {
		return formatter.Success(summaries)
	}

	var b strings.Builder
	b.WriteString("Available components:\n")
	for _, s := range summaries {
		variants := make([]string, len(s.Variants))
		for i, v := range s.Variants {
			variants[i] = v.Value
			if v.Value == s.DefaultVariant {
				variants[i] += "*"
			}
		}
		fmt.Fprintf(&b, "  %-16s  %s (variants: %s)\n", s.Type, s.DisplayName, strings.Join(variants, ", "))
	}
	return formatter.Success(strings.TrimRight(b.String(), "\n"))
}
