package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/catalog"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/layout"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/render"
)

// ValidationReport is the JSON payload of the validate command.
type ValidationReport struct {
	Valid bool         `json:"valid"`
	Pages []PageReport `json:"pages"`
}

// PageReport holds the validation outcome of one page.
type PageReport struct {
	Type      layout.PageType `json:"type"`
	State     string          `json:"state"`
	Instances int             `json:"instances"`
	Errors    []RenderError   `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [page-type...]",
		Short: "Validate stored layouts against the component catalog",
		Long: `Validate every instance of the shop's stored layouts against the
component catalog: unknown types, unknown variants, and props that
violate the component's schema are reported per instance.

With no arguments all page types are checked. Exit code 1 means at
least one page failed validation.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}
}

func runValidate(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	pageTypes := layout.PageTypes
	if len(args) > 0 {
		pageTypes = make([]layout.PageType, 0, len(args))
		for _, arg := range args {
			pt, err := layout.ParsePageType(arg)
			if err != nil {
				if outputErr := formatter.Error(ErrCodePageType, err.Error(), nil); outputErr != nil {
					return outputErr
				}
				return NewExitError(ExitCommandError, "unknown page type")
			}
			pageTypes = append(pageTypes, pt)
		}
	}

	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	reg, err := catalog.Registry()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build component registry", err)
	}

	// Validation rides the render pipeline: a slot that would degrade to
	// a placeholder in production is exactly a validation failure here.
	pipeline := render.New(reg, render.WithMode(render.ModeDev))
	injected := render.Injected{
		Uniform:      layout.Props{"shopId": opts.ShopID},
		TypeDefaults: catalog.RuntimeDefaults(),
	}

	report := ValidationReport{Valid: true}
	for _, pt := range pageTypes {
		raw, err := st.LoadRaw(cmd.Context(), opts.ShopID, pt)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to load page %q", pt), err)
		}
		result := pipeline.RenderRaw(raw, injected)

		pr := PageReport{
			Type:      pt,
			State:     stateName(result.State),
			Instances: len(result.Nodes),
		}
		for _, node := range result.Nodes {
			if node.Err != nil {
				pr.Errors = append(pr.Errors, RenderError{InstanceID: node.ID, Error: node.Err})
			}
		}
		if result.State == render.StateMalformed || len(pr.Errors) > 0 {
			report.Valid = false
		}
		report.Pages = append(report.Pages, pr)
	}

	if opts.Format == "json" {
		if err := formatter.Success(report); err != nil {
			return err
		}
	} else if err := formatter.Success(formatReport(report)); err != nil {
		return err
	}

	if !report.Valid {
		return NewExitError(ExitFailure, "validation failed")
	}
	return nil
}

func formatReport(report ValidationReport) string {
	var b strings.Builder
	for _, pr := range report.Pages {
		switch {
		case pr.State == "malformed":
			fmt.Fprintf(&b, "✗ %s: stored layout is malformed\n", pr.Type)
		case len(pr.Errors) > 0:
			fmt.Fprintf(&b, "✗ %s: %d of %d instance(s) invalid\n", pr.Type, len(pr.Errors), pr.Instances)
			for _, re := range pr.Errors {
				fmt.Fprintf(&b, "    %s (%s): %s\n", re.InstanceID, re.Error.Type, describeInstanceError(re.Error))
			}
		default:
			fmt.Fprintf(&b, "✓ %s: %d instance(s) valid\n", pr.Type, pr.Instances)
		}
	}
	if len(report.Pages) > 0 {
		if report.Valid {
			b.WriteString("All pages valid.")
		} else {
			b.WriteString("Validation failed.")
		}
	}
	return b.String()
}

func describeInstanceError(ierr *render.InstanceError) string {
	switch ierr.Kind {
	case render.ErrUnknownType:
		return "unknown component type"
	case render.ErrRenderFailed:
		return fmt.Sprintf("renderer failed: %s", ierr.Message)
	default:
		parts := make([]string, len(ierr.Detail))
		for i, ve := range ierr.Detail {
			parts[i] = fmt.Sprintf("%s: %s [%s]", ve.Field, ve.Message, ve.Code)
		}
		return strings.Join(parts, "; ")
	}
}
