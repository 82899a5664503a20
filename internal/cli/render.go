package cli

import (
	"github.com/spf13/cobra"

	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/catalog"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/layout"
	"github.com/Lewiatan/theme-builder-bkp-sub002/internal/render"
)

// RenderResult is the JSON payload of the render command.
type RenderResult struct {
	Page   layout.PageType `json:"page"`
	State  string          `json:"state"`
	HTML   string          `json:"html"`
	Errors []RenderError   `json:"errors,omitempty"`
}

// RenderError reports one degraded slot of a rendered page.
type RenderError struct {
	InstanceID string                `json:"instance_id"`
	Error      *render.InstanceError `json:"error"`
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render <page-type>",
		Short: "Render a page to HTML",
		Long: `Render a shop page to HTML using the stored layout.

Rendering never fails at the page level: instances that cannot be
rendered become placeholder markup, and a malformed stored layout
renders as a friendly error page. Pass --dev to embed validation detail
in the placeholders.

Example:
  themebuilder render home --db ./shop.db
  themebuilder render product --db ./shop.db --shop acme --dev`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, args[0], cmd)
		},
	}
}

func runRender(opts *RootOptions, pageArg string, cmd *cobra.Command) error {
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

	raw, err := st.LoadRaw(cmd.Context(), opts.ShopID, pt)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load page", err)
	}

	reg, err := catalog.Registry()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build component registry", err)
	}

	mode := render.ModeProd
	if opts.Dev {
		mode = render.ModeDev
	}
	pipeline := render.New(reg, render.WithMode(mode))
	result := pipeline.RenderRaw(raw, render.Injected{
		Uniform:      layout.Props{"shopId": opts.ShopID},
		TypeDefaults: catalog.RuntimeDefaults(),
	})

	var renderErrors []RenderError
	for _, node := range result.Nodes {
		if node.Err != nil {
			renderErrors = append(renderErrors, RenderError{InstanceID: node.ID, Error: node.Err})
		}
	}
	formatter.VerboseLog("rendered page %s: state=%s slots=%d degraded=%d",
		pt, stateName(result.State), len(result.Nodes), len(renderErrors))

	if opts.Format == "json" {
		return formatter.Success(RenderResult{
			Page:   pt,
			State:  stateName(result.State),
			HTML:   string(result.PageHTML()),
			Errors: renderErrors,
		})
	}
	return formatter.Success(string(result.PageHTML()))
}

func stateName(s render.PageState) string {
	switch s {
	case render.StateEmpty:
		return "empty"
	case render.StateMalformed:
		return "malformed"
	default:
		return "ok"
	}
}
