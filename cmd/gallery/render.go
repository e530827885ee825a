package main

import (
	"net/http"

	"github.com/spf13/cobra"

	galleryerrors "github.com/vango-dev/gallery/internal/errors"
	"github.com/vango-dev/gallery/internal/pages"
	"github.com/vango-dev/gallery/pkg/render"
)

func renderCmd(c *cli) *cobra.Command {
	var category bool

	cmd := &cobra.Command{
		Use:   "render <slug>",
		Short: "Render a component page as HTML",
		Long: `Render the page for a component slug and write the HTML document to
stdout. With --category the slug names a category instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			resolver := pages.NewResolver(a.client, a.sections, a.pages, pages.WithLogger(c.logger))

			var page pages.Page
			if category {
				page, err = resolver.Category(cmd.Context(), args[0])
			} else {
				page, err = resolver.Component(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			r := render.NewRenderer(render.RendererConfig{Pretty: c.cfg.Render.Pretty})
			if err := r.RenderPage(cmd.OutOrStdout(), pages.Document(page)); err != nil {
				return galleryerrors.FromError(err, "E230")
			}
			if page.Status() == http.StatusNotFound {
				code := "E201"
				if category {
					code = "E200"
				}
				return galleryerrors.New(code).WithDetailf("No match for slug %q.", args[0])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&category, "category", false, "render a category page")

	return cmd
}
