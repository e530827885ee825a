package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	galleryerrors "github.com/vango-dev/gallery/internal/errors"
)

func registryCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Inspect the showcase registries",
	}
	cmd.AddCommand(registryListCmd(c), registryCheckCmd(c))
	return cmd
}

func registryListCmd(c *cli) *cobra.Command {
	var sectionsOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered showcase slugs",
		Long: `List every slug with a standalone page showcase. Slugs that also
render inside category pages are marked with "section".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			for _, slug := range a.pages.Slugs() {
				inSection := a.sections.Has(slug)
				switch {
				case inSection:
					fmt.Fprintf(out, "%-20s section\n", slug)
				case !sectionsOnly:
					fmt.Fprintf(out, "%-20s page\n", slug)
				}
			}
			fmt.Fprintf(out, "\ndigest %s\n", a.pages.Digest())
			return nil
		},
	}

	cmd.Flags().BoolVar(&sectionsOnly, "sections", false, "only list slugs rendered in category pages")

	return cmd
}

func registryCheckCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report catalog components without a registered showcase",
		Long: `Compare the catalog against the page registry. Components without a
showcase still render through the generic detail view; check exits non-zero
so that gaps are visible in CI.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			components, err := a.components(cmd.Context())
			if err != nil {
				return galleryerrors.FromError(err, "E210")
			}

			out := cmd.OutOrStdout()
			missing := a.pages.Missing(components)
			if len(missing) == 0 {
				success(out, "all %d components have a showcase", len(components))
				return nil
			}
			for _, slug := range missing {
				warn(out, "%s has no showcase", slug)
			}
			return galleryerrors.New("E141").
				WithDetailf("%d of %d components have no showcase: %s", len(missing), len(components), strings.Join(missing, ", ")).
				WithSuggestion("Register a showcase for each slug or accept the generic detail view.")
		},
	}
}
