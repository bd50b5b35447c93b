package main

import (
	"github.com/spf13/cobra"

	"github.com/p-gag/grapegeek-sub001/internal/export"
)

var (
	exportOut         string
	exportParallelism int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render every page of the site into a directory of static files",
	Long: `Renders every page for every locale, the not-found page, the family-tree
data and the wine list downloads into --out, then writes manifest.json.

Example:
  grapegeek export --out public`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSite(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer s.close()

		b := export.NewBuilder(s.router, s.catalog, logger, export.Options{
			OutDir:      exportOut,
			Locales:     s.tr.Locales(),
			Parallelism: exportParallelism,
		})
		m, err := b.Build(cmd.Context())
		if err != nil {
			return err
		}
		cmd.Printf("exported %d pages to %s (build %s)\n", m.PageCount, exportOut, m.BuildID)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "public", "output directory")
	exportCmd.Flags().IntVarP(&exportParallelism, "parallel", "p", export.DefaultParallelism, "pages rendered at once")
}
