package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"libris/internal/engine"
	"libris/internal/report"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Write the HTML catalog of every book in the library",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := quietLogger()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			target := strings.TrimSpace(outputPath)
			if target == "" {
				target = cfg.Paths.CatalogFile
			}
			return ctx.withEngine(logger, func(eng *engine.Engine) error {
				rows, err := eng.ExportCatalog(cmd.Context())
				if err != nil {
					return err
				}
				if err := report.WriteFile(target, rows); err != nil {
					return err
				}
				if isatty.IsTerminal(os.Stdout.Fd()) {
					fmt.Fprintln(cmd.OutOrStdout(), report.RenderTable(rows))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote catalog of %d books to %s\n", len(rows), target)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Catalog file path (defaults to the configured catalog_file)")
	return cmd
}
