package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"libris/internal/engine"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <isbn|title>...",
		Short: "Look up identifiers and insert them into the library",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := quietLogger()
			if err != nil {
				return err
			}
			return ctx.withEngine(logger, func(eng *engine.Engine) error {
				for _, raw := range args {
					outcome, err := eng.Ingest(cmd.Context(), raw)
					if err != nil {
						return fmt.Errorf("add %q: %w", raw, err)
					}
					fmt.Fprintln(cmd.OutOrStdout(), outcome.Message())
				}
				return nil
			})
		},
	}
}
