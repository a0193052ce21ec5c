package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"libris/internal/engine"
	"libris/internal/library"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <isbn|title>",
		Short: "Remove a book and its subjects and prices from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := quietLogger()
			if err != nil {
				return err
			}
			return ctx.withEngine(logger, func(eng *engine.Engine) error {
				book, err := eng.Remove(cmd.Context(), args[0])
				switch {
				case errors.Is(err, library.ErrNotFound):
					return fmt.Errorf("no book in the library matches %q", args[0])
				case errors.Is(err, engine.ErrDisambiguation):
					return fmt.Errorf("%q matches more than one book; remove by ISBN instead", args[0])
				case err != nil:
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from library.\n", book.Display())
				return nil
			})
		},
	}
}
