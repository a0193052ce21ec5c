package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"libris/internal/engine"
	"libris/internal/library"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <isbn|title>",
		Short: "Show a library book with its subjects and price quotes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := quietLogger()
			if err != nil {
				return err
			}
			return ctx.withEngine(logger, func(eng *engine.Engine) error {
				book, err := eng.Resolve(cmd.Context(), args[0])
				switch {
				case errors.Is(err, library.ErrNotFound):
					return fmt.Errorf("no book in the library matches %q", args[0])
				case errors.Is(err, engine.ErrDisambiguation):
					return fmt.Errorf("%q matches more than one book; use an ISBN", args[0])
				case err != nil:
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, book.Display())
				printField(out, "author", book.AuthorName)
				printField(out, "publisher", book.PublisherName)
				printField(out, "edition", book.EditionInfo)
				printField(out, "language", book.Language)

				store := eng.Store()
				if subjects, err := store.Subjects(cmd.Context(), book.LibID); err == nil && len(subjects) > 0 {
					printField(out, "subjects", fmt.Sprintf("%v", subjects))
				}
				if min, err := store.MinPrice(cmd.Context(), book.LibID); err == nil && min != nil {
					printField(out, "lowest price", fmt.Sprintf("$%.2f", *min))
				}
				return nil
			})
		},
	}
}

func printField(out io.Writer, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(out, "  %-13s %s\n", name+":", value)
}
