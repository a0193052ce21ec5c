package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"libris/internal/config"
	"libris/internal/engine"
	"libris/internal/input"
	"libris/internal/logging"
	"libris/internal/report"
)

const (
	commandCatalog = "catalog"
	commandQuit    = "quit"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive scan-and-catalog loop",
		Long: `Run merges barcode scanner and keyboard input into a single command
stream. Scanned or typed identifiers are looked up and inserted into the
library; "catalog" writes the HTML catalog and "quit" exits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoop(cmd.Context(), ctx)
		},
	}
}

func runLoop(cmdCtx context.Context, ctx *commandContext) error {
	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	return ctx.withEngine(logger, func(eng *engine.Engine) error {
		merger := newMergedInput(signalCtx, cfg, logger)
		return interactiveLoop(signalCtx, cfg, eng, merger, logger)
	})
}

// newMergedInput attaches the keyboard and, when configured, the serial
// barcode scanner to a single line merger. A scanner that is not plugged
// in yet is picked up by the hotplug watcher once its device node appears.
func newMergedInput(ctx context.Context, cfg *config.Config, logger *slog.Logger) *input.Merger {
	retry := time.Duration(cfg.Loop.PollIntervalMillis) * time.Millisecond
	merger := input.New(logger, retry)
	merger.Attach(ctx, input.NewKeyboardSource(os.Stdin), false)

	if port := cfg.Scanner.SerialPort; port != "" {
		scanner, err := input.OpenSerial(port, cfg.Scanner.SerialSpeed)
		if err != nil {
			logger.Warn("barcode scanner unavailable, waiting for hotplug",
				logging.String("device", port), logging.Error(err))
			watcher := input.NewHotplugWatcher(port, cfg.Scanner.SerialSpeed, merger, logger)
			watcher.Start(ctx)
		} else {
			merger.Attach(ctx, scanner, true)
		}
	}
	return merger
}

func interactiveLoop(ctx context.Context, cfg *config.Config, eng *engine.Engine, merger *input.Merger, logger *slog.Logger) error {
	prompt := isatty.IsTerminal(os.Stdin.Fd())
	for {
		if prompt {
			fmt.Println("Scan barcode or enter ISBN.")
		}
		select {
		case <-ctx.Done():
			return nil
		case line := <-merger.Lines():
			switch line {
			case commandQuit:
				return nil
			case commandCatalog:
				if err := writeCatalog(ctx, cfg.Paths.CatalogFile, eng); err != nil {
					logger.Error("write catalog", logging.Error(err))
					fmt.Printf("Catalog failed: %v\n", err)
				}
			default:
				handleScan(ctx, eng, line, logger)
			}
		}
	}
}

func handleScan(ctx context.Context, eng *engine.Engine, line string, logger *slog.Logger) {
	outcome, err := eng.Ingest(ctx, line)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		logger.Error("ingest failed", logging.String("input", line), logging.Error(err))
		fmt.Printf("Lookup failed for %q: %v\n", line, err)
		return
	}
	fmt.Println(outcome.Message())
	if outcome.Status == engine.StatusAlreadyPresent {
		printHolding(ctx, eng, outcome.LibID)
	}
}

// printHolding shows what the library already knows about a duplicate scan:
// its subjects and the best known price.
func printHolding(ctx context.Context, eng *engine.Engine, libID int64) {
	store := eng.Store()
	if subjects, err := store.Subjects(ctx, libID); err == nil && len(subjects) > 0 {
		fmt.Printf("  subjects: %v\n", subjects)
	}
	if min, err := store.MinPrice(ctx, libID); err == nil && min != nil {
		fmt.Printf("  lowest recorded price: $%.2f\n", *min)
	}
}

func writeCatalog(ctx context.Context, path string, eng *engine.Engine) error {
	rows, err := eng.ExportCatalog(ctx)
	if err != nil {
		return err
	}
	if err := report.WriteFile(path, rows); err != nil {
		return err
	}
	fmt.Printf("Wrote catalog of %d books to %s\n", len(rows), path)
	return nil
}
