package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/signum/processor/annotator"
	"github.com/c360studio/signum/processor/batch"
	"github.com/c360studio/signum/processor/watcher"
	"github.com/c360studio/signum/source"
)

func watchCmd(g *globalOptions) *cobra.Command {
	var initial bool

	cmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Re-render documents in place when they change",
		Long: `Watch a directory tree and re-render labels into each document in place
whenever it is created or modified. Runs until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			a, err := annotator.New(annotatorConfig(cfg), nil, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runWatch(ctx, args[0], cfg.Watch, batch.NewProcessor(a, logger), initial, logger)
		},
	}

	cmd.Flags().BoolVar(&initial, "initial", true, "Render every existing document before watching")
	return cmd
}

// runWatch processes documents under root until ctx is done.
func runWatch(ctx context.Context, root string, cfg watcher.Config, p *batch.Processor, initial bool, logger *slog.Logger) error {
	w, err := watcher.New(cfg, root, logger)
	if err != nil {
		return err
	}

	if initial {
		files, err := batch.ResolveFiles([]string{w.Root()}, cfg.Extensions)
		if err != nil {
			return err
		}
		// Start seeds hashes afterwards, so these writes are not reported.
		if _, err := p.ProcessFiles(ctx, files, ""); err != nil {
			return err
		}
	}

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer w.Stop()

	logger.Info("Watching documents", "root", w.Root())

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopped watching", "dropped_events", w.DroppedEvents())
			return nil
		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			if ev.Operation == watcher.OpDelete {
				continue
			}

			res, err := p.ProcessFile(ev.AbsPath, "")
			if err != nil {
				logger.Error("Failed to process document", "path", ev.Path, "error", err)
				continue
			}
			// Our own write must not look like a fresh change.
			if res.Written {
				w.SetHash(ev.Path, source.ContentHash(res.Content))
			}
			logger.Info("Processed document",
				"path", ev.Path,
				"operation", ev.Operation,
				"status", res.Pass.Status,
				"slots", res.Pass.Rendered,
				"written", res.Written)
		}
	}
}
