// Package app implements the application layer for compdb.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"go.trai.ch/compdb/internal/adapters/toolchain"
	"go.trai.ch/compdb/internal/adapters/watcher"
	"go.trai.ch/compdb/internal/adapters/workspace"
	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports"
	"go.trai.ch/compdb/internal/engine/aggregator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader  ports.WorkspaceLoader
	store   ports.DatabaseStore
	logger  ports.Logger
	watcher ports.Watcher
}

// New creates a new App instance.
func New(
	loader ports.WorkspaceLoader,
	store ports.DatabaseStore,
	logger ports.Logger,
	fsWatcher ports.Watcher,
) *App {
	return &App{
		loader:  loader,
		store:   store,
		logger:  logger,
		watcher: fsWatcher,
	}
}

// GenerateOptions configuration for the Generate method.
type GenerateOptions struct {
	Output string
	Watch  bool
}

// Generate builds the compilation database for the specified root
// targets and writes it to the configured output file. With Watch set,
// it then keeps regenerating on workspace changes until the context is
// canceled.
func (a *App) Generate(ctx context.Context, targetNames []string, opts GenerateOptions) error {
	if len(targetNames) == 0 {
		return domain.ErrNoTargetsSpecified
	}

	roots := make([]domain.Label, len(targetNames))
	for i, name := range targetNames {
		roots[i] = domain.NewLabel(name)
	}

	output := opts.Output
	if output == "" {
		output = domain.DatabaseFileName
	}

	if err := a.generateOnce(ctx, roots, output); err != nil {
		return errors.Join(domain.ErrGenerationFailed, err)
	}

	if !opts.Watch {
		return nil
	}
	return a.watch(ctx, roots, output)
}

// generateOnce runs one load-aggregate-save cycle.
func (a *App) generateOnce(ctx context.Context, roots []domain.Label, output string) error {
	ws, err := a.loader.Load(".")
	if err != nil {
		return err
	}

	agg := aggregator.New(
		workspace.NewGraph(ws),
		toolchain.NewResolver(ws.Toolchain),
	)
	entries, err := agg.Aggregate(ctx, roots)
	if err != nil {
		return err
	}

	updated, err := a.store.Save(output, entries)
	if err != nil {
		return err
	}

	if updated {
		a.logger.Info(fmt.Sprintf("wrote %s (%d entries)", output, len(entries)))
	} else {
		a.logger.Info(fmt.Sprintf("%s is up to date (%d entries)", output, len(entries)))
	}
	return nil
}

// watch regenerates the database whenever the workspace changes.
func (a *App) watch(ctx context.Context, roots []domain.Label, output string) error {
	if a.watcher == nil {
		return zerr.New("watch mode requires a file watcher")
	}

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		a.logger.Info(fmt.Sprintf("detected %d changed paths, regenerating", len(paths)))
		if err := a.generateOnce(ctx, roots, output); err != nil {
			a.logger.Error(err)
		}
	})

	if err := a.watcher.Start(ctx, "."); err != nil {
		return zerr.Wrap(err, "failed to start file watcher")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	// The emitted database must not retrigger generation.
	outputAbs, err := filepath.Abs(output)
	if err != nil {
		outputAbs = output
	}

	a.logger.Info("watching for changes, press ctrl-c to stop")
	for event := range a.watcher.Events() {
		if abs, err := filepath.Abs(event.Path); err == nil && abs == outputAbs {
			continue
		}
		debouncer.Add(event.Path)
	}
	return nil
}

// Targets lists the labels of all recognized targets in the workspace,
// sorted for stable output.
func (a *App) Targets(_ context.Context) ([]string, error) {
	ws, err := a.loader.Load(".")
	if err != nil {
		return nil, err
	}

	var names []string
	for label, target := range ws.Targets {
		if target.Kind.Recognized() {
			names = append(names, label.String())
		}
	}
	slices.Sort(names)
	return names, nil
}
