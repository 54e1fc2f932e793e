// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/pvegen/pvegen/internal/config"
	"github.com/pvegen/pvegen/internal/emit"
	"github.com/pvegen/pvegen/internal/fetch"
	"github.com/pvegen/pvegen/internal/gen"
)

var watchDebounce int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the schema document and regenerate on changes",
	Long: `Watch the schema document for changes and automatically regenerate
the client SDK.

This keeps a generated SDK in sync while iterating on schema subsets
or generation settings. A failed regeneration is reported and watching
continues.

Example:
  pvegen watch                   # Watch the configured schema document
  pvegen watch --debounce 1000   # Wait 1s after the last change`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&watchDebounce, "debounce", 0, "debounce duration in milliseconds (default: 500)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if schemaFile != "" {
		cfg.Schema.Path = schemaFile
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if watchDebounce > 0 {
		cfg.Watch.Debounce = watchDebounce
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	printVerbose("Watch configuration:")
	printVerbose("  Schema: %s", cfg.Schema.Path)
	printVerbose("  Debounce: %dms", cfg.Watch.Debounce)

	regenerate := func(ctx context.Context) {
		data, err := fetch.Load(ctx, cfg.Schema.Path)
		if err != nil {
			printError("%v", err)
			return
		}
		result, err := gen.Run(data, gen.Options{
			Package:      cfg.Output.Package,
			Include:      cfg.Generation.Include,
			Exclude:      cfg.Generation.Exclude,
			DynamicBound: cfg.Generation.DynamicBound,
		})
		if err != nil {
			printError("%v", err)
			return
		}
		if err := emit.WriteFiles(cfg.Output.Dir, result.Files); err != nil {
			printError("%v", err)
			return
		}
		printInfo("Regenerated %d files for %d endpoints", len(result.Files), result.Endpoints)
		for _, warning := range result.Warnings {
			printVerbose("warning: %s", warning)
		}
	}

	ctx := cmd.Context()
	regenerate(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors and re-fetches replace the file,
	// which drops a watch set on the file itself.
	target, err := filepath.Abs(cfg.Schema.Path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	printInfo("Watching %s", cfg.Schema.Path)
	printInfo("Press Ctrl+C to stop")

	debounce := time.Duration(cfg.Watch.Debounce) * time.Millisecond
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			changed, err := filepath.Abs(event.Name)
			if err != nil || changed != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			printVerbose("Change detected: %s", event.Op)
			timer.Reset(debounce)

		case <-timer.C:
			regenerate(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError("watch error: %v", err)
		}
	}
}
