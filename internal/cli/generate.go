// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pvegen/pvegen/internal/config"
	"github.com/pvegen/pvegen/internal/emit"
	"github.com/pvegen/pvegen/internal/fetch"
	"github.com/pvegen/pvegen/internal/gen"
)

var (
	generatePackage string
	generateDryRun  bool
	generateInclude []string
	generateExclude []string
	generateBound   int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the client SDK from the schema document",
	Long: `Generate a strongly typed Go client SDK from the Proxmox API schema.

The generate command reads the schema document (apidata.js or a cached
.json), runs the normalization pipeline, and writes the generated
package: a root client, per-resource endpoint accessors, and shared
request models with validation.

Example:
  pvegen generate                             # Use pvegen.yaml settings
  pvegen generate --schema apidata.js         # Generate from a local document
  pvegen generate --out gen/pve --package pve # Custom output package
  pvegen generate --include "/nodes/**"       # Generate a path subset
  pvegen generate --dry-run                   # Report without writing`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generatePackage, "package", "p", "", "generated package name (default: pveapi)")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "run the pipeline without writing files")
	generateCmd.Flags().StringSliceVarP(&generateInclude, "include", "i", nil, "API path glob patterns to include")
	generateCmd.Flags().StringSliceVarP(&generateExclude, "exclude", "e", nil, "API path glob patterns to exclude")
	generateCmd.Flags().IntVar(&generateBound, "dynamic-bound", 0, "family size for unbounded dynamic parameters (default: 7)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Apply command-line overrides
	if schemaFile != "" {
		cfg.Schema.Path = schemaFile
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}
	if generatePackage != "" {
		cfg.Output.Package = generatePackage
	}
	if len(generateInclude) > 0 {
		cfg.Generation.Include = generateInclude
	}
	if len(generateExclude) > 0 {
		cfg.Generation.Exclude = generateExclude
	}
	if generateBound > 0 {
		cfg.Generation.DynamicBound = generateBound
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	printVerbose("Configuration:")
	printVerbose("  Schema: %s", cfg.Schema.Path)
	printVerbose("  Output: %s (package %s)", cfg.Output.Dir, cfg.Output.Package)
	printVerbose("  Dynamic bound: %d", cfg.Generation.DynamicBound)

	data, err := fetch.Load(cmd.Context(), cfg.Schema.Path)
	if err != nil {
		return err
	}

	result, err := gen.Run(data, gen.Options{
		Package:      cfg.Output.Package,
		Include:      cfg.Generation.Include,
		Exclude:      cfg.Generation.Exclude,
		DynamicBound: cfg.Generation.DynamicBound,
	})
	if err != nil {
		return err
	}

	if generateDryRun {
		printInfo("Dry run mode - no files will be written")
	} else {
		if err := emit.WriteFiles(cfg.Output.Dir, result.Files); err != nil {
			return err
		}
	}

	printInfo("Generated %d files for %d endpoints (%d parameter sets) in %s",
		len(result.Files), result.Endpoints, result.Sets, cfg.Output.Dir)

	// Warnings never abort a run; report them after success.
	for _, warning := range result.Warnings {
		printInfo("warning: %s", warning)
	}
	return nil
}
