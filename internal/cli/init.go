// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pvegen/pvegen/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new pvegen configuration file",
	Long: `Initialize a new pvegen configuration file in the current directory.

This command creates a pvegen.yaml file with sensible defaults that
you can customize for your project.

Example:
  pvegen init            # Create pvegen.yaml with defaults
  pvegen init --force    # Overwrite existing config`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	configFile := "pvegen.yaml"

	if _, err := os.Stat(configFile); err == nil && !initForce {
		return fmt.Errorf("config file %s already exists, use --force to overwrite", configFile)
	}

	cfg := config.Default()
	if schemaFile != "" {
		cfg.Schema.Path = schemaFile
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}

	output := buildConfigYAML(cfg)
	if err := os.WriteFile(configFile, []byte(output), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	printInfo("Created %s", configFile)
	printVerbose("Schema: %s", cfg.Schema.Path)
	printVerbose("Output: %s (package %s)", cfg.Output.Dir, cfg.Output.Package)
	return nil
}

// buildConfigYAML renders the scaffold with a usage header.
func buildConfigYAML(cfg *config.Config) string {
	header := `# pvegen configuration
# Run "pvegen fetch" to download the schema, then "pvegen generate".

`
	body, err := yaml.Marshal(cfg)
	if err != nil {
		// Config is plain data; marshaling cannot realistically fail.
		return header
	}
	return header + string(body)
}
