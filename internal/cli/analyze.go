// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pvegen/pvegen/internal/config"
	"github.com/pvegen/pvegen/internal/fetch"
	"github.com/pvegen/pvegen/internal/schema"
)

var analyzeFormat string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report statistics about the API schema",
	Long: `Analyze the schema document and report statistics: endpoint and
method counts, parameter type and format histograms, constraint usage,
dynamic parameter families, and unusual shapes worth reviewing.

The analysis runs on the unexpanded schema, so dynamic families like
link[n] are reported as declared.

Example:
  pvegen analyze                       # Human-readable report
  pvegen analyze --report-format yaml  # Machine-readable report`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFormat, "report-format", "", "report format: text, yaml, json (default: text)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if schemaFile != "" {
		cfg.Schema.Path = schemaFile
	}
	if analyzeFormat != "" {
		cfg.Analyze.Format = analyzeFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	data, err := fetch.Load(cmd.Context(), cfg.Schema.Path)
	if err != nil {
		return err
	}

	endpoints, err := schema.NewParser(nil).Parse(data)
	if err != nil {
		return err
	}

	analysis := schema.NewAnalyzer().Analyze(endpoints)
	return schema.WriteReport(os.Stdout, analysis, cfg.Analyze.Format)
}
