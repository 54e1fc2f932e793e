// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// WriteReport renders an analysis in the requested format: "text" for
// a human-readable report, "yaml" or "json" for machine consumption.
func WriteReport(w io.Writer, analysis *Analysis, format string) error {
	switch format {
	case "text", "":
		return writeTextReport(w, analysis)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(analysis); err != nil {
			return fmt.Errorf("encoding analysis as yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(analysis); err != nil {
			return fmt.Errorf("encoding analysis as json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

func writeTextReport(w io.Writer, analysis *Analysis) error {
	stats := analysis.Stats

	fmt.Fprintln(w, "Schema analysis")
	fmt.Fprintln(w, "===============")
	fmt.Fprintf(w, "Endpoints:      %d (%d leaf, %d parameterized)\n",
		stats.TotalEndpoints, stats.LeafEndpoints, stats.ParameterizedEndpoints)
	fmt.Fprintf(w, "Methods:        %d\n", stats.TotalMethods)
	fmt.Fprintf(w, "Parameters:     %d (%d optional)\n",
		stats.TotalParameters, stats.OptionalParameters)
	fmt.Fprintf(w, "Path params:    %d distinct names\n", len(stats.PathParamNames))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Methods by verb:")
	writeHistogram(w, stats.MethodCounts)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Parameter types:")
	writeHistogram(w, stats.TypeCounts)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Constraint usage:")
	writeHistogram(w, stats.ConstraintCounts)

	if len(stats.FormatCounts) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Formats:")
		writeHistogram(w, stats.FormatCounts)
	}

	if len(analysis.DynamicFamilies) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Dynamic parameter families (%d):\n", len(analysis.DynamicFamilies))
		for _, family := range analysis.DynamicFamilies {
			fmt.Fprintf(w, "  %s\n", family)
		}
	}

	if len(analysis.EdgeCases) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Edge cases (%d):\n", len(analysis.EdgeCases))
		for _, edge := range analysis.EdgeCases {
			fmt.Fprintf(w, "  %s\n", edge)
		}
	}
	return nil
}

// writeHistogram prints a count map sorted by descending count, then
// name, so the report is stable across runs.
func writeHistogram(w io.Writer, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	for _, key := range keys {
		fmt.Fprintf(w, "  %-24s %d\n", key, counts[key])
	}
}
