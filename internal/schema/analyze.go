// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pvegen/pvegen/pkg/types"
)

// Stats summarizes a parsed schema: size, verb distribution, and
// parameter type/format histograms.
type Stats struct {
	// TotalEndpoints counts every endpoint of the forest
	TotalEndpoints int `json:"totalEndpoints" yaml:"totalEndpoints"`

	// TotalMethods counts HTTP operations across all endpoints
	TotalMethods int `json:"totalMethods" yaml:"totalMethods"`

	// TotalParameters counts declared parameters across all methods
	TotalParameters int `json:"totalParameters" yaml:"totalParameters"`

	// LeafEndpoints counts endpoints without children
	LeafEndpoints int `json:"leafEndpoints" yaml:"leafEndpoints"`

	// ParameterizedEndpoints counts endpoints whose path carries
	// at least one {name} placeholder
	ParameterizedEndpoints int `json:"parameterizedEndpoints" yaml:"parameterizedEndpoints"`

	// PathParamNames are the distinct placeholder names, sorted
	PathParamNames []string `json:"pathParamNames" yaml:"pathParamNames"`

	// MethodCounts is the per-verb operation histogram
	MethodCounts map[string]int `json:"methodCounts" yaml:"methodCounts"`

	// TypeCounts is the declared-parameter-type histogram
	TypeCounts map[string]int `json:"typeCounts" yaml:"typeCounts"`

	// FormatCounts is the format-identifier histogram; inline
	// sub-schemas count under "nested"
	FormatCounts map[string]int `json:"formatCounts" yaml:"formatCounts"`

	// OptionalParameters counts parameters marked optional
	OptionalParameters int `json:"optionalParameters" yaml:"optionalParameters"`

	// ConstraintCounts is the constraint-kind usage histogram
	ConstraintCounts map[string]int `json:"constraintCounts" yaml:"constraintCounts"`
}

// Analysis is the full analyzer output.
type Analysis struct {
	Stats Stats `json:"stats" yaml:"stats"`

	// DynamicFamilies lists "path: name" for every family template
	// found before expansion
	DynamicFamilies []string `json:"dynamicFamilies,omitempty" yaml:"dynamicFamilies,omitempty"`

	// EdgeCases lists unusual schema shapes worth reviewing: very wide
	// methods, non-standard declared types
	EdgeCases []string `json:"edgeCases,omitempty" yaml:"edgeCases,omitempty"`
}

// Analyzer produces schema statistics for the analyze command. It runs
// on the parsed, unexpanded IR so dynamic families are still visible.
type Analyzer struct{}

// NewAnalyzer returns a ready-to-use Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// wideMethodThreshold flags methods with an unusually large parameter
// surface, a known property of the VM config endpoints.
const wideMethodThreshold = 20

var standardTypes = map[string]bool{
	"string": true, "integer": true, "number": true,
	"boolean": true, "array": true, "object": true, "null": true,
}

// Analyze walks the forest and collects statistics.
func (a *Analyzer) Analyze(endpoints []*types.Endpoint) *Analysis {
	analysis := &Analysis{
		Stats: Stats{
			MethodCounts:     make(map[string]int),
			TypeCounts:       make(map[string]int),
			FormatCounts:     make(map[string]int),
			ConstraintCounts: make(map[string]int),
		},
	}
	pathParams := make(map[string]bool)

	for _, root := range endpoints {
		root.Walk(func(ep *types.Endpoint) {
			a.collectEndpoint(analysis, pathParams, ep)
		})
	}

	for name := range pathParams {
		analysis.Stats.PathParamNames = append(analysis.Stats.PathParamNames, name)
	}
	sort.Strings(analysis.Stats.PathParamNames)
	sort.Strings(analysis.DynamicFamilies)
	sort.Strings(analysis.EdgeCases)
	return analysis
}

func (a *Analyzer) collectEndpoint(analysis *Analysis, pathParams map[string]bool, ep *types.Endpoint) {
	stats := &analysis.Stats
	stats.TotalEndpoints++
	if len(ep.Children) == 0 {
		stats.LeafEndpoints++
	}
	if len(ep.PathParams) > 0 {
		stats.ParameterizedEndpoints++
		for _, name := range ep.PathParams {
			pathParams[name] = true
		}
	}

	for _, method := range ep.Methods {
		stats.TotalMethods++
		stats.MethodCounts[method.Verb]++
		stats.TotalParameters += len(method.Parameters)

		if len(method.Parameters) > wideMethodThreshold {
			analysis.EdgeCases = append(analysis.EdgeCases, fmt.Sprintf(
				"wide method: %s %s declares %d parameters",
				ep.Path, method.Verb, len(method.Parameters)))
		}

		for _, param := range method.Parameters {
			a.collectParameter(analysis, ep.Path, method.Verb, param)
		}
	}
}

func (a *Analyzer) collectParameter(analysis *Analysis, path, verb string, param types.Parameter) {
	stats := &analysis.Stats
	stats.TypeCounts[param.Type]++
	if param.Optional {
		stats.OptionalParameters++
	}
	if !standardTypes[param.Type] {
		analysis.EdgeCases = append(analysis.EdgeCases, fmt.Sprintf(
			"non-standard type %q: %s %s parameter %s", param.Type, path, verb, param.Name))
	}
	if strings.HasSuffix(param.Name, "]") {
		analysis.DynamicFamilies = append(analysis.DynamicFamilies,
			fmt.Sprintf("%s: %s", path, param.Name))
	}

	switch {
	case param.Format.IsNested():
		stats.FormatCounts["nested"]++
	case param.Format.Name != "":
		stats.FormatCounts[param.Format.Name]++
	}

	if param.Minimum != nil || param.Maximum != nil {
		stats.ConstraintCounts["range"]++
	}
	if param.MinLength != nil || param.MaxLength != nil {
		stats.ConstraintCounts["length"]++
	}
	if param.Pattern != "" {
		stats.ConstraintCounts["pattern"]++
	}
	if len(param.Enum) > 0 {
		stats.ConstraintCounts["enum"]++
	}
	if !param.Format.IsZero() {
		stats.ConstraintCounts["format"]++
	}

	for _, nested := range param.Format.Nested {
		a.collectParameter(analysis, path, verb, nested)
	}
	for _, sub := range param.Properties {
		a.collectParameter(analysis, path, verb, sub)
	}
}
