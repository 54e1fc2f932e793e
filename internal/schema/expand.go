// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package schema

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pvegen/pvegen/pkg/types"
)

// DefaultDynamicBound is the family size used when neither the template
// name nor the description states one. Seven covers the numbered device
// families of the Proxmox schema (link0..link6, net0.., and so on).
const DefaultDynamicBound = 7

var (
	// dynamicNamePattern matches family templates: "link[n]", "net[4]".
	dynamicNamePattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_-]*?)\[(n|\d+)\]$`)

	// boundPhrasePattern extracts an index range stated in prose, as in
	// "Link number (0 to 6)".
	boundPhrasePattern = regexp.MustCompile(`(\d+)\s+(?:to|through)\s+(\d+)`)
)

// Expander replaces dynamic parameter family templates with concrete
// numbered parameters. Each template "base[n]" becomes base0..base{k-1}
// in the template's position; the template itself is removed.
type Expander struct {
	// Bound is the family size used when no explicit count is
	// available. Zero means DefaultDynamicBound.
	Bound int

	// Warns collects fallback notices for unparseable bounds.
	Warns *types.Warnings
}

// NewExpander returns an Expander with the given default bound.
func NewExpander(bound int, warns *types.Warnings) *Expander {
	if bound <= 0 {
		bound = DefaultDynamicBound
	}
	return &Expander{Bound: bound, Warns: warns}
}

// Expand rewrites every method's parameter list in place across the
// endpoint forest. Expansion never fails: an unresolvable bound warns
// and falls back to the default.
func (e *Expander) Expand(endpoints []*types.Endpoint) {
	for _, root := range endpoints {
		root.Walk(func(ep *types.Endpoint) {
			for i := range ep.Methods {
				ep.Methods[i].Parameters = e.expandParams(ep.Path, ep.Methods[i].Parameters)
			}
		})
	}
}

func (e *Expander) expandParams(path string, params []types.Parameter) []types.Parameter {
	hasTemplate := false
	for _, param := range params {
		if dynamicNamePattern.MatchString(param.Name) {
			hasTemplate = true
			break
		}
	}
	if !hasTemplate {
		return params
	}

	// Concrete declarations always win over synthesized members.
	concrete := make(map[string]bool, len(params))
	for _, param := range params {
		if !dynamicNamePattern.MatchString(param.Name) {
			concrete[param.Name] = true
		}
	}

	expanded := make([]types.Parameter, 0, len(params))
	synthesized := make(map[string]bool)
	for _, param := range params {
		match := dynamicNamePattern.FindStringSubmatch(param.Name)
		if match == nil {
			expanded = append(expanded, param)
			continue
		}

		base, suffix := match[1], match[2]
		count := e.familyCount(path, base, suffix, param.Description)
		for i := 0; i < count; i++ {
			name := fmt.Sprintf("%s%d", base, i)
			// Concrete declarations win; a second template sharing the
			// base must not re-synthesize members of the first.
			if concrete[name] || synthesized[name] {
				continue
			}
			synthesized[name] = true
			member := param
			member.Name = name
			expanded = append(expanded, member)
		}
	}
	return expanded
}

// familyCount resolves the family size: explicit digits in the template
// name, else an index range in the description, else the default bound.
func (e *Expander) familyCount(path, base, suffix, description string) int {
	if suffix != "n" {
		count, err := strconv.Atoi(suffix)
		if err == nil && count > 0 {
			return count
		}
	}

	if match := boundPhrasePattern.FindStringSubmatch(description); match != nil {
		lo, _ := strconv.Atoi(match[1])
		hi, _ := strconv.Atoi(match[2])
		if hi >= lo {
			return hi - lo + 1
		}
		if e.Warns != nil {
			e.Warns.Add("expand", path,
				"family %s[n]: descending bound %d to %d, using default %d",
				base, lo, hi, e.Bound)
		}
		return e.Bound
	}

	if e.Warns != nil {
		e.Warns.Add("expand", path,
			"family %s[n]: no bound stated, using default %d", base, e.Bound)
	}
	return e.Bound
}
