// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package schema

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pvegen/pvegen/pkg/types"
)

// Filter restricts generation to a subset of API paths using glob
// patterns ("/nodes/**", "/cluster/ha/*"). Empty include means
// everything; exclude wins over include.
type Filter struct {
	include []string
	exclude []string
}

// NewFilter validates the patterns and returns a Filter.
func NewFilter(include, exclude []string) (*Filter, error) {
	for _, pattern := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid path pattern %q", pattern)
		}
	}
	return &Filter{include: include, exclude: exclude}, nil
}

// Empty reports whether the filter passes every path.
func (f *Filter) Empty() bool {
	return len(f.include) == 0 && len(f.exclude) == 0
}

// Match reports whether an API path passes the filter.
func (f *Filter) Match(path string) bool {
	for _, pattern := range f.exclude {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return false
		}
	}
	if len(f.include) == 0 {
		return true
	}
	for _, pattern := range f.include {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}

// Apply prunes the endpoint forest to the matching paths. An endpoint
// whose own path does not match is kept, method-less, while any of its
// descendants match, so the generated hierarchy stays navigable.
func (f *Filter) Apply(endpoints []*types.Endpoint) []*types.Endpoint {
	if f.Empty() {
		return endpoints
	}
	var kept []*types.Endpoint
	for _, ep := range endpoints {
		if pruned := f.prune(ep); pruned != nil {
			kept = append(kept, pruned)
		}
	}
	return kept
}

func (f *Filter) prune(ep *types.Endpoint) *types.Endpoint {
	var children []*types.Endpoint
	for _, child := range ep.Children {
		if pruned := f.prune(child); pruned != nil {
			children = append(children, pruned)
		}
	}

	matched := f.Match(ep.Path)
	if !matched && len(children) == 0 {
		return nil
	}

	kept := *ep
	kept.Children = children
	if !matched {
		kept.Methods = nil
	}
	return &kept
}
