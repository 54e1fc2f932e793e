// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

// Package gen orchestrates the generation pipeline: parse, expand,
// filter, map, extract, build, emit.
package gen

import (
	"sort"

	"github.com/pvegen/pvegen/internal/emit"
	"github.com/pvegen/pvegen/internal/paramset"
	"github.com/pvegen/pvegen/internal/schema"
	"github.com/pvegen/pvegen/internal/tree"
	"github.com/pvegen/pvegen/internal/typemap"
	"github.com/pvegen/pvegen/pkg/types"
)

// Options configures a pipeline run.
type Options struct {
	// Package is the generated package name; "pveapi" when empty
	Package string

	// Include restricts generation to matching API paths
	Include []string

	// Exclude drops matching API paths
	Exclude []string

	// DynamicBound overrides the default dynamic family size
	DynamicBound int
}

// Result is a successful pipeline run.
type Result struct {
	// Files are the generated source files in emission order
	Files []emit.File

	// Endpoints is the number of endpoints generated for
	Endpoints int

	// Sets is the number of distinct parameter sets
	Sets int

	// Warnings are the recoverable conditions collected along the way
	Warnings []types.Warning
}

// Run executes the pipeline on a raw schema document. The stages run
// strictly forward in a single pass; the parameter-set registry and
// the warning collector are the only values that cross stages.
func Run(data []byte, opts Options) (*Result, error) {
	warns := &types.Warnings{}

	parser := schema.NewParser(warns)
	endpoints, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	schema.NewExpander(opts.DynamicBound, warns).Expand(endpoints)

	filter, err := schema.NewFilter(opts.Include, opts.Exclude)
	if err != nil {
		return nil, err
	}
	endpoints = filter.Apply(endpoints)

	// Extraction order is endpoints sorted by path with verbs in
	// canonical order, so set names reproduce across runs.
	mapper := typemap.NewMapper(warns)
	registry := paramset.NewRegistry()
	flat := types.Flatten(endpoints)
	sort.Slice(flat, func(i, j int) bool { return flat[i].Path < flat[j].Path })
	for _, ep := range flat {
		for _, method := range ep.Methods {
			typed := mapper.MapAll(ep.Path, method.Parameters)
			registry.Intern(ep.Path, method.Verb, typed)
		}
	}

	root, err := tree.NewBuilder().Build(endpoints)
	if err != nil {
		return nil, err
	}

	pkg := opts.Package
	if pkg == "" {
		pkg = "pveapi"
	}
	files, err := emit.NewEmitter(pkg, warns).Emit(root, registry)
	if err != nil {
		return nil, err
	}

	return &Result{
		Files:     files,
		Endpoints: len(flat),
		Sets:      len(registry.Sets()),
		Warnings:  warns.All(),
	}, nil
}
