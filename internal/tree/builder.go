// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

// Package tree arranges endpoints into the navigable hierarchy the
// generated accessor types mirror.
package tree

import (
	"strings"

	"github.com/pvegen/pvegen/pkg/types"
)

// Builder inserts endpoints into a segment tree. Ancestors the schema
// never declares are synthesized on demand so every path stays
// reachable from the root.
type Builder struct {
	root *types.Node
}

// NewBuilder returns a Builder with an empty root.
func NewBuilder() *Builder {
	return &Builder{
		root: &types.Node{Segment: "", Path: "/", Children: make(map[string]*types.Node)},
	}
}

// Build inserts the whole endpoint forest and returns the root. Two
// parameter names claiming the same slot is a fatal error.
func (b *Builder) Build(endpoints []*types.Endpoint) (*types.Node, error) {
	for _, root := range endpoints {
		var err error
		root.Walk(func(ep *types.Endpoint) {
			if err == nil {
				err = b.insert(ep)
			}
		})
		if err != nil {
			return nil, err
		}
	}
	return b.root, nil
}

func (b *Builder) insert(ep *types.Endpoint) error {
	node := b.root
	segments := strings.Split(strings.Trim(ep.Path, "/"), "/")
	if len(segments) == 1 && segments[0] == "" {
		segments = nil
	}

	path := ""
	for _, segment := range segments {
		path += "/" + segment

		param := strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}")
		paramName := strings.Trim(segment, "{}")

		child, ok := node.Children[segment]
		if !ok {
			if param {
				// One slot, one parameter name: a second placeholder
				// with a different name cannot share the position.
				if existing := node.ParamChild(); existing != nil && existing.ParamName != paramName {
					return &types.SchemaError{
						Path: ep.Path,
						Message: "conflicting path parameters " +
							existing.ParamName + " and " + paramName + " at " + node.Path,
					}
				}
			}
			child = &types.Node{
				Segment:   segment,
				Path:      path,
				Param:     param,
				ParamName: paramName,
				Children:  make(map[string]*types.Node),
			}
			if !param {
				child.ParamName = ""
			}
			node.Children[segment] = child
		}
		node = child
	}

	if node.Endpoint == nil {
		node.Endpoint = ep
	}
	return nil
}
