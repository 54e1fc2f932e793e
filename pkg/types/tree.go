// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package types

import "sort"

// Node is one node of the endpoint tree built from path segments. The
// tree mirrors the generated accessor hierarchy: static segments become
// named accessors, parameter segments become factory methods.
type Node struct {
	// Segment is the path segment this node represents. For parameter
	// nodes this is the "{name}" placeholder form.
	Segment string `json:"segment" yaml:"segment"`

	// Path is the full path from the root to this node
	Path string `json:"path" yaml:"path"`

	// Param indicates a parameter placeholder segment
	Param bool `json:"param,omitempty" yaml:"param,omitempty"`

	// ParamName is the declared parameter name of a placeholder segment
	ParamName string `json:"paramName,omitempty" yaml:"paramName,omitempty"`

	// Endpoint is the schema endpoint attached to this node, or nil for
	// synthesized intermediate nodes
	Endpoint *Endpoint `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// Children maps segment keys to child nodes
	Children map[string]*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// ChildKeys returns the child segment keys in sorted order. All child
// iteration goes through this so that emission is stable across runs.
func (n *Node) ChildKeys() []string {
	keys := make([]string, 0, len(n.Children))
	for key := range n.Children {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ParamChild returns the parameter-placeholder child of n, or nil. A
// node has at most one; the tree builder rejects conflicting claims.
func (n *Node) ParamChild() *Node {
	for _, key := range n.ChildKeys() {
		if child := n.Children[key]; child.Param {
			return child
		}
	}
	return nil
}

// WalkNodes visits n and every descendant in sorted depth-first order.
func (n *Node) WalkNodes(visit func(*Node)) {
	visit(n)
	for _, key := range n.ChildKeys() {
		n.Children[key].WalkNodes(visit)
	}
}
