// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

// Package fetch retrieves the schema document and extracts the JSON
// payload out of its JavaScript wrapper.
package fetch

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// Extractor pulls the apiSchema JSON array out of apidata.js. The file
// is real JavaScript, so it is parsed with a JavaScript grammar rather
// than scanned with regular expressions.
type Extractor struct {
	parser *sitter.Parser
}

// NewExtractor returns an Extractor with a JavaScript parser.
func NewExtractor() *Extractor {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())
	return &Extractor{parser: parser}
}

// Extract locates `const apiSchema = [...]` in the JavaScript source
// and returns the raw bytes of the array literal.
func (e *Extractor) Extract(ctx context.Context, source []byte) ([]byte, error) {
	tree, err := e.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing JavaScript source: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parsing JavaScript source: no root node")
	}

	var payload []byte
	walk(root, func(node *sitter.Node) bool {
		if node.Type() != "variable_declarator" {
			return true
		}
		name := node.ChildByFieldName("name")
		value := node.ChildByFieldName("value")
		if name == nil || value == nil {
			return true
		}
		if name.Content(source) != "apiSchema" || value.Type() != "array" {
			return true
		}
		payload = source[value.StartByte():value.EndByte()]
		return false
	})

	if payload == nil {
		return nil, fmt.Errorf("no apiSchema array declaration found")
	}
	return payload, nil
}

// walk visits nodes depth-first until visit returns false.
func walk(node *sitter.Node, visit func(*sitter.Node) bool) bool {
	if !visit(node) {
		return false
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if !walk(node.Child(i), visit) {
			return false
		}
	}
	return true
}
