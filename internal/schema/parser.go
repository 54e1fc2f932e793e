// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package schema

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/pvegen/pvegen/pkg/types"
)

var (
	pathParamPattern = regexp.MustCompile(`\{(\w+)\}`)

	// Parameter names follow the schema's identifier rules; a trailing
	// [n] or [digits] marks a dynamic family template, which is legal
	// until expansion replaces it.
	paramNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*(\[(n|\d+)\])?$`)
)

// Parser turns the raw schema document into the Endpoint IR. It is
// deterministic: the same bytes always yield the same IR, the same
// warnings, or the same error.
type Parser struct {
	// Warns collects undeclared-path-parameter notices.
	Warns *types.Warnings
}

// NewParser returns a Parser recording warnings into warns.
func NewParser(warns *types.Warnings) *Parser {
	return &Parser{Warns: warns}
}

// Parse decodes and validates the raw schema document. The document is
// a JSON array of endpoint nodes. Structural violations are fatal and
// reported as a *types.SchemaError.
func (p *Parser) Parse(data []byte) ([]*types.Endpoint, error) {
	var nodes []rawNode
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("decoding schema document: %w", err)
	}

	endpoints := make([]*types.Endpoint, 0, len(nodes))
	for _, node := range nodes {
		ep, err := p.parseNode(node)
		if err != nil {
			return nil, err
		}
		endpoints = append(endpoints, ep)
	}
	return endpoints, nil
}

func (p *Parser) parseNode(node rawNode) (*types.Endpoint, error) {
	ep := &types.Endpoint{
		Path: node.Path,
		Text: node.Text,
		Leaf: bool(node.Leaf),
	}

	for _, match := range pathParamPattern.FindAllStringSubmatch(node.Path, -1) {
		ep.PathParams = append(ep.PathParams, match[1])
	}

	// Verbs iterate in canonical order so parsing is deterministic
	// regardless of map order.
	for _, verb := range sortedVerbs(node.Info) {
		if !types.IsVerb(verb) {
			return nil, &types.SchemaError{
				Path:    node.Path,
				Method:  verb,
				Message: "unsupported HTTP verb",
			}
		}
		method, err := p.parseMethod(node.Path, verb, node.Info[verb])
		if err != nil {
			return nil, err
		}

		// Real schema dumps omit path-placeholder declarations on some
		// methods. The tree builder derives the accessor argument from
		// the segment, so an undeclared token only warns.
		for _, pathParam := range ep.PathParams {
			if !hasParameter(method.Parameters, pathParam) && p.Warns != nil {
				p.Warns.Add("parse", node.Path,
					"path parameter %s not declared on %s, deriving a string argument",
					pathParam, verb)
			}
		}

		ep.Methods = append(ep.Methods, method)
	}

	for _, child := range node.Children {
		childEP, err := p.parseNode(child)
		if err != nil {
			return nil, err
		}
		ep.Children = append(ep.Children, childEP)
	}
	return ep, nil
}

func (p *Parser) parseMethod(path, verb string, raw rawMethod) (types.Method, error) {
	method := types.Method{
		Verb:        verb,
		Name:        raw.Name,
		Description: raw.Description,
		Protected:   bool(raw.Protected),
		ProxyTo:     raw.ProxyTo,
	}

	if raw.Parameters != nil && len(raw.Parameters.Properties) > 0 {
		params, err := p.parseProperties(path, verb, raw.Parameters.Properties)
		if err != nil {
			return types.Method{}, err
		}
		method.Parameters = params
	}

	if len(raw.Returns) > 0 && string(raw.Returns) != "null" {
		var ret rawReturns
		if err := json.Unmarshal(raw.Returns, &ret); err != nil {
			return types.Method{}, &types.SchemaError{
				Path:    path,
				Method:  verb,
				Message: fmt.Sprintf("invalid returns declaration: %v", err),
			}
		}
		if ret.Type == "" {
			ret.Type = "object"
		}
		method.Returns = &types.Response{Type: ret.Type, Description: ret.Description}
	}
	return method, nil
}

// parseProperties decodes a raw properties object into parameters,
// preserving source member order. A duplicate member name is fatal.
func (p *Parser) parseProperties(path, verb string, raw json.RawMessage) ([]types.Parameter, error) {
	keys, err := objectKeys(raw)
	if err != nil {
		return nil, &types.SchemaError{
			Path:    path,
			Method:  verb,
			Message: fmt.Sprintf("invalid parameters object: %v", err),
		}
	}

	var props map[string]rawProperty
	if err := json.Unmarshal(raw, &props); err != nil {
		return nil, &types.SchemaError{
			Path:    path,
			Method:  verb,
			Message: fmt.Sprintf("invalid parameters object: %v", err),
		}
	}

	params := make([]types.Parameter, 0, len(keys))
	for _, name := range keys {
		param, err := p.parseParameter(path, verb, name, props[name])
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	return params, nil
}

func (p *Parser) parseParameter(path, verb, name string, prop rawProperty) (types.Parameter, error) {
	if !paramNamePattern.MatchString(name) {
		return types.Parameter{}, &types.SchemaError{
			Path:    path,
			Method:  verb,
			Param:   name,
			Message: "invalid parameter name",
		}
	}

	param := types.Parameter{
		Name:        name,
		Type:        prop.Type,
		Description: prop.Description,
		Optional:    bool(prop.Optional),
		Default:     prop.Default,
		Minimum:     prop.Minimum,
		Maximum:     prop.Maximum,
		MinLength:   prop.MinLength,
		MaxLength:   prop.MaxLength,
		Pattern:     prop.Pattern,
	}
	if param.Type == "" {
		param.Type = "string"
	}

	if param.Minimum != nil && param.Maximum != nil && *param.Minimum > *param.Maximum {
		return types.Parameter{}, &types.SchemaError{
			Path:    path,
			Method:  verb,
			Param:   name,
			Message: fmt.Sprintf("minimum %v exceeds maximum %v", *param.Minimum, *param.Maximum),
		}
	}

	// A declared-but-empty enum stays distinguishable from no enum:
	// the mapper warns on it and falls back to the base type.
	if prop.Enum != nil {
		param.Enum = make([]string, 0, len(prop.Enum))
		for _, value := range prop.Enum {
			param.Enum = append(param.Enum, fmt.Sprint(value))
		}
	}

	if len(prop.Format) > 0 {
		format, err := p.parseFormat(path, verb, name, prop.Format)
		if err != nil {
			return types.Parameter{}, err
		}
		param.Format = format
	}

	if len(prop.Items) > 0 {
		var itemProp rawProperty
		if err := json.Unmarshal(prop.Items, &itemProp); err != nil {
			return types.Parameter{}, &types.SchemaError{
				Path:    path,
				Method:  verb,
				Param:   name,
				Message: fmt.Sprintf("invalid items declaration: %v", err),
			}
		}
		item, err := p.parseParameter(path, verb, name, itemProp)
		if err != nil {
			return types.Parameter{}, err
		}
		param.Items = &item
	}

	if len(prop.Properties) > 0 {
		nested, err := p.parseProperties(path, verb, prop.Properties)
		if err != nil {
			return types.Parameter{}, err
		}
		param.Properties = nested
	}

	return param, nil
}

// parseFormat handles the format field's two encodings: a format-name
// string, or an inline sub-schema object which is itself a fully valid
// parameter group.
func (p *Parser) parseFormat(path, verb, name string, raw json.RawMessage) (types.Format, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, `"`) {
		var formatName string
		if err := json.Unmarshal(raw, &formatName); err != nil {
			return types.Format{}, &types.SchemaError{
				Path:    path,
				Method:  verb,
				Param:   name,
				Message: fmt.Sprintf("invalid format declaration: %v", err),
			}
		}
		return types.Format{Name: formatName}, nil
	}

	nested, err := p.parseProperties(path, verb, raw)
	if err != nil {
		return types.Format{}, err
	}
	return types.Format{Nested: nested}, nil
}

func hasParameter(params []types.Parameter, name string) bool {
	for _, param := range params {
		if param.Name == name {
			return true
		}
	}
	return false
}

// sortedVerbs returns the method map's keys in canonical verb order,
// with any unknown keys appended alphabetically so they still surface
// as errors deterministically.
func sortedVerbs(info map[string]rawMethod) []string {
	var verbs []string
	for _, verb := range types.Verbs {
		if _, ok := info[verb]; ok {
			verbs = append(verbs, verb)
		}
	}
	var unknown []string
	for key := range info {
		if !types.IsVerb(key) {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return append(verbs, unknown...)
}
