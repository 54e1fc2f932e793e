// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

// Package schema parses and normalizes the raw Proxmox API schema
// document into the intermediate representation.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// IntBool decodes the schema's 0/1 boolean flags. Some schema dumps
// also carry JSON true/false, so both encodings are accepted.
type IntBool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *IntBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "0", "false", `"0"`:
		*b = false
	case "1", "true", `"1"`:
		*b = true
	default:
		return fmt.Errorf("invalid boolean flag %q", data)
	}
	return nil
}

// rawNode is one node of the raw schema tree.
type rawNode struct {
	Path     string               `json:"path"`
	Text     string               `json:"text"`
	Leaf     IntBool              `json:"leaf"`
	Info     map[string]rawMethod `json:"info"`
	Children []rawNode            `json:"children"`
}

// rawMethod is one HTTP method entry of a node's info object.
type rawMethod struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Protected   IntBool         `json:"protected"`
	ProxyTo     string          `json:"proxyto"`
	Parameters  *rawParams      `json:"parameters"`
	Returns     json.RawMessage `json:"returns"`
}

// rawParams keeps the properties object raw so that member order can be
// recovered afterwards: Go maps lose it during decoding.
type rawParams struct {
	Type       string          `json:"type"`
	Properties json.RawMessage `json:"properties"`
}

// rawProperty is one parameter declaration. Format stays raw because it
// is either a format-name string or an inline sub-schema object.
type rawProperty struct {
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Optional    IntBool         `json:"optional"`
	Default     any             `json:"default"`
	Format      json.RawMessage `json:"format"`
	Minimum     *float64        `json:"minimum"`
	Maximum     *float64        `json:"maximum"`
	MinLength   *int            `json:"minLength"`
	MaxLength   *int            `json:"maxLength"`
	Pattern     string          `json:"pattern"`
	Enum        []any           `json:"enum"`
	Items       json.RawMessage `json:"items"`
	Properties  json.RawMessage `json:"properties"`
}

// rawReturns is the declared response shape of a method.
type rawReturns struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}
