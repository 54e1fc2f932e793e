// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

// Package types provides the intermediate representation shared by all
// stages of the SDK generation pipeline.
package types

// Endpoint represents one API path with its methods and child endpoints.
type Endpoint struct {
	// Path is the full path template (e.g., "/nodes/{node}/qemu")
	Path string `json:"path" yaml:"path"`

	// Text is the final path segment (e.g., "qemu" or "{node}")
	Text string `json:"text" yaml:"text"`

	// Leaf indicates a terminal resource with no children
	Leaf bool `json:"leaf" yaml:"leaf"`

	// PathParams are the {name} tokens of Path in left-to-right order
	PathParams []string `json:"pathParams,omitempty" yaml:"pathParams,omitempty"`

	// Methods are the HTTP operations declared on this path, in verb order
	Methods []Method `json:"methods,omitempty" yaml:"methods,omitempty"`

	// Children are sub-endpoints nested under this path
	Children []*Endpoint `json:"children,omitempty" yaml:"children,omitempty"`
}

// Method represents one HTTP verb on an endpoint.
type Method struct {
	// Verb is the HTTP method (GET, POST, PUT, DELETE)
	Verb string `json:"verb" yaml:"verb"`

	// Name is the schema operation name (e.g., "update_vm")
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Description is the operation description from the schema
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Protected indicates the operation requires elevated privileges
	Protected bool `json:"protected,omitempty" yaml:"protected,omitempty"`

	// ProxyTo names the path parameter requests are proxied through, if any
	ProxyTo string `json:"proxyto,omitempty" yaml:"proxyto,omitempty"`

	// Parameters are the declared inputs in source document order
	Parameters []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`

	// Returns describes the response shape, if declared
	Returns *Response `json:"returns,omitempty" yaml:"returns,omitempty"`
}

// Response describes the declared response shape of a method.
type Response struct {
	// Type is the declared response type (object, array, string, null, ...)
	Type string `json:"type" yaml:"type"`

	// Description is the response description from the schema
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Parameter represents one declared input or output field.
type Parameter struct {
	// Name is the parameter name as declared in the schema
	Name string `json:"name" yaml:"name"`

	// Type is the declared base type (string, integer, number, boolean, array, object)
	Type string `json:"type" yaml:"type"`

	// Description is the parameter description from the schema
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Optional indicates the parameter may be omitted
	Optional bool `json:"optional,omitempty" yaml:"optional,omitempty"`

	// Default is the declared default value, if any
	Default any `json:"default,omitempty" yaml:"default,omitempty"`

	// Format is the value-level semantic type, simple or nested
	Format Format `json:"format,omitempty" yaml:"format,omitempty"`

	// Minimum is the inclusive numeric lower bound
	Minimum *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`

	// Maximum is the inclusive numeric upper bound
	Maximum *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`

	// MinLength is the minimum string length
	MinLength *int `json:"minLength,omitempty" yaml:"minLength,omitempty"`

	// MaxLength is the maximum string length
	MaxLength *int `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`

	// Pattern is a regex constraint on string values
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Enum is the closed set of allowed values
	Enum []string `json:"enum,omitempty" yaml:"enum,omitempty"`

	// Items describes array element schemas for array-typed parameters
	Items *Parameter `json:"items,omitempty" yaml:"items,omitempty"`

	// Properties describes the sub-fields of object-typed parameters,
	// in source document order
	Properties []Parameter `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Format is a value-level semantic type. It is a tagged variant: a simple
// named format identifier (Name set, Nested empty), or an inline sub-schema
// (Nested set) which is itself a fully valid parameter group.
type Format struct {
	// Name is the format identifier for simple formats (e.g., "pve-node", "ipv4")
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Nested holds the sub-schema parameters of a nested format,
	// in source document order
	Nested []Parameter `json:"nested,omitempty" yaml:"nested,omitempty"`
}

// IsNested reports whether the format is an inline sub-schema.
func (f Format) IsNested() bool {
	return len(f.Nested) > 0
}

// IsZero reports whether no format was declared.
func (f Format) IsZero() bool {
	return f.Name == "" && len(f.Nested) == 0
}

// Verbs is the supported HTTP verb set in canonical order. All verb
// iteration across the pipeline follows this order so that output is
// stable across runs.
var Verbs = []string{"GET", "POST", "PUT", "DELETE"}

// IsVerb reports whether v is a supported HTTP verb.
func IsVerb(v string) bool {
	for _, verb := range Verbs {
		if v == verb {
			return true
		}
	}
	return false
}

// Walk visits e and every descendant endpoint in depth-first order.
func (e *Endpoint) Walk(visit func(*Endpoint)) {
	visit(e)
	for _, child := range e.Children {
		child.Walk(visit)
	}
}

// Flatten returns all endpoints of the given forest in depth-first order.
func Flatten(endpoints []*Endpoint) []*Endpoint {
	var all []*Endpoint
	for _, ep := range endpoints {
		ep.Walk(func(e *Endpoint) {
			all = append(all, e)
		})
	}
	return all
}
