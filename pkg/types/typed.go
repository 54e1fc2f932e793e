// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package types

// ConstraintKind classifies validation constraints on a mapped parameter.
type ConstraintKind string

const (
	// ConstraintRange is an inclusive numeric range bound.
	ConstraintRange ConstraintKind = "range"

	// ConstraintLength is a string length bound.
	ConstraintLength ConstraintKind = "length"

	// ConstraintPattern is a regular expression constraint.
	ConstraintPattern ConstraintKind = "pattern"

	// ConstraintEnum is a closed-value-set constraint.
	ConstraintEnum ConstraintKind = "enum"

	// ConstraintFormat is an implicit constraint carried by a known
	// format identifier (e.g., "ipv4" values must parse as IPv4).
	ConstraintFormat ConstraintKind = "format"
)

// Constraint is one validation rule attached to a mapped parameter.
// Only the fields relevant to Kind are set.
type Constraint struct {
	// Kind is the constraint category
	Kind ConstraintKind `json:"kind" yaml:"kind"`

	// Min is the inclusive numeric lower bound (range)
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`

	// Max is the inclusive numeric upper bound (range)
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`

	// MinLen is the minimum string length (length)
	MinLen *int `json:"minLen,omitempty" yaml:"minLen,omitempty"`

	// MaxLen is the maximum string length (length)
	MaxLen *int `json:"maxLen,omitempty" yaml:"maxLen,omitempty"`

	// Pattern is the regular expression source (pattern)
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// Values is the allowed value set (enum)
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`

	// Format is the format identifier (format)
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// TypedParam is the output of constraint/type mapping: the source
// parameter plus its target Go type and ordered constraint list.
type TypedParam struct {
	Parameter

	// GoName is the exported Go field name
	GoName string `json:"goName" yaml:"goName"`

	// GoType is the target Go type (e.g., "string", "int64", "[]string").
	// Empty for composite parameters, whose shape is carried by Fields.
	GoType string `json:"goType,omitempty" yaml:"goType,omitempty"`

	// Constraints are the mapped validation rules in fixed kind order
	// (range, length, pattern, enum, format)
	Constraints []Constraint `json:"constraints,omitempty" yaml:"constraints,omitempty"`

	// Fields holds the mapped sub-parameters of a composite (nested
	// format or object) parameter
	Fields []TypedParam `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// IsComposite reports whether the parameter maps to an inline struct type.
func (t TypedParam) IsComposite() bool {
	return len(t.Fields) > 0
}

// EnumValues returns the closed value set of the enum constraint, or nil.
func (t TypedParam) EnumValues() []string {
	for _, c := range t.Constraints {
		if c.Kind == ConstraintEnum {
			return c.Values
		}
	}
	return nil
}

// ParameterSet is a deduplicated, reusable group of mapped parameters.
// Two sets with equal Hash are the same set.
type ParameterSet struct {
	// Name is the stable generated model name
	Name string `json:"name" yaml:"name"`

	// Hash is the canonical content hash over (name, Go type, constraints)
	// tuples; descriptions never contribute
	Hash string `json:"hash" yaml:"hash"`

	// Params are the member parameters in source order
	Params []TypedParam `json:"params" yaml:"params"`

	// UsedBy lists consuming "<path> <verb>" pairs in first-seen order
	UsedBy []string `json:"usedBy,omitempty" yaml:"usedBy,omitempty"`
}
