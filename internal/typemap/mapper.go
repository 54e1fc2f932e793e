// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package typemap

import (
	"github.com/pvegen/pvegen/internal/util"
	"github.com/pvegen/pvegen/pkg/types"
)

// Mapper converts parsed parameters to typed parameters. Mapping is
// total: every (type, format) pair yields a Go type, falling back to
// the declared base type with a warning for unknown formats.
type Mapper struct {
	// Warns collects unknown-format and empty-enum notices.
	Warns *types.Warnings
}

// NewMapper returns a Mapper recording warnings into warns.
func NewMapper(warns *types.Warnings) *Mapper {
	return &Mapper{Warns: warns}
}

// MapAll maps a parameter list, preserving order.
func (m *Mapper) MapAll(path string, params []types.Parameter) []types.TypedParam {
	if len(params) == 0 {
		return nil
	}
	typed := make([]types.TypedParam, len(params))
	for i, param := range params {
		typed[i] = m.Map(path, param)
	}
	return typed
}

// Map maps one parameter. Constraints are emitted in fixed kind order
// (range, length, pattern, enum, format) so downstream hashing and
// emission are stable.
func (m *Mapper) Map(path string, param types.Parameter) types.TypedParam {
	typed := types.TypedParam{
		Parameter: param,
		GoName:    util.ExportedName(param.Name),
	}

	// An inline sub-schema maps to a composite struct type; its own
	// members go through the mapper recursively.
	if param.Format.IsNested() {
		typed.Fields = m.MapAll(path, param.Format.Nested)
		typed.Constraints = m.constraints(path, param, "")
		return typed
	}

	typed.GoType = m.goType(path, param)
	typed.Constraints = m.constraints(path, param, typed.GoType)
	return typed
}

func (m *Mapper) goType(path string, param types.Parameter) string {
	if param.Format.Name != "" {
		if entry, ok := formatTable[param.Format.Name]; ok {
			return entry.GoType
		}
		if m.Warns != nil {
			m.Warns.Add("typemap", path,
				"unknown format %q on parameter %s, using declared type %s",
				param.Format.Name, param.Name, param.Type)
		}
	}
	return m.baseType(path, param)
}

func (m *Mapper) baseType(path string, param types.Parameter) string {
	switch param.Type {
	case "string":
		return "string"
	case "integer":
		return "int64"
	case "number":
		return "float64"
	case "boolean":
		return "bool"
	case "array":
		if param.Items != nil {
			item := m.Map(path, *param.Items)
			if item.GoType != "" {
				return "[]" + item.GoType
			}
		}
		return "[]string"
	case "object":
		return "map[string]any"
	case "null":
		return "any"
	default:
		if m.Warns != nil {
			m.Warns.Add("typemap", path,
				"unknown declared type %q on parameter %s, using string",
				param.Type, param.Name)
		}
		return "string"
	}
}

func (m *Mapper) constraints(path string, param types.Parameter, goType string) []types.Constraint {
	var constraints []types.Constraint

	if param.Minimum != nil || param.Maximum != nil {
		constraints = append(constraints, types.Constraint{
			Kind: types.ConstraintRange,
			Min:  param.Minimum,
			Max:  param.Maximum,
		})
	}
	if param.MinLength != nil || param.MaxLength != nil {
		constraints = append(constraints, types.Constraint{
			Kind:   types.ConstraintLength,
			MinLen: param.MinLength,
			MaxLen: param.MaxLength,
		})
	}
	if param.Pattern != "" {
		constraints = append(constraints, types.Constraint{
			Kind:    types.ConstraintPattern,
			Pattern: param.Pattern,
		})
	}
	if param.Enum != nil {
		if len(param.Enum) > 0 {
			constraints = append(constraints, types.Constraint{
				Kind:   types.ConstraintEnum,
				Values: param.Enum,
			})
		} else if m.Warns != nil {
			m.Warns.Add("typemap", path,
				"empty enum on parameter %s, using %s", param.Name, goType)
		}
	}
	if name := param.Format.Name; name != "" && KnownFormat(name) {
		constraints = append(constraints, types.Constraint{
			Kind:   types.ConstraintFormat,
			Format: name,
		})
	}
	return constraints
}
