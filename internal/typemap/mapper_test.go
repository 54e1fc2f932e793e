// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package typemap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvegen/pvegen/pkg/types"
)

func TestMapper_Map_BaseTypes(t *testing.T) {
	tests := []struct {
		declared string
		want     string
	}{
		{"string", "string"},
		{"integer", "int64"},
		{"number", "float64"},
		{"boolean", "bool"},
		{"object", "map[string]any"},
		{"null", "any"},
	}

	var warns types.Warnings
	mapper := NewMapper(&warns)
	for _, tt := range tests {
		typed := mapper.Map("/test", types.Parameter{Name: "p", Type: tt.declared})
		assert.Equal(t, tt.want, typed.GoType, "declared type %q", tt.declared)
	}
	assert.Zero(t, warns.Len())
}

func TestMapper_Map_NumberIntegerDistinct(t *testing.T) {
	mapper := NewMapper(nil)

	integer := mapper.Map("/test", types.Parameter{Name: "cores", Type: "integer"})
	number := mapper.Map("/test", types.Parameter{Name: "cpulimit", Type: "number"})
	assert.Equal(t, "int64", integer.GoType)
	assert.Equal(t, "float64", number.GoType)
}

func TestMapper_Map_KnownFormat(t *testing.T) {
	var warns types.Warnings
	mapper := NewMapper(&warns)

	typed := mapper.Map("/nodes", types.Parameter{
		Name:   "vmid",
		Type:   "integer",
		Format: types.Format{Name: "pve-vmid"},
	})
	assert.Equal(t, "int64", typed.GoType)
	require.Len(t, typed.Constraints, 1)
	assert.Equal(t, types.ConstraintFormat, typed.Constraints[0].Kind)
	assert.Equal(t, "pve-vmid", typed.Constraints[0].Format)
	assert.Zero(t, warns.Len())
}

func TestMapper_Map_FormatWithoutPattern(t *testing.T) {
	// ipv4 carries an implicit format constraint even when the schema
	// declares no pattern.
	mapper := NewMapper(nil)
	typed := mapper.Map("/nodes", types.Parameter{
		Name:   "address",
		Type:   "string",
		Format: types.Format{Name: "ipv4"},
	})
	require.Len(t, typed.Constraints, 1)
	assert.Equal(t, types.ConstraintFormat, typed.Constraints[0].Kind)
}

func TestMapper_Map_UnknownFormatFallsBack(t *testing.T) {
	var warns types.Warnings
	mapper := NewMapper(&warns)

	typed := mapper.Map("/nodes", types.Parameter{
		Name:   "weird",
		Type:   "integer",
		Format: types.Format{Name: "pve-made-up"},
	})
	assert.Equal(t, "int64", typed.GoType)
	assert.Empty(t, typed.Constraints)
	require.Equal(t, 1, warns.Len())
	assert.Contains(t, warns.All()[0].Message, "pve-made-up")
}

func TestMapper_Map_Totality(t *testing.T) {
	// Every (type, format) combination must map without failing.
	declaredTypes := []string{
		"string", "integer", "number", "boolean", "array", "object",
		"null", "bogus", "",
	}
	formats := []string{
		"", "pve-node", "pve-vmid", "pve-storage-id-list", "ipv4",
		"cidr", "mac-addr", "email", "uuid", "unknown-format",
	}

	for _, declared := range declaredTypes {
		for _, format := range formats {
			var warns types.Warnings
			mapper := NewMapper(&warns)
			typed := mapper.Map("/test", types.Parameter{
				Name:   "p",
				Type:   declared,
				Format: types.Format{Name: format},
			})
			label := fmt.Sprintf("type=%q format=%q", declared, format)
			assert.NotEmpty(t, typed.GoType, label)
			assert.Equal(t, "P", typed.GoName, label)
		}
	}
}

func TestMapper_Map_ConstraintOrder(t *testing.T) {
	minimum, maximum := float64(0), float64(100)
	maxLen := 40
	mapper := NewMapper(nil)

	typed := mapper.Map("/test", types.Parameter{
		Name:      "p",
		Type:      "string",
		Minimum:   &minimum,
		Maximum:   &maximum,
		MaxLength: &maxLen,
		Pattern:   `^[a-z]+$`,
		Enum:      []string{"a", "b"},
		Format:    types.Format{Name: "pve-node"},
	})

	kinds := make([]types.ConstraintKind, len(typed.Constraints))
	for i, c := range typed.Constraints {
		kinds[i] = c.Kind
	}
	assert.Equal(t, []types.ConstraintKind{
		types.ConstraintRange,
		types.ConstraintLength,
		types.ConstraintPattern,
		types.ConstraintEnum,
		types.ConstraintFormat,
	}, kinds)
}

func TestMapper_Map_EmptyEnumWarns(t *testing.T) {
	var warns types.Warnings
	mapper := NewMapper(&warns)

	typed := mapper.Map("/test", types.Parameter{
		Name: "mode",
		Type: "string",
		Enum: []string{},
	})
	assert.Equal(t, "string", typed.GoType)
	assert.Empty(t, typed.Constraints)
	require.Equal(t, 1, warns.Len())
	assert.Contains(t, warns.All()[0].Message, "empty enum")
}

func TestMapper_Map_NestedFormat(t *testing.T) {
	mapper := NewMapper(nil)

	typed := mapper.Map("/nodes", types.Parameter{
		Name: "net0",
		Type: "string",
		Format: types.Format{Nested: []types.Parameter{
			{Name: "model", Type: "string", Enum: []string{"virtio", "e1000"}},
			{Name: "bridge", Type: "string", Optional: true,
				Format: types.Format{Name: "pve-iface"}},
		}},
	})

	assert.True(t, typed.IsComposite())
	assert.Empty(t, typed.GoType)
	require.Len(t, typed.Fields, 2)
	assert.Equal(t, "Model", typed.Fields[0].GoName)
	assert.Equal(t, []string{"virtio", "e1000"}, typed.Fields[0].EnumValues())
	assert.Equal(t, "string", typed.Fields[1].GoType)
	assert.Equal(t, types.ConstraintFormat, typed.Fields[1].Constraints[0].Kind)
}

func TestMapper_Map_ArrayOfItems(t *testing.T) {
	mapper := NewMapper(nil)

	typed := mapper.Map("/test", types.Parameter{
		Name:  "command",
		Type:  "array",
		Items: &types.Parameter{Name: "command", Type: "string"},
	})
	assert.Equal(t, "[]string", typed.GoType)

	bare := mapper.Map("/test", types.Parameter{Name: "list", Type: "array"})
	assert.Equal(t, "[]string", bare.GoType)
}
