// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvegen/pvegen/pkg/types"
)

func familyEndpoint(params ...types.Parameter) []*types.Endpoint {
	return []*types.Endpoint{{
		Path: "/nodes/{node}/qemu/{vmid}/config",
		Text: "config",
		Leaf: true,
		Methods: []types.Method{{
			Verb:       "PUT",
			Name:       "update_vm",
			Parameters: params,
		}},
	}}
}

func paramNames(params []types.Parameter) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

func TestExpander_Expand_DescriptionBound(t *testing.T) {
	var warns types.Warnings
	endpoints := familyEndpoint(types.Parameter{
		Name:        "link[n]",
		Type:        "string",
		Description: "Network link (0 to 6).",
		Optional:    true,
	})

	NewExpander(0, &warns).Expand(endpoints)

	params := endpoints[0].Methods[0].Parameters
	assert.Equal(t, []string{
		"link0", "link1", "link2", "link3", "link4", "link5", "link6",
	}, paramNames(params))
	assert.Zero(t, warns.Len())

	for _, p := range params {
		assert.Equal(t, "string", p.Type)
		assert.True(t, p.Optional)
		assert.Equal(t, "Network link (0 to 6).", p.Description)
	}
}

func TestExpander_Expand_ExplicitDigits(t *testing.T) {
	var warns types.Warnings
	endpoints := familyEndpoint(types.Parameter{
		Name: "hostpci[4]",
		Type: "string",
	})

	NewExpander(0, &warns).Expand(endpoints)

	assert.Equal(t, []string{
		"hostpci0", "hostpci1", "hostpci2", "hostpci3",
	}, paramNames(endpoints[0].Methods[0].Parameters))
	assert.Zero(t, warns.Len())
}

func TestExpander_Expand_DefaultBoundWarns(t *testing.T) {
	var warns types.Warnings
	endpoints := familyEndpoint(types.Parameter{
		Name:        "serial[n]",
		Type:        "string",
		Description: "Serial device.",
	})

	NewExpander(0, &warns).Expand(endpoints)

	params := endpoints[0].Methods[0].Parameters
	assert.Len(t, params, DefaultDynamicBound)
	assert.Equal(t, "serial0", params[0].Name)
	require.Equal(t, 1, warns.Len())
	assert.Contains(t, warns.All()[0].Message, "serial")
}

func TestExpander_Expand_NonClobber(t *testing.T) {
	var warns types.Warnings
	concrete := types.Parameter{
		Name:        "link3",
		Type:        "string",
		Description: "Hand-tuned third link.",
	}
	endpoints := familyEndpoint(
		concrete,
		types.Parameter{
			Name:        "link[n]",
			Type:        "string",
			Description: "Network link (0 to 6).",
		},
	)

	NewExpander(0, &warns).Expand(endpoints)

	params := endpoints[0].Methods[0].Parameters
	assert.Equal(t, []string{
		"link3", "link0", "link1", "link2", "link4", "link5", "link6",
	}, paramNames(params))

	// The concrete declaration keeps its own description; no warning.
	assert.Equal(t, "Hand-tuned third link.", params[0].Description)
	assert.Zero(t, warns.Len())
}

func TestExpander_Expand_OverlappingTemplates(t *testing.T) {
	var warns types.Warnings
	endpoints := familyEndpoint(
		types.Parameter{
			Name:        "link[n]",
			Type:        "string",
			Description: "Network link (0 to 6).",
		},
		types.Parameter{
			Name:        "link[3]",
			Type:        "string",
			Description: "Legacy link range.",
		},
	)

	NewExpander(0, &warns).Expand(endpoints)

	// The second template synthesizes nothing the first already did;
	// every member appears exactly once, keeping the first template's
	// attributes.
	params := endpoints[0].Methods[0].Parameters
	assert.Equal(t, []string{
		"link0", "link1", "link2", "link3", "link4", "link5", "link6",
	}, paramNames(params))
	for _, p := range params {
		assert.Equal(t, "Network link (0 to 6).", p.Description)
	}
}

func TestExpander_Expand_IndependentFamilies(t *testing.T) {
	var warns types.Warnings
	endpoints := familyEndpoint(
		types.Parameter{Name: "net[2]", Type: "string"},
		types.Parameter{Name: "memory", Type: "integer"},
		types.Parameter{Name: "scsi[3]", Type: "string"},
	)

	NewExpander(0, &warns).Expand(endpoints)

	assert.Equal(t, []string{
		"net0", "net1", "memory", "scsi0", "scsi1", "scsi2",
	}, paramNames(endpoints[0].Methods[0].Parameters))
}

func TestExpander_Expand_ConfiguredBound(t *testing.T) {
	var warns types.Warnings
	endpoints := familyEndpoint(types.Parameter{Name: "usb[n]", Type: "string"})

	NewExpander(3, &warns).Expand(endpoints)

	assert.Equal(t, []string{"usb0", "usb1", "usb2"},
		paramNames(endpoints[0].Methods[0].Parameters))
}

func TestExpander_Expand_NoTemplatesUntouched(t *testing.T) {
	var warns types.Warnings
	original := []types.Parameter{
		{Name: "node", Type: "string"},
		{Name: "vmid", Type: "integer"},
	}
	endpoints := familyEndpoint(original...)

	NewExpander(0, &warns).Expand(endpoints)

	assert.Equal(t, []string{"node", "vmid"},
		paramNames(endpoints[0].Methods[0].Parameters))
}
