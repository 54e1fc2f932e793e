// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKeys_PreservesOrder(t *testing.T) {
	data := []byte(`{"zeta": 1, "alpha": {"x": [1, 2, {"y": true}]}, "mid": "s", "beta": null}`)

	keys, err := objectKeys(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid", "beta"}, keys)
}

func TestObjectKeys_Empty(t *testing.T) {
	keys, err := objectKeys([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestObjectKeys_DuplicateKey(t *testing.T) {
	_, err := objectKeys([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate key "a"`)
}

func TestObjectKeys_NotAnObject(t *testing.T) {
	_, err := objectKeys([]byte(`[1, 2, 3]`))
	require.Error(t, err)
}

func TestObjectKeys_DeepNesting(t *testing.T) {
	data := []byte(`{"outer": {"inner": {"deep": [{"k": "v"}, [], {}]}}, "tail": 0}`)

	keys, err := objectKeys(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "tail"}, keys)
}
