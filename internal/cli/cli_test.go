// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs a command and returns output and error.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	// Cobra keeps flag values on the shared command between Execute calls;
	// clear the help flag so an earlier --help run doesn't leak into this one.
	if f := root.Flags().Lookup("help"); f != nil {
		_ = f.Value.Set("false")
		f.Changed = false
	}

	err := root.Execute()
	return buf.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	output, err := executeCommand(rootCmd, "--help")
	require.NoError(t, err)

	assert.Contains(t, output, "pvegen")
	assert.Contains(t, output, "Available Commands")
	assert.Contains(t, output, "generate")
	assert.Contains(t, output, "fetch")
	assert.Contains(t, output, "analyze")
	assert.Contains(t, output, "init")
	assert.Contains(t, output, "watch")
	assert.Contains(t, output, "version")
}

func TestVersionCommand(t *testing.T) {
	output, err := executeCommand(rootCmd, "version")
	require.NoError(t, err)

	assert.Contains(t, output, "pvegen")
	assert.Contains(t, output, "commit:")
	assert.Contains(t, output, "go:")
}

func TestRootCommand_VersionFlag(t *testing.T) {
	output, err := executeCommand(rootCmd, "--version")
	require.NoError(t, err)

	assert.Contains(t, output, "pvegen")
	assert.Contains(t, output, "commit:")
}

func TestInitCommand_CreatesConfig(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(originalDir)
	require.NoError(t, os.Chdir(tmpDir))

	_, err = executeCommand(rootCmd, "init", "--quiet")
	require.NoError(t, err)

	content, err := os.ReadFile("pvegen.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(content), "schema:")
	assert.Contains(t, string(content), "dynamicBound: 7")

	// A second init without --force refuses to overwrite.
	_, err = executeCommand(rootCmd, "init", "--quiet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = executeCommand(rootCmd, "init", "--quiet", "--force")
	require.NoError(t, err)
}

const cliSchemaDocument = `[{
  "path": "/version",
  "text": "version",
  "leaf": 1,
  "info": {
    "GET": {
      "name": "version",
      "description": "API version details.",
      "returns": {"type": "object"}
    }
  }
}]`

func TestGenerateCommand_EndToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	schemaPath := filepath.Join(tmpDir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(cliSchemaDocument), 0o644))
	outDir := filepath.Join(tmpDir, "pveapi")

	_, err := executeCommand(rootCmd, "generate",
		"--quiet", "--schema", schemaPath, "--out", outDir)
	require.NoError(t, err)

	client, err := os.ReadFile(filepath.Join(outDir, "client.go"))
	require.NoError(t, err)
	assert.Contains(t, string(client), "func (c *Client) Version() *VersionEndpoint")

	_, err = os.Stat(filepath.Join(outDir, "version.go"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "models.go"))
	require.NoError(t, err)
}

func TestGenerateCommand_DryRun(t *testing.T) {
	tmpDir := t.TempDir()
	schemaPath := filepath.Join(tmpDir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(cliSchemaDocument), 0o644))
	outDir := filepath.Join(tmpDir, "pveapi")

	_, err := executeCommand(rootCmd, "generate",
		"--quiet", "--schema", schemaPath, "--out", outDir, "--dry-run")
	require.NoError(t, err)

	_, err = os.Stat(outDir)
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateCommand_MissingSchema(t *testing.T) {
	_, err := executeCommand(rootCmd, "generate",
		"--quiet", "--schema", filepath.Join(t.TempDir(), "nope.json"),
		"--out", t.TempDir())
	require.Error(t, err)
}

func TestAnalyzeCommand(t *testing.T) {
	tmpDir := t.TempDir()
	schemaPath := filepath.Join(tmpDir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(cliSchemaDocument), 0o644))

	// The report goes to stdout; success is what matters here.
	_, err := executeCommand(rootCmd, "analyze",
		"--quiet", "--schema", schemaPath, "--report-format", "yaml")
	require.NoError(t, err)
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.Contains(t, info, "pvegen")
	assert.Contains(t, info, "commit:")
}
