package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/RealZimboGuy/relvalmatrix/internal/catalog"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListWorkflows(t *testing.T) {
	out, err := run(t, "list", "workflows")
	require.NoError(t, err)
	assert.Contains(t, out, "507")
	assert.Contains(t, out, "HARVESTGEN")
}

func TestListNumbers_Year(t *testing.T) {
	out, err := run(t, "list", "numbers", "--year", "2017")
	require.NoError(t, err)
	assert.Contains(t, out, "10000")
	assert.NotContains(t, out, "20000")
}

func TestListUnknownYear(t *testing.T) {
	_, err := run(t, "list", "scenarios", "--year", "1999")
	assert.Error(t, err)
}

func TestListUnknownTable(t *testing.T) {
	_, err := run(t, "list", "detectors")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog ok")
}

func TestExportJSON(t *testing.T) {
	out, err := run(t, "export", "--expanded")
	require.NoError(t, err)

	var doc catalog.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, catalog.Default().Workflows.Len(), len(doc.Workflows))
	assert.NotEmpty(t, doc.Upgrade)
}

func TestExportYAML(t *testing.T) {
	out, err := run(t, "export", "--format", "yaml")
	require.NoError(t, err)

	var doc catalog.Document
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 200, doc.Skip)
	assert.Empty(t, doc.Upgrade)
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := run(t, "export", "--format", "toml")
	assert.Error(t, err)
}
