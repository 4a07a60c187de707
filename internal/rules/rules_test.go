package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	r := Default()
	require.NoError(t, r.Validate())

	assert.Equal(t, "complaint", r.Categories[0].Type)
	assert.Equal(t, "suggestion", r.Categories[1].Type)
	assert.Equal(t, "praise", r.Categories[2].Type)
	assert.Equal(t, "product_x", r.Products[0].Name)
	assert.NotEmpty(t, r.Urgency.High)
	assert.NotEmpty(t, r.Routing.BillingPattern)
}

func TestLoadFile_PartialOverrideFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `
products:
  - name: widget
    keywords: ["widget", "wdgt"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r, err := LoadFile(path)
	require.NoError(t, err)

	// Overridden section.
	require.Len(t, r.Products, 1)
	assert.Equal(t, "widget", r.Products[0].Name)

	// Untouched sections keep defaults.
	def := Default()
	assert.Equal(t, def.Categories, r.Categories)
	assert.Equal(t, def.Urgency, r.Urgency)
	assert.Equal(t, def.Routing, r.Routing)
}

func TestLoadFile_InvalidPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `
categories:
  - type: complaint
    patterns: ["[unclosed"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "category complaint")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
