package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spprichard/Generics-Medium-Article/internal/metrics"
	"github.com/spprichard/Generics-Medium-Article/internal/models"
)

// runCLI executes the root command in an isolated environment and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SPECFILTER_LOGGING_LEVEL", "error")
	cfg = nil

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestBuildSpec(t *testing.T) {
	frog := models.NewProduct("Frog", models.ColorGreen, models.SizeSmall)
	tree := models.NewProduct("Tree", models.ColorGreen, models.SizeLarge)
	strawberry := models.NewProduct("Strawberry", models.ColorRed, models.SizeSmall)

	tests := []struct {
		name        string
		color, size string
		want        map[string]bool
	}{
		{"no criteria", "", "", map[string]bool{"Frog": true, "Tree": true, "Strawberry": true}},
		{"color only", "green", "", map[string]bool{"Frog": true, "Tree": true, "Strawberry": false}},
		{"size only", "", "small", map[string]bool{"Frog": true, "Tree": false, "Strawberry": true}},
		{"color and size", "red", "small", map[string]bool{"Frog": false, "Tree": false, "Strawberry": true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := buildSpec(tt.color, tt.size)
			require.NoError(t, err)
			for _, p := range []models.Product{frog, tree, strawberry} {
				assert.Equal(t, tt.want[p.Name()], s.IsSatisfied(p), p.Name())
			}
		})
	}
}

func TestBuildSpec_InvalidInput(t *testing.T) {
	_, err := buildSpec("purple", "")
	assert.ErrorIs(t, err, models.ErrUnknownColor)

	_, err = buildSpec("red", "tiny")
	assert.ErrorIs(t, err, models.ErrUnknownSize)
}

func TestListCmd(t *testing.T) {
	out, err := runCLI(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "large green Tree\nsmall green Frog\nsmall red Strawberry\n", out)
}

func TestFilterCmd_Text(t *testing.T) {
	before := metrics.FilterTotal.Value()

	out, err := runCLI(t, "filter", "--size", "small")
	require.NoError(t, err)
	assert.Equal(t, "small green Frog\nsmall red Strawberry\n", out)
	assert.Equal(t, before+1, metrics.FilterTotal.Value())

	out, err = runCLI(t, "filter", "--color", "red", "--size", "small")
	require.NoError(t, err)
	assert.Equal(t, "small red Strawberry\n", out)
}

func TestFilterCmd_NoMatches(t *testing.T) {
	out, err := runCLI(t, "filter", "--color", "blue")
	require.NoError(t, err)
	assert.Equal(t, "No products found.\n", out)
}

func TestFilterCmd_JSON(t *testing.T) {
	out, err := runCLI(t, "--output", "json", "filter", "--color", "green")
	require.NoError(t, err)

	var got []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []map[string]string{
		{"name": "Tree", "color": "green", "size": "large"},
		{"name": "Frog", "color": "green", "size": "small"},
	}, got)
}

func TestFilterCmd_JSONEmptyIsArray(t *testing.T) {
	out, err := runCLI(t, "--output", "json", "filter", "--color", "blue")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestFilterCmd_InvalidColor(t *testing.T) {
	_, err := runCLI(t, "filter", "--color", "purple")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnknownColor)
}

func TestFilterCmd_InvalidOutput(t *testing.T) {
	_, err := runCLI(t, "--output", "xml", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
}

func TestFilterCmd_CatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := "products:\n  - {name: Sky, color: blue, size: large}\n  - {name: Berry, color: blue, size: small}\n  - {name: Rose, color: red, size: small}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, err := runCLI(t, "--catalog", path, "filter", "--color", "blue", "--size", "small")
	require.NoError(t, err)
	assert.Equal(t, "small blue Berry\n", out)
}

func TestFilterCmd_MissingCatalog(t *testing.T) {
	_, err := runCLI(t, "--catalog", filepath.Join(t.TempDir(), "missing.yaml"), "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDemoCmd(t *testing.T) {
	out, err := runCLI(t, "demo")
	require.NoError(t, err)
	want := "Small products:\n" +
		"small green Frog\n" +
		"small red Strawberry\n" +
		"\n" +
		"Red and small products:\n" +
		"small red Strawberry\n"
	assert.Equal(t, want, out)
}

func TestOutputFlagOverridesEnv(t *testing.T) {
	t.Setenv("SPECFILTER_OUTPUT_FORMAT", "xml")

	out, err := runCLI(t, "--output", "text", "list")
	require.NoError(t, err)
	assert.Equal(t, "large green Tree\nsmall green Frog\nsmall red Strawberry\n", out)
}

func TestCatalogFlagOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products:\n  - {name: Sky, color: blue, size: large}\n"), 0o600))
	t.Setenv("SPECFILTER_CATALOG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	out, err := runCLI(t, "--catalog", path, "list")
	require.NoError(t, err)
	assert.Equal(t, "large blue Sky\n", out)
}

func TestDemoCmd_JSON(t *testing.T) {
	out, err := runCLI(t, "--output", "json", "demo")
	require.NoError(t, err)

	var got []struct {
		Title    string              `json:"title"`
		Products []map[string]string `json:"products"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "Small products", got[0].Title)
	assert.Equal(t, []map[string]string{
		{"name": "Frog", "color": "green", "size": "small"},
		{"name": "Strawberry", "color": "red", "size": "small"},
	}, got[0].Products)

	assert.Equal(t, "Red and small products", got[1].Title)
	assert.Equal(t, []map[string]string{
		{"name": "Strawberry", "color": "red", "size": "small"},
	}, got[1].Products)
}

func TestDemoCmd_UsesSampleCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products:\n  - {name: Pebble, color: red, size: small}\n"), 0o600))

	out, err := runCLI(t, "--catalog", path, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "small red Strawberry")
	assert.NotContains(t, out, "Pebble")
}
