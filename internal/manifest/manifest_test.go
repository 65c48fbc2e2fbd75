package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arquati/catimport/internal/catalog"
	"github.com/arquati/catimport/internal/manifest"
)

func writeManifest(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, manifest.FormatYAML, manifest.DetectFormat("catalogs.yaml"))
	assert.Equal(t, manifest.FormatYAML, manifest.DetectFormat("catalogs.YML"))
	assert.Equal(t, manifest.FormatTOML, manifest.DetectFormat("catalogs.toml"))
	assert.Equal(t, manifest.FormatTOML, manifest.DetectFormat("catalogs.tml"))
	assert.Equal(t, manifest.FormatUnknown, manifest.DetectFormat("catalogs.json"))
	assert.Equal(t, manifest.FormatUnknown, manifest.DetectFormat("catalogs"))
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "catalogs.yaml", `
brand: arquati
out_root: api/public/catalog
catalogs:
  sistema-ibrido: ./catalog_csv/sistema-ibrido.csv
  pompa-calore: ./catalog_csv/pompa-calore.csv
`)

	m, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "arquati", m.Brand)
	assert.Equal(t, "api/public/catalog", m.OutRoot)
	assert.Len(t, m.Catalogs, 2)
}

func TestLoadTOML(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "catalogs.toml", `
brand = "demo"

[catalogs]
pompe = "./pompe.csv"
`)

	m, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", m.Brand)
	assert.Empty(t, m.OutRoot)
	assert.Equal(t, "./pompe.csv", m.Catalogs["pompe"])
}

func TestLoadUnknownFormat(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "catalogs.json", `{}`)
	_, err := manifest.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported manifest format")
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := manifest.Load(filepath.Join(t.TempDir(), "mancante.yaml"))
	assert.Error(t, err)
}

func TestLoadEmptyCSVPath(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "catalogs.yaml", `
catalogs:
  pompe: "  "
`)
	_, err := manifest.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty CSV path")
}

func TestImportsSorted(t *testing.T) {
	t.Parallel()

	m := &manifest.Manifest{Catalogs: map[string]string{
		"zanzariere":     "./z.csv",
		"avvolgibili":    "./a.csv",
		"pompa-calore":   "./p.csv",
		"sistema-ibrido": "./s.csv",
	}}

	assert.Equal(t, []catalog.CatalogImport{
		{Catalog: "avvolgibili", CSVPath: "./a.csv"},
		{Catalog: "pompa-calore", CSVPath: "./p.csv"},
		{Catalog: "sistema-ibrido", CSVPath: "./s.csv"},
		{Catalog: "zanzariere", CSVPath: "./z.csv"},
	}, m.Imports())
}
