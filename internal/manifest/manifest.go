// Package manifest loads import manifests, which declare catalog imports in a
// file instead of on the command line. YAML and TOML are supported; the
// format is detected from the file extension.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arquati/catimport/internal/catalog"
)

// Manifest declares a set of catalog imports plus optional brand and output
// root overrides.
type Manifest struct {
	// Brand is the vendor slug used for the output file names. Optional;
	// the --brand flag wins when given explicitly.
	Brand string `yaml:"brand" toml:"brand"`

	// OutRoot is the output root directory. Optional, same precedence as
	// Brand.
	OutRoot string `yaml:"out_root" toml:"out_root"`

	// Catalogs maps catalog names to CSV file paths.
	Catalogs map[string]string `yaml:"catalogs" toml:"catalogs"`
}

// Format identifies a supported manifest encoding.
type Format int

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatTOML
)

// DetectFormat returns the manifest format implied by the file extension.
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml", ".tml":
		return FormatTOML
	default:
		return FormatUnknown
	}
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	switch DetectFormat(path) {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format for %s (expected .yaml, .yml, .toml or .tml)", path)
	}

	for name, csvPath := range m.Catalogs {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("manifest %s: empty catalog name", path)
		}
		if strings.TrimSpace(csvPath) == "" {
			return nil, fmt.Errorf("manifest %s: empty CSV path for catalog %q", path, name)
		}
	}

	return &m, nil
}

// Imports returns the manifest's catalog imports sorted by catalog name, so
// processing order is stable regardless of map iteration order.
func (m *Manifest) Imports() []catalog.CatalogImport {
	names := make([]string, 0, len(m.Catalogs))
	for name := range m.Catalogs {
		names = append(names, name)
	}
	sort.Strings(names)

	imports := make([]catalog.CatalogImport, 0, len(names))
	for _, name := range names {
		imports = append(imports, catalog.CatalogImport{
			Catalog: strings.TrimSpace(name),
			CSVPath: strings.TrimSpace(m.Catalogs[name]),
		})
	}
	return imports
}
