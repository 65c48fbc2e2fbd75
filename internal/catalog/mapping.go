package catalog

import (
	"fmt"
	"strings"
)

// ParseMappings converts CATALOG=CSV_PATH command-line tokens into
// CatalogImport entries. A token without '=' or with an empty side (after
// trimming) is a usage error.
func ParseMappings(args []string) ([]CatalogImport, error) {
	imports := make([]CatalogImport, 0, len(args))
	for _, arg := range args {
		name, path, found := strings.Cut(arg, "=")
		if !found {
			return nil, fmt.Errorf("invalid mapping %q: expected CATALOG=CSV_PATH", arg)
		}
		name = strings.TrimSpace(name)
		path = strings.TrimSpace(path)
		if name == "" {
			return nil, fmt.Errorf("invalid mapping %q: empty catalog", arg)
		}
		if path == "" {
			return nil, fmt.Errorf("invalid mapping %q: empty CSV path", arg)
		}
		imports = append(imports, CatalogImport{Catalog: name, CSVPath: path})
	}
	return imports, nil
}
