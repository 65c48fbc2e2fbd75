package catalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadModels reads a catalog CSV file and extracts one Model per usable row.
// The delimiter is detected from the leading bytes of the file. Headers that
// normalize to an empty key are dropped, duplicate normalized headers get
// numeric suffixes in column order, and rows whose fields are all blank
// produce no model.
func ReadModels(csvPath string) ([]Model, error) {
	text, err := readCatalogFile(csvPath)
	if err != nil {
		return nil, err
	}

	delimiter := textDelimiter(text)

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header from %s: %w", csvPath, err)
	}

	// Map column index to its normalized key; empty keys drop the column.
	seen := make(keySet)
	keys := make([]string, len(header))
	for i, raw := range header {
		key := NormalizeKey(raw)
		if key == "" {
			continue
		}
		keys[i] = seen.dedupe(key)
	}

	var models []Model
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row from %s: %w", csvPath, err)
		}

		var fields Fields
		for i, key := range keys {
			if key == "" || i >= len(row) {
				continue
			}
			value := strings.TrimSpace(row[i])
			if value == "" {
				continue
			}
			fields = append(fields, Field{Key: key, Value: value})
		}
		if len(fields) == 0 {
			continue
		}

		models = append(models, Model{Label: deriveLabel(fields), Fields: fields})
	}

	return models, nil
}

// FileDelimiter reports the delimiter ReadModels would use for the file.
func FileDelimiter(csvPath string) (rune, error) {
	text, err := readCatalogFile(csvPath)
	if err != nil {
		return 0, err
	}
	return textDelimiter(text), nil
}

// textDelimiter detects the delimiter from the leading bytes of the decoded
// file contents.
func textDelimiter(text string) rune {
	sample := text
	truncated := len(text) > sampleSize
	if truncated {
		sample = text[:sampleSize]
	}
	return DetectDelimiter(sample, truncated)
}

// readCatalogFile reads a CSV file as text. A UTF-8 byte order mark is
// stripped; files that are not valid UTF-8 are decoded as ISO 8859-1, which
// matches how these catalogs were historically exported.
func readCatalogFile(csvPath string) (string, error) {
	data, err := os.ReadFile(csvPath)
	if err != nil {
		return "", fmt.Errorf("failed to read CSV file: %w", err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode CSV file %s: %w", csvPath, err)
	}
	return string(decoded), nil
}
