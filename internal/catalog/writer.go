package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf16"
)

// MarshalJSON renders the fields as a JSON object in insertion order. The
// standard library would sort map keys, losing the CSV column order.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, fl := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		appendJSONString(&buf, fl.Key)
		buf.WriteByte(':')
		appendJSONString(&buf, fl.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteCatalog writes the static JSON document for one (catalog, brand) pair
// under outRoot, creating the catalog directory when missing. The brand file
// is intentionally extensionless so its path matches the frontend URL. Any
// existing file at the path is overwritten. Returns the written path.
func WriteCatalog(outRoot, catalog, brand string, models []Model) (string, error) {
	outDir := filepath.Join(outRoot, catalog)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create catalog directory %s: %w", outDir, err)
	}

	if models == nil {
		models = []Model{}
	}
	doc := Document{Success: true, Data: models}
	payload, err := marshalDocument(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode catalog %s: %w", catalog, err)
	}

	outPath := filepath.Join(outDir, brand)
	if err := os.WriteFile(outPath, payload, 0o644); err != nil {
		return "", fmt.Errorf("failed to write catalog file %s: %w", outPath, err)
	}
	return outPath, nil
}

// marshalDocument produces the compact, ASCII-only JSON body served to the
// frontend. HTML characters are left unescaped.
func marshalDocument(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return asciiEscape(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// asciiEscape rewrites every non-ASCII rune in already-encoded JSON as a
// \uXXXX escape. Runes above the basic multilingual plane become surrogate
// pairs. Bytes over 0x7F only occur inside string literals, so a blind pass
// over the document is safe.
func asciiEscape(in []byte) []byte {
	ascii := true
	for _, b := range in {
		if b >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return in
	}

	var out bytes.Buffer
	out.Grow(len(in))
	for _, r := range string(in) {
		switch {
		case r < 0x80:
			out.WriteRune(r)
		case r <= 0xFFFF:
			fmt.Fprintf(&out, `\u%04x`, r)
		default:
			hi, lo := utf16.EncodeRune(r)
			fmt.Fprintf(&out, `\u%04x\u%04x`, hi, lo)
		}
	}
	return out.Bytes()
}

// appendJSONString writes s as a JSON string literal with non-ASCII runes
// escaped and HTML characters left alone.
func appendJSONString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			switch {
			case r < 0x20:
				fmt.Fprintf(buf, `\u%04x`, r)
			case r < 0x80:
				buf.WriteRune(r)
			case r <= 0xFFFF:
				fmt.Fprintf(buf, `\u%04x`, r)
			default:
				hi, lo := utf16.EncodeRune(r)
				fmt.Fprintf(buf, `\u%04x\u%04x`, hi, lo)
			}
		}
	}
	buf.WriteByte('"')
}
