// Package catalog reads and writes flat message catalogs: JSON or YAML
// documents mapping message keys to strings.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var errTrailingData = errors.New("unexpected data after the first document")

// Format is the encoding of a catalog document.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" and "yml", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("unknown catalog format %q", s)
	}
}

// FormatFromPath derives the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot derive catalog format from %q", path)
	}
	return ParseFormat(ext)
}

// Decode reads exactly one document from r without imposing a shape on it, so
// that values of the wrong type can be reported by the caller. JSON numbers are
// kept as json.Number. An empty document decodes to an empty map; anything after
// the first document is an error.
func Decode(r io.Reader, f Format) (any, error) {
	var next func(v any) error
	switch f {
	case JSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		next = dec.Decode
	case YAML:
		next = yaml.NewDecoder(r).Decode
	default:
		return nil, fmt.Errorf("unknown catalog format %q", f)
	}

	var v any
	err := next(&v)
	if errors.Is(err, io.EOF) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s catalog: %w", f, err)
	}

	var extra any
	if err := next(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode %s catalog: %w", f, errTrailingData)
	}
	return v, nil
}

// Encode writes m to w. Keys are sorted by both encoders.
func Encode(w io.Writer, f Format, m map[string]string) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown catalog format %q", f)
	}
}

// ReadFile decodes the catalog stored at path.
func ReadFile(path string, f Format) (any, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	defer fh.Close()
	return Decode(fh, f)
}

// WriteFile encodes m to path, creating parent directories as needed.
func WriteFile(path string, f Format, m map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	if err := Encode(fh, f, m); err != nil {
		_ = fh.Close()
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return fh.Close()
}
