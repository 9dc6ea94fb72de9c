package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrCorruptImport is returned when an import document cannot be read.
var ErrCorruptImport = errors.New("store: corrupt import")

// Format is an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml or yml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("store: unknown format %q", s)
}

// Snapshot reads every blob. Blobs that are not valid JSON are skipped.
func Snapshot(ctx context.Context, b Blobs) (map[string]any, error) {
	out := make(map[string]any)
	for _, key := range b.Keys(ctx) {
		var v any
		if err := LoadJSON(b, key, &v); err != nil {
			if errors.Is(err, ErrMalformed) || errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

// Export encodes every blob as one document keyed by blob key.
func Export(ctx context.Context, b Blobs, format Format) ([]byte, error) {
	snap, err := Snapshot(ctx, b)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(snap)
		if err != nil {
			return nil, fmt.Errorf("store: encode yaml: %w", err)
		}
		return data, nil
	default:
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("store: encode json: %w", err)
		}
		return append(data, '\n'), nil
	}
}

// Import decodes a document produced by Export and replaces each blob it
// names. Nothing is written unless the whole document decodes. It returns
// the keys written.
func Import(b Blobs, data []byte, format Format) ([]string, error) {
	doc := make(map[string]any)
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptImport, err)
	}

	encoded := make(map[string][]byte, len(doc))
	for key, v := range doc {
		if err := validateKey(key); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptImport, err)
		}
		blob, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorruptImport, key, err)
		}
		encoded[key] = blob
	}

	keys := make([]string, 0, len(encoded))
	for key := range encoded {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for i, key := range keys {
		if err := b.Write(key, encoded[key]); err != nil {
			return keys[:i], err
		}
	}
	return keys, nil
}

// Clear erases every blob.
func Clear(ctx context.Context, b Blobs) (int, error) {
	n := 0
	for _, key := range b.Keys(ctx) {
		if err := b.Erase(key); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
