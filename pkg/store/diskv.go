package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

const blobExt = ".json"

var (
	// ErrNotFound is returned when a key holds no blob.
	ErrNotFound = errors.New("store: not found")
	// ErrMalformed is returned when a blob does not decode.
	ErrMalformed = errors.New("store: malformed blob")
	// ErrInvalidKey is returned for keys that cannot be stored.
	ErrInvalidKey = errors.New("store: invalid key")
)

// Blobs stores whole JSON documents under flat keys. Every write replaces the
// previous document.
type Blobs interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Erase(key string) error
	Keys(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates Blobs backed by diskv using the provided config.
func Load(cfg Config) (Blobs, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Read(key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	if !p.d.Has(key) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	val, err := p.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (p *persistence) Write(key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Erase(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if !p.d.Has(key) {
		return nil
	}
	if err := p.d.Erase(key); err != nil {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if validateKey(key) != nil {
			fmt.Fprintf(os.Stderr, "store: skipping %q\n", key)
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func validateKey(key string) error {
	switch {
	case key == "",
		strings.ContainsAny(key, `/\`),
		strings.HasPrefix(key, "."),
		strings.HasSuffix(key, blobExt):
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key + blobExt,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, blobExt)
}

// LoadJSON decodes the blob under key into v. It returns ErrNotFound when
// the key is empty and ErrMalformed when the blob does not decode. Callers
// fall back to their empty state on either.
func LoadJSON(b Blobs, key string, v any) error {
	data, err := b.Read(key)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if !json.Valid(data) {
		return fmt.Errorf("%w: %s", ErrMalformed, key)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}
	return nil
}

// SaveJSON replaces the blob under key with v.
func SaveJSON(b Blobs, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	return b.Write(key, data)
}
