package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loader reads and parses manifest files
type Loader struct{}

// NewLoader creates a new manifest loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a manifest file from the given path
func (l *Loader) Load(path string) (Value, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Value{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, fmt.Errorf("%w: failed to read %s: %w", ErrFileNotFound, path, err)
	}

	return l.LoadFromBytes(data, filepath.Ext(path))
}

// LoadFromBytes parses a manifest from raw bytes. Files with a .yaml or .yml
// extension are decoded as YAML, anything else as JSON.
func (l *Loader) LoadFromBytes(data []byte, ext string) (Value, error) {
	var (
		doc Value
		err error
	)

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		doc, err = decodeYAML(data)
	default:
		doc, err = decodeJSON(data)
	}
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if doc.Kind() != KindMap {
		return Value{}, fmt.Errorf("%w: top-level value is a %s, not an object", ErrInvalidFormat, doc.Kind())
	}

	return doc, nil
}
