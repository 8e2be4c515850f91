package manifest

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the manifest package
var (
	// ErrFileNotFound indicates the manifest file does not exist or cannot be read
	ErrFileNotFound = errors.New("manifest file not found")

	// ErrInvalidFormat indicates the manifest file is not valid JSON or YAML
	ErrInvalidFormat = errors.New("invalid manifest format")

	// ErrKeyNotFound indicates a required manifest field is missing
	ErrKeyNotFound = errors.New("required key not found")

	// ErrUnexpectedType indicates a required manifest field has the wrong type
	ErrUnexpectedType = errors.New("unexpected value type")
)

// KeyError reports a required field that is missing or malformed
type KeyError struct {
	Path []string
	Err  error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %v", strings.Join(e.Path, "."), e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// NewKeyError creates a new KeyError
func NewKeyError(err error, path ...string) *KeyError {
	return &KeyError{
		Path: path,
		Err:  err,
	}
}
