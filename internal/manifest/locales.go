package manifest

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// DefaultLocalePattern matches the per-language message files of an extension
const DefaultLocalePattern = "_locales/*/messages.json"

// LocaleLister lists the locale message files shipped with an extension
type LocaleLister interface {
	List() ([]string, error)
}

// FSLocaleLister globs a filesystem for locale message files
type FSLocaleLister struct {
	fs      afero.Fs
	pattern string
}

// Ensure listers implement LocaleLister
var (
	_ LocaleLister = (*FSLocaleLister)(nil)
	_ LocaleLister = StaticLocaleLister(nil)
)

// NewFSLocaleLister creates a lister matching pattern against fs.
// An empty pattern falls back to DefaultLocalePattern.
func NewFSLocaleLister(fs afero.Fs, pattern string) *FSLocaleLister {
	if pattern == "" {
		pattern = DefaultLocalePattern
	}
	return &FSLocaleLister{fs: fs, pattern: pattern}
}

// NewOSLocaleLister creates a lister rooted at dir on the OS filesystem.
// "" and "." both mean the current working directory.
func NewOSLocaleLister(dir, pattern string) *FSLocaleLister {
	var fs afero.Fs = afero.NewOsFs()
	if dir != "" && dir != "." {
		fs = afero.NewBasePathFs(fs, dir)
	}
	return NewFSLocaleLister(fs, pattern)
}

// Pattern returns the glob pattern in use
func (l *FSLocaleLister) Pattern() string {
	return l.pattern
}

// List returns matching paths relative to the filesystem root, in the order
// the glob walk produces them. Wildcards do not match dot-prefixed names, so
// directories like _locales/.git are skipped unless the pattern names them.
func (l *FSLocaleLister) List() ([]string, error) {
	matches, err := doublestar.Glob(afero.NewIOFS(l.fs), l.pattern, doublestar.WithNoHidden())
	if err != nil {
		return nil, fmt.Errorf("failed to glob %q: %w", l.pattern, err)
	}
	return matches, nil
}

// StaticLocaleLister returns a fixed list of paths
type StaticLocaleLister []string

// List returns the fixed paths
func (s StaticLocaleLister) List() ([]string, error) {
	return s, nil
}
