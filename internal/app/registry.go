package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/quantmind-br/manifest-info/internal/manifest"
	"github.com/quantmind-br/manifest-info/internal/utils"
)

var (
	// ErrUnknownCommand indicates no handler is registered under the requested name
	ErrUnknownCommand = errors.New("unknown command")

	// ErrDuplicateCommand indicates a handler name was registered twice
	ErrDuplicateCommand = errors.New("command already registered")
)

// CommandSources prints the source files referenced by the manifest
const CommandSources = "src"

// Env is what a Handler gets to work with besides the manifest itself
type Env struct {
	Extractor *manifest.Extractor
	Stdout    io.Writer
	Logger    *utils.Logger
}

// Handler runs one subcommand against a loaded manifest
type Handler func(ctx context.Context, env *Env, doc manifest.Value) error

// Command is a named subcommand
type Command struct {
	Name    string
	Short   string
	Handler Handler
}

// Registry maps subcommand names to their commands
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// DefaultRegistry returns a registry holding every built-in subcommand
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(Command{
		Name:    CommandSources,
		Short:   "Extract list of source files from manifest",
		Handler: RunSources,
	})
	return r
}

// Register adds cmd to the registry
func (r *Registry) Register(cmd Command) error {
	if cmd.Name == "" || cmd.Handler == nil {
		return fmt.Errorf("command needs a name and a handler")
	}
	if _, exists := r.commands[cmd.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, cmd.Name)
	}
	r.commands[cmd.Name] = cmd
	return nil
}

// Lookup returns the command registered under name
func (r *Registry) Lookup(name string) (Command, error) {
	cmd, ok := r.commands[name]
	if !ok {
		return Command{}, fmt.Errorf("%w %q (available: %s)",
			ErrUnknownCommand, name, strings.Join(r.Names(), ", "))
	}
	return cmd, nil
}

// Names returns the registered command names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Commands returns the registered commands sorted by name
func (r *Registry) Commands() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, name := range r.Names() {
		cmds = append(cmds, r.commands[name])
	}
	return cmds
}

// RunSources writes the normalized source paths as one space-separated line
func RunSources(ctx context.Context, env *Env, doc manifest.Value) error {
	sources, err := env.Extractor.Extract(doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(env.Stdout, strings.Join(manifest.NormalizeAll(sources), " "))
	return err
}
