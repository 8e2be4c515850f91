package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/quantmind-br/manifest-info/internal/config"
	"github.com/quantmind-br/manifest-info/internal/manifest"
	"github.com/quantmind-br/manifest-info/internal/utils"
)

// Runner loads a manifest and dispatches a subcommand against it
type Runner struct {
	config   *config.Config
	registry *Registry
	loader   *manifest.Loader
	env      *Env
	logger   *utils.Logger
}

// RunnerOptions contains options for creating a runner
type RunnerOptions struct {
	Config   *config.Config
	Registry *Registry
	Verbose  bool

	// Optional overrides, mostly for tests
	Locales manifest.LocaleLister
	Logger  *utils.Logger
	Stdout  io.Writer
}

// NewRunner creates a new runner with the given configuration
func NewRunner(opts RunnerOptions) (*Runner, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	registry := opts.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			Verbose: opts.Verbose,
		})
	}

	locales := opts.Locales
	if locales == nil {
		locales = manifest.NewOSLocaleLister(utils.ExpandPath(cfg.Locales.Root), cfg.Locales.Pattern)
	}

	var stdout io.Writer = os.Stdout
	if opts.Stdout != nil {
		stdout = opts.Stdout
	}

	return &Runner{
		config:   cfg,
		registry: registry,
		loader:   manifest.NewLoader(),
		env: &Env{
			Extractor: manifest.NewExtractor(manifest.ExtractorOptions{
				Locales: locales,
				Logger:  logger,
			}),
			Stdout: stdout,
			Logger: logger,
		},
		logger: logger,
	}, nil
}

// Run loads the manifest at path and runs the named subcommand on it.
// The subcommand is resolved before the file is touched.
func (r *Runner) Run(ctx context.Context, path, command string) error {
	cmd, err := r.registry.Lookup(command)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	log := r.logger.WithFile(path)
	log.Debug().Str("command", cmd.Name).Msg("Loading manifest")

	doc, err := r.loader.Load(path)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := cmd.Handler(ctx, r.env, doc); err != nil {
		return err
	}

	log.Debug().Str("command", cmd.Name).Msg("Done")
	return nil
}
