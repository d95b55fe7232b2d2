// Package app provides the application context and dependency management
// for the coursemap CLI. Configuration, logging, and the process-wide
// catalog live here and are handed to commands through appcontext.Interface.
package app

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/coursemap/internal/appcontext"
	"github.com/agentstation/coursemap/internal/cmd/output"
	"github.com/agentstation/coursemap/pkg/courses"
	"github.com/agentstation/coursemap/pkg/errors"
	"github.com/agentstation/coursemap/pkg/loader"
)

// App represents the coursemap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	flags  Flags
	logger *zerolog.Logger
	fs     afero.Fs

	// Standard streams; nil means the process streams.
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// Catalog and loader (lazy-initialized, one per process)
	mu      sync.Mutex
	catalog *courses.Catalog
	loader  *loader.Loader
}

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		fs:      afero.NewOsFs(),
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config, os.Stderr)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Source returns the configured course source.
func (a *App) Source() string {
	return a.config.Source
}

// OutputFormat returns the configured format, or a terminal-dependent
// default when none was configured.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Loader returns the course loader, creating it on first use.
func (a *App) Loader() *loader.Loader {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loaderLocked()
}

func (a *App) loaderLocked() *loader.Loader {
	if a.loader == nil {
		a.loader = loader.New(loader.WithFs(a.fs), loader.WithLogger(a.logger))
	}
	return a.loader
}

// Catalog returns the process-wide catalog. The first call loads the
// configured source; if it cannot be read the failure is logged and the
// catalog starts empty.
func (a *App) Catalog() (*courses.Catalog, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.catalog != nil {
		return a.catalog, nil
	}

	catalog := courses.New(courses.WithLogger(a.logger))
	if source := a.config.Source; source != "" {
		if _, err := a.loaderLocked().LoadInto(catalog, source); err != nil {
			a.logger.Warn().Err(err).Str("source", source).Msg("Configured course source not loaded")
		}
	}

	a.catalog = catalog
	return catalog, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithFs sets the filesystem course sources are read from.
func WithFs(fs afero.Fs) Option {
	return func(a *App) error {
		a.fs = fs
		return nil
	}
}

// WithCatalog sets a preloaded catalog (useful for testing).
func WithCatalog(catalog *courses.Catalog) Option {
	return func(a *App) error {
		a.catalog = catalog
		return nil
	}
}

// WithStreams sets the streams commands read from and write to.
func WithStreams(in io.Reader, out, errOut io.Writer) Option {
	return func(a *App) error {
		a.stdin, a.stdout, a.stderr = in, out, errOut
		return nil
	}
}
