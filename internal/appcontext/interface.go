// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App type so they can be tested with Mock.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/coursemap/pkg/courses"
	"github.com/agentstation/coursemap/pkg/loader"
)

// Interface defines what commands need from the application.
type Interface interface {
	// Catalog returns the process-wide catalog. On first use it is loaded
	// from the configured source, if any. A source that cannot be read is
	// logged and leaves the catalog empty; it is not an error here.
	Catalog() (*courses.Catalog, error)

	// Loader returns the loader used to read course sources.
	Loader() *loader.Loader

	// Source returns the configured course source path, or "".
	Source() string

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, ...).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
