package appcontext

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/coursemap/pkg/courses"
	"github.com/agentstation/coursemap/pkg/loader"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value: an empty
// catalog and a loader over an in-memory filesystem, both created once.
type Mock struct {
	CatalogFunc      func() (*courses.Catalog, error)
	LoaderFunc       func() *loader.Loader
	SourceFunc       func() string
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string

	// Fs backs the default loader. Tests write fixtures here.
	Fs afero.Fs

	catalog *courses.Catalog
	loader  *loader.Loader
}

// Catalog returns a catalog using the mock function or a shared empty one.
func (m *Mock) Catalog() (*courses.Catalog, error) {
	if m.CatalogFunc != nil {
		return m.CatalogFunc()
	}
	if m.catalog == nil {
		m.catalog = courses.New(courses.WithLogger(m.Logger()))
	}
	return m.catalog, nil
}

// Loader returns a loader using the mock function or one over Fs.
func (m *Mock) Loader() *loader.Loader {
	if m.LoaderFunc != nil {
		return m.LoaderFunc()
	}
	if m.loader == nil {
		if m.Fs == nil {
			m.Fs = afero.NewMemMapFs()
		}
		m.loader = loader.New(loader.WithFs(m.Fs), loader.WithLogger(m.Logger()))
	}
	return m.loader
}

// Source returns the source using the mock function or "".
func (m *Mock) Source() string {
	if m.SourceFunc != nil {
		return m.SourceFunc()
	}
	return ""
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
