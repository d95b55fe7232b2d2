// Package loader turns course sources into candidate records for a
// courses.Catalog. It is the boundary between files on disk and the
// in-memory catalog: parse failures are collected as diagnostics rather
// than aborting the load, and an unreadable source is reported as an
// error matching errors.ErrSourceUnavailable.
package loader

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/coursemap/pkg/courses"
	"github.com/agentstation/coursemap/pkg/errors"
	"github.com/agentstation/coursemap/pkg/logging"
)

// Format identifies a course source layout.
type Format string

const (
	// FormatLines is the comma-separated one-course-per-line format.
	FormatLines Format = "lines"
	// FormatYAML is a YAML course document.
	FormatYAML Format = "yaml"
	// FormatJSON is a JSON course document.
	FormatJSON Format = "json"
)

// DetectFormat picks a format from the file extension. Anything that is
// not YAML or JSON is read as lines.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatLines
	}
}

// Result is the output of parsing one source.
type Result struct {
	Source      string
	Format      Format
	Lines       int
	Candidates  []courses.Course
	Diagnostics []*errors.ParseError
}

// Loader reads course sources from a filesystem.
type Loader struct {
	fs     afero.Fs
	logger *zerolog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithFs sets the filesystem sources are read from.
func WithFs(fs afero.Fs) Option {
	return func(l *Loader) {
		if fs != nil {
			l.fs = fs
		}
	}
}

// WithLogger sets the logger used for per-line diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a loader over the OS filesystem.
func New(opts ...Option) *Loader {
	l := &Loader{
		fs:     afero.NewOsFs(),
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Read parses the source at path. When the file cannot be opened or read
// the error matches errors.ErrSourceUnavailable and the result holds no
// candidates.
func (l *Loader) Read(path string) (*Result, error) {
	format := DetectFormat(path)

	f, err := l.fs.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("source", path).Msg("Unable to open course source")
		return &Result{Source: path, Format: format}, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.IsDir() {
		return &Result{Source: path, Format: format}, errors.NewIOError("open", path, errors.New("is a directory"))
	}

	var result *Result
	switch format {
	case FormatYAML, FormatJSON:
		result, err = ParseDocument(f, path, format)
	default:
		result, err = ParseLines(f, path)
	}
	if err != nil {
		l.logger.Error().Err(err).Str("source", path).Msg("Unable to parse course source")
		result.Candidates = nil
		return result, err
	}

	for _, diag := range result.Diagnostics {
		l.logger.Warn().Str("source", path).Int("line", diag.Line).Msg(diag.Message)
	}
	l.logger.Debug().
		Str("source", path).
		Str("format", string(format)).
		Int("lines", result.Lines).
		Int("candidates", len(result.Candidates)).
		Int("parse_errors", len(result.Diagnostics)).
		Msg("Parsed course source")

	return result, nil
}

// Report combines the parse of a source with the catalog load it fed.
type Report struct {
	Source      string               `json:"source" yaml:"source"`
	Format      Format               `json:"format" yaml:"format"`
	Lines       int                  `json:"lines" yaml:"lines"`
	ParseErrors []*errors.ParseError `json:"parse_errors,omitempty" yaml:"parse_errors,omitempty"`
	Load        *courses.LoadResult  `json:"load" yaml:"load"`
}

// Loaded is the number of records accepted by the catalog.
func (r *Report) Loaded() int {
	if r.Load == nil {
		return 0
	}
	return r.Load.Accepted
}

// Errors is the total number of parse errors, including candidates the
// catalog rejected.
func (r *Report) Errors() int {
	n := len(r.ParseErrors)
	if r.Load != nil {
		n += r.Load.Rejected
	}
	return n
}

// LoadInto reads path and loads its candidates into catalog. A source that
// cannot be read loads zero records and leaves the catalog untouched.
func (l *Loader) LoadInto(catalog *courses.Catalog, path string) (*Report, error) {
	result, err := l.Read(path)
	report := &Report{
		Source:      path,
		Format:      result.Format,
		Lines:       result.Lines,
		ParseErrors: result.Diagnostics,
	}
	if err != nil {
		report.Load = &courses.LoadResult{}
		return report, err
	}

	report.Load = catalog.Load(result.Candidates)
	return report, nil
}
