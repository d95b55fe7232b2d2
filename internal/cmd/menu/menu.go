// Package menu implements the interactive course planner console.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/agentstation/coursemap/pkg/courses"
	"github.com/agentstation/coursemap/pkg/errors"
	"github.com/agentstation/coursemap/pkg/loader"
	"github.com/agentstation/coursemap/pkg/logging"
)

// Choice is a top level menu entry.
type Choice int

// Menu choices, numbered as shown to the user.
const (
	ChoiceLoad Choice = iota + 1
	ChoiceList
	ChoiceShow
	ChoiceExit
)

const banner = "Welcome to the course planner."

var entries = []string{
	"1. Load Data Structure.",
	"2. Print Course List.",
	"3. Print Course.",
	"4. Exit",
}

// Menu drives the console loop over a single catalog.
type Menu struct {
	catalog *courses.Catalog
	loader  *loader.Loader
	out     io.Writer
	lines   <-chan string
	logger  *zerolog.Logger
	warn    *color.Color
	fail    *color.Color
}

// Option configures a Menu.
type Option func(*Menu)

// WithLogger sets the logger used for menu events.
func WithLogger(logger *zerolog.Logger) Option {
	return func(m *Menu) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithColor enables or disables highlighted warnings.
func WithColor(enabled bool) Option {
	return func(m *Menu) {
		if enabled {
			m.warn.EnableColor()
			m.fail.EnableColor()
		} else {
			m.warn.DisableColor()
			m.fail.DisableColor()
		}
	}
}

// New creates a menu reading answers from in and writing to out.
func New(catalog *courses.Catalog, ld *loader.Loader, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		catalog: catalog,
		loader:  ld,
		out:     out,
		lines:   scanLines(in),
		logger:  logging.Default(),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// scanLines feeds input lines to a channel that is closed at end of input.
// The goroutine outlives Run only while a read is blocked on in.
func scanLines(in io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			ch <- scanner.Text()
		}
	}()
	return ch
}

// Run shows the menu until the user exits, input ends, or ctx is done.
func (m *Menu) Run(ctx context.Context) error {
	ctx = logging.WithOperation(logging.WithLogger(ctx, m.logger), "menu")
	m.println(banner)
	for {
		m.println("")
		for _, e := range entries {
			m.println(e)
		}

		answer, ok := m.ask(ctx, "What would you like to do? ")
		if !ok {
			m.println("")
			return ctx.Err()
		}
		if answer == "" {
			continue
		}

		switch parseChoice(answer) {
		case ChoiceLoad:
			name, ok := m.ask(ctx, "Enter the file name: ")
			if !ok {
				return ctx.Err()
			}
			m.load(ctx, name)
		case ChoiceList:
			m.list()
		case ChoiceShow:
			id, ok := m.ask(ctx, "What course do you want information on? ")
			if !ok {
				return ctx.Err()
			}
			m.show(ctx, id)
		case ChoiceExit:
			m.println("Exiting program. Thank you!")
			return nil
		default:
			m.printf("%s is not a valid option.\n", answer)
		}
	}
}

// parseChoice returns 0 for anything that is not a menu number.
func parseChoice(answer string) Choice {
	n, err := strconv.Atoi(answer)
	if err != nil || n < int(ChoiceLoad) || n > int(ChoiceExit) {
		return 0
	}
	return Choice(n)
}

// ask prompts and returns the first whitespace-separated token of the next
// line. ok is false at end of input or when ctx is done.
func (m *Menu) ask(ctx context.Context, prompt string) (string, bool) {
	m.printf("%s", prompt)
	select {
	case <-ctx.Done():
		return "", false
	case line, open := <-m.lines:
		if !open {
			return "", false
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return "", true
		}
		return fields[0], true
	}
}

func (m *Menu) load(ctx context.Context, name string) {
	if name == "" {
		m.println("No file name given.")
		return
	}

	report, err := m.loader.LoadInto(m.catalog, name)
	if err != nil {
		logging.FromContext(logging.WithSource(ctx, name)).Debug().Err(err).Msg("Menu load failed")
		if errors.IsSourceUnavailable(err) {
			m.fail.Fprintf(m.out, "Unable to open file: %s\n", name)
		} else {
			m.fail.Fprintf(m.out, "Unable to read file: %s\n", err)
		}
		return
	}

	for _, perr := range report.ParseErrors {
		m.fail.Fprintf(m.out, "Error: %s\n", perr)
	}
	for _, perr := range report.Load.Diagnostics {
		m.fail.Fprintf(m.out, "Error: %s\n", perr)
	}

	if report.Loaded() == 0 {
		m.println("No valid courses found in file.")
		return
	}
	m.printf("Data loaded successfully. %d courses loaded.\n", report.Loaded())
	if report.Load.Duplicates > 0 {
		m.printf("%d duplicate courses were ignored.\n", report.Load.Duplicates)
	}

	m.println("\nValidating prerequisites...")
	validation := report.Load.Validation
	for _, w := range validation.Warnings {
		m.warn.Fprintf(m.out, "Warning: prerequisite '%s' for course %s does not exist in the system.\n", w.Reference, w.ID)
	}
	if validation.Valid() {
		m.println("All prerequisites are valid.")
	} else {
		m.println("Some prerequisite validation issues were found.")
	}
}

func (m *Menu) list() {
	list, err := m.catalog.List()
	if errors.IsEmptyCatalog(err) {
		m.println("No courses loaded.")
		return
	}
	m.println("Courses:")
	for _, c := range list {
		m.println(c.String())
	}
}

func (m *Menu) show(ctx context.Context, id string) {
	course, err := m.catalog.Get(id)
	switch {
	case errors.IsEmptyCatalog(err):
		m.println("No courses loaded.")
	case errors.IsNotFound(err):
		logging.FromContext(logging.WithCourse(ctx, id)).Debug().Msg("Course lookup missed")
		m.println("Course not found.")
	case err == nil:
		m.println(course.String())
		m.printf("Prerequisites: %s\n", course.PrerequisiteList())
	}
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
