package load

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/coursemap/internal/appcontext"
	"github.com/agentstation/coursemap/pkg/errors"
)

const fixture = `CS101,Intro to CS
CS201,Data Structures,CS101,MATH999
broken line
CS101,Intro Again
`

func newApp(t *testing.T, format string) *appcontext.Mock {
	t.Helper()
	color.NoColor = true

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "courses.csv", []byte(fixture), 0o644))
	return &appcontext.Mock{
		Fs:               fs,
		OutputFormatFunc: func() string { return format },
	}
}

func execute(t *testing.T, app appcontext.Interface, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewCommand(app)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestLoad(t *testing.T) {
	app := newApp(t, "table")

	out, warnings, err := execute(t, app, "courses.csv")
	require.NoError(t, err)

	assert.Contains(t, out, "Courses Loaded")
	assert.Contains(t, out, "1 unresolved")
	assert.Contains(t, warnings, "courses.csv:3")
	assert.Contains(t, warnings, "MATH999")

	cat, _ := app.Catalog()
	assert.Equal(t, 2, cat.Len())
	got, err := cat.Get("CS101")
	require.NoError(t, err)
	assert.Equal(t, "Intro to CS", got.Title)
}

func TestLoadJSON(t *testing.T) {
	out, warnings, err := execute(t, newApp(t, "json"), "courses.csv")
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Contains(t, out, `"duplicates": 1`)
	assert.Contains(t, out, `"source": "courses.csv"`)
}

func TestLoadMissingFile(t *testing.T) {
	app := newApp(t, "table")

	_, _, err := execute(t, app, "missing.csv")
	assert.True(t, errors.IsSourceUnavailable(err))

	cat, _ := app.Catalog()
	assert.True(t, cat.IsEmpty())
}
