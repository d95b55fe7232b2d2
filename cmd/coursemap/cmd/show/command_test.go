package show

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/coursemap/internal/appcontext"
	"github.com/agentstation/coursemap/pkg/courses"
	"github.com/agentstation/coursemap/pkg/errors"
	"github.com/agentstation/coursemap/pkg/logging"
)

func execute(t *testing.T, cat *courses.Catalog, format string, args ...string) (string, error) {
	t.Helper()
	app := &appcontext.Mock{
		CatalogFunc:      func() (*courses.Catalog, error) { return cat, nil },
		OutputFormatFunc: func() string { return format },
	}
	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func loaded() *courses.Catalog {
	cat := courses.New(courses.WithLogger(logging.NewNopLogger()))
	cat.Load([]courses.Course{
		{ID: "CS101", Title: "Intro to CS"},
		{ID: "CS201", Title: "Data Structures", Prerequisites: []string{"CS101"}},
	})
	return cat
}

func TestShow(t *testing.T) {
	out, err := execute(t, loaded(), "table", "CS201")
	require.NoError(t, err)
	assert.Contains(t, out, "Data Structures")
	assert.Contains(t, out, "CS101")

	out, err = execute(t, loaded(), "yaml", "CS101")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Intro to CS")
	assert.NotContains(t, out, "prerequisites")
}

func TestShowErrors(t *testing.T) {
	_, err := execute(t, loaded(), "table", "CS999")
	assert.True(t, errors.IsNotFound(err))
	assert.False(t, errors.IsEmptyCatalog(err))

	empty := courses.New(courses.WithLogger(logging.NewNopLogger()))
	_, err = execute(t, empty, "table", "CS101")
	assert.True(t, errors.IsEmptyCatalog(err))
	assert.False(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), "COURSEMAP_SOURCE")
}

func TestShowRequiresID(t *testing.T) {
	_, err := execute(t, loaded(), "table")
	assert.Error(t, err)
}
