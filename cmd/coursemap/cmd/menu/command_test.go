package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/coursemap/internal/appcontext"
)

func TestMenuCommand(t *testing.T) {
	color.NoColor = true

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "courses.csv", []byte("CS101,Intro to CS\n"), 0o644))
	app := &appcontext.Mock{Fs: fs}

	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("1\ncourses.csv\n3\nCS101\n4\n"))
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Data loaded successfully. 1 courses loaded.")
	assert.Contains(t, out.String(), "CS101, Intro to CS\nPrerequisites: None")

	cat, _ := app.Catalog()
	assert.Equal(t, 1, cat.Len())
}
