package version

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/coursemap/internal/appcontext"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	app := &appcontext.Mock{
		VersionFunc: func() string { return "1.2.3" },
		CommitFunc:  func() string { return "abc1234" },
		DateFunc:    func() string { return "2026-01-02" },
		BuiltByFunc: func() string { return "goreleaser" },
	}

	root := &cobra.Command{Use: "coursemap"}
	root.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	root.AddCommand(NewCommand(app))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestVersion(t *testing.T) {
	out := execute(t, "version")
	assert.Equal(t, "coursemap 1.2.3\n", out)
}

func TestVersionVerbose(t *testing.T) {
	out := execute(t, "version", "--verbose")
	assert.Contains(t, out, "coursemap 1.2.3\n")
	assert.Contains(t, out, "commit:   abc1234")
	assert.Contains(t, out, "built:    2026-01-02")
	assert.Contains(t, out, "built by: goreleaser")
	assert.Contains(t, out, "go:       go")
}

func TestVersionWithoutVerboseFlag(t *testing.T) {
	cmd := NewCommand(&appcontext.Mock{VersionFunc: func() string { return "dev" }})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "coursemap dev\n", out.String())
}
