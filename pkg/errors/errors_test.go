package errors_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/coursemap/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "course",
			ID:       "CS101",
		}
		assert.Equal(t, "course with ID CS101 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
		assert.False(t, errors.Is(err, pkgerrors.ErrEmptyCatalog))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("course", "CS300")
		wrapped := fmt.Errorf("show: %w", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))

		var nf *pkgerrors.NotFoundError
		require.True(t, errors.As(wrapped, &nf))
		assert.Equal(t, "CS300", nf.ID)
	})
}

func TestEmptyCatalogIsDistinctFromNotFound(t *testing.T) {
	assert.True(t, pkgerrors.IsEmptyCatalog(pkgerrors.ErrEmptyCatalog))
	assert.False(t, pkgerrors.IsNotFound(pkgerrors.ErrEmptyCatalog))
	assert.False(t, pkgerrors.IsEmptyCatalog(pkgerrors.NewNotFoundError("course", "X")))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("id", "", "cannot be empty")
		assert.Equal(t, "validation failed for field id: cannot be empty", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "bad record"}
		assert.Equal(t, "validation failed: bad record", err.Error())
	})
}

func TestReferenceError(t *testing.T) {
	err := pkgerrors.NewReferenceError("course", "CS201", "prerequisites", "CS999")
	assert.Equal(t, "course CS201: prerequisites entry CS999 does not exist", err.Error())
	assert.True(t, pkgerrors.IsUnresolvedReference(err))
	assert.False(t, pkgerrors.IsNotFound(err))

	bare := &pkgerrors.ReferenceError{Resource: "course", ID: "A", Reference: "B"}
	assert.Equal(t, "course A: reference B does not exist", bare.Error())
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *pkgerrors.ParseError
		want string
	}{
		{
			name: "file and line",
			err:  pkgerrors.NewParseError("lines", "courses.csv", 3, "missing course title", nil),
			want: "parse error in lines at courses.csv:3: missing course title",
		},
		{
			name: "line only",
			err:  pkgerrors.NewParseError("lines", "", 7, "missing course title", nil),
			want: "lines parse error at line 7: missing course title",
		},
		{
			name: "file only",
			err:  pkgerrors.NewParseError("yaml", "courses.yaml", 0, "unexpected mapping", nil),
			want: "parse error in yaml file courses.yaml: unexpected mapping",
		},
		{
			name: "neither",
			err:  pkgerrors.NewParseError("json", "", 0, "bad", nil),
			want: "json parse error: bad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.True(t, pkgerrors.IsValidationError(tt.err))
		})
	}
}

func TestIOError(t *testing.T) {
	err := pkgerrors.NewIOError("open", "missing.txt", fs.ErrNotExist)
	assert.Contains(t, err.Error(), "open of missing.txt")
	assert.True(t, pkgerrors.IsSourceUnavailable(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	assert.Nil(t, pkgerrors.WrapIO("read", "x", nil))
	assert.True(t, pkgerrors.IsSourceUnavailable(pkgerrors.WrapIO("read", "x", errors.New("boom"))))
}

func TestResourceError(t *testing.T) {
	base := errors.New("disk on fire")
	err := pkgerrors.WrapResource("load", "catalog", "courses.csv", base)
	require.Error(t, err)
	assert.Equal(t, "failed to load catalog courses.csv: disk on fire", err.Error())
	assert.True(t, errors.Is(err, base))

	assert.Equal(t, "failed to load config: x", pkgerrors.NewResourceError("load", "config", "", errors.New("x")).Error())
	assert.Nil(t, pkgerrors.WrapResource("load", "catalog", "", nil))
}

func TestConfigError(t *testing.T) {
	base := errors.New("bad level")
	err := pkgerrors.NewConfigError("logging", "invalid level", base)
	assert.Equal(t, "configuration error in logging: invalid level", err.Error())
	assert.True(t, errors.Is(err, base))
}

func TestWrapParse(t *testing.T) {
	assert.Nil(t, pkgerrors.WrapParse("yaml", "a.yaml", nil))

	err := pkgerrors.WrapParse("yaml", "a.yaml", errors.New("unexpected key"))
	var pe *pkgerrors.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "a.yaml", pe.File)
	assert.Equal(t, 0, pe.Line)
}
