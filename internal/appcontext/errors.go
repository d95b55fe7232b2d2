package appcontext

import (
	"fmt"

	"github.com/agentstation/coursemap/pkg/errors"
)

// EmptyCatalogError returns errors.ErrEmptyCatalog for app. When no source
// is configured the error says how to set one; otherwise it names the
// source that produced no courses.
func EmptyCatalogError(app Interface) error {
	if source := app.Source(); source != "" {
		return fmt.Errorf("%w: no courses loaded from %s", errors.ErrEmptyCatalog, source)
	}
	return fmt.Errorf("%w: pass --file or set COURSEMAP_SOURCE", errors.ErrEmptyCatalog)
}
