package courses

import (
	"iter"

	"github.com/agentstation/coursemap/pkg/errors"
)

// ValidationReport is the outcome of a prerequisite check. Validation is
// advisory: records with unresolved prerequisites stay in the catalog.
type ValidationReport struct {
	// Checked is the number of courses that listed at least one prerequisite.
	Checked int `json:"checked" yaml:"checked"`

	// Warnings lists every prerequisite that names an unknown course, in
	// input order.
	Warnings []*errors.ReferenceError `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Valid reports whether every prerequisite resolved.
func (r *ValidationReport) Valid() bool {
	return r == nil || len(r.Warnings) == 0
}

// Unresolved returns the distinct missing prerequisite IDs in first-seen order.
func (r *ValidationReport) Unresolved() []string {
	if r == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(r.Warnings))
	var ids []string
	for _, w := range r.Warnings {
		if _, ok := seen[w.Reference]; ok {
			continue
		}
		seen[w.Reference] = struct{}{}
		ids = append(ids, w.Reference)
	}
	return ids
}

// validate checks the prerequisites of each course against the index.
// It must run only after every course of the batch has been inserted, so
// that forward references and self references resolve.
func (c *Catalog) validate(batch iter.Seq[Course]) *ValidationReport {
	report := &ValidationReport{}
	for course := range batch {
		if !course.HasPrerequisites() {
			continue
		}
		report.Checked++
		for _, prereq := range course.Prerequisites {
			if c.index.Has(prereq) {
				continue
			}
			warning := errors.NewReferenceError("course", course.ID, "prerequisites", prereq)
			report.Warnings = append(report.Warnings, warning)
			c.logger.Warn().
				Str("course_id", course.ID).
				Str("prerequisite", prereq).
				Msg("Prerequisite does not exist in the catalog")
		}
	}
	return report
}
