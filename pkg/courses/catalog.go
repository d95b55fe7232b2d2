package courses

import (
	"fmt"
	"iter"
	"slices"

	"github.com/rs/zerolog"

	"github.com/agentstation/coursemap/pkg/errors"
)

// degenerateRatio is the height/len ratio above which a load logs that the
// tree has degraded towards a list (typically sorted input).
const degenerateRatio = 0.5

// Catalog owns one ordered Tree and one lookup Index over the same records.
// The tree answers sorted listings; the index answers exact-ID lookups and
// prerequisite validation.
//
// A Catalog is not safe for concurrent use.
type Catalog struct {
	tree   *Tree
	index  *Index
	logger *zerolog.Logger
}

// LoadResult summarizes a Load call.
type LoadResult struct {
	// Candidates is the number of records offered to Load.
	Candidates int `json:"candidates" yaml:"candidates"`

	// Accepted counts candidates with a non-empty ID that reached the tree.
	Accepted int `json:"accepted" yaml:"accepted"`

	// Inserted counts candidates that created a new node.
	Inserted int `json:"inserted" yaml:"inserted"`

	// Duplicates counts candidates whose ID was already stored; the stored
	// record was kept.
	Duplicates int `json:"duplicates" yaml:"duplicates"`

	// Rejected counts candidates refused before insertion.
	Rejected int `json:"rejected" yaml:"rejected"`

	// Diagnostics explains each rejection.
	Diagnostics []*errors.ParseError `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`

	// Validation is the prerequisite check of the accepted candidates, nil
	// when nothing was loaded.
	Validation *ValidationReport `json:"validation,omitempty" yaml:"validation,omitempty"`
}

// New creates an empty catalog.
func New(opts ...Option) *Catalog {
	o := defaults().apply(opts...)
	return &Catalog{
		tree:   NewTree(o.capacity),
		index:  NewIndex(o.capacity),
		logger: o.logger,
	}
}

// Load inserts candidates in input order and then validates their
// prerequisites against the whole catalog.
//
// A candidate with an empty ID is rejected and reported as a diagnostic
// naming its position in candidates.
// A candidate whose ID is already stored leaves the stored record unchanged
// (first write wins). Loading into a populated catalog merges under the same
// rule. When candidates is empty nothing is validated and Validation is nil.
func (c *Catalog) Load(candidates []Course) *LoadResult {
	result := &LoadResult{Candidates: len(candidates)}
	if len(candidates) == 0 {
		c.logger.Info().Msg("No courses to load")
		return result
	}

	accepted := make([]Course, 0, len(candidates))
	for i, candidate := range candidates {
		if candidate.ID == "" {
			result.Rejected++
			result.Diagnostics = append(result.Diagnostics,
				errors.NewParseError("record", "", 0, fmt.Sprintf("missing course number in candidate %d", i+1), nil))
			c.logger.Warn().Int("candidate", i+1).Str("title", candidate.Title).Msg("Rejected course without a course number")
			continue
		}

		ref, inserted := c.tree.Insert(candidate)
		c.index.Set(candidate.ID, ref)
		accepted = append(accepted, candidate)
		result.Accepted++
		if inserted {
			result.Inserted++
		} else {
			result.Duplicates++
			c.logger.Debug().Str("course_id", candidate.ID).Msg("Course already loaded, keeping existing record")
		}
	}

	if result.Accepted > 0 {
		result.Validation = c.validate(slices.Values(accepted))
	}

	c.logger.Info().
		Int("accepted", result.Accepted).
		Int("inserted", result.Inserted).
		Int("duplicates", result.Duplicates).
		Int("rejected", result.Rejected).
		Int("total", c.tree.Len()).
		Bool("prerequisites_valid", result.Validation.Valid()).
		Msg("Courses loaded")

	if n := c.tree.Len(); n > 8 && float64(c.tree.Height()) > degenerateRatio*float64(n) {
		c.logger.Debug().Int("height", c.tree.Height()).Int("courses", n).Msg("Course tree is unbalanced")
	}

	return result
}

// Validate checks the prerequisites of every stored course.
func (c *Catalog) Validate() *ValidationReport {
	return c.validate(c.tree.All())
}

// List returns every course in ascending ID order.
// It returns errors.ErrEmptyCatalog when nothing has been loaded.
func (c *Catalog) List() ([]Course, error) {
	if c.tree.IsEmpty() {
		return nil, errors.ErrEmptyCatalog
	}
	return slices.Collect(c.tree.All()), nil
}

// All returns a lazy ascending-ID sequence over the stored courses.
func (c *Catalog) All() iter.Seq[Course] {
	return c.tree.All()
}

// Get returns the course with the given ID using the lookup index.
// It returns errors.ErrEmptyCatalog when nothing has been loaded and a
// *errors.NotFoundError when the ID is unknown.
func (c *Catalog) Get(id string) (Course, error) {
	if c.tree.IsEmpty() {
		return Course{}, errors.ErrEmptyCatalog
	}
	ref, ok := c.index.Lookup(id)
	if !ok || !c.tree.valid(ref) || c.tree.id(ref) != id {
		return Course{}, errors.NewNotFoundError("course", id)
	}
	return c.tree.At(ref), nil
}

// Len returns the number of stored courses.
func (c *Catalog) Len() int {
	return c.tree.Len()
}

// IsEmpty reports whether the catalog holds no courses.
func (c *Catalog) IsEmpty() bool {
	return c.tree.IsEmpty()
}

// Height returns the depth of the underlying tree.
func (c *Catalog) Height() int {
	return c.tree.Height()
}

// Reset empties the catalog. The index is cleared with the tree so that
// no entry outlives the node it refers to.
func (c *Catalog) Reset() {
	c.index.Reset()
	c.tree.Reset()
}
