// Package courses provides the in-memory course catalog: an ordered binary
// search tree keyed by course number paired with a direct lookup index over
// the same records.
//
// Example usage:
//
//	catalog := courses.New()
//	result := catalog.Load([]courses.Course{
//	    {ID: "CS101", Title: "Intro to CS"},
//	    {ID: "CS201", Title: "Data Structures", Prerequisites: []string{"CS101"}},
//	})
//	fmt.Println(result.Inserted, result.Validation.Valid())
//
//	for course := range catalog.All() {
//	    fmt.Println(course.ID, course.Title)
//	}
package courses

import (
	"slices"
	"strings"
)

// Course is a single catalog record. Records are immutable once stored;
// every accessor hands out a copy.
type Course struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	Prerequisites []string `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
}

// Clone returns a deep copy of the course.
func (c Course) Clone() Course {
	c.Prerequisites = slices.Clone(c.Prerequisites)
	return c
}

// Equal reports whether two courses hold the same identifier, title and
// prerequisites in the same order.
func (c Course) Equal(other Course) bool {
	return c.ID == other.ID &&
		c.Title == other.Title &&
		slices.Equal(c.Prerequisites, other.Prerequisites)
}

// HasPrerequisites reports whether the course lists any prerequisite.
func (c Course) HasPrerequisites() bool {
	return len(c.Prerequisites) > 0
}

// PrerequisiteList renders the prerequisites for display, "None" if empty.
func (c Course) PrerequisiteList() string {
	if len(c.Prerequisites) == 0 {
		return "None"
	}
	return strings.Join(c.Prerequisites, ", ")
}

// String implements fmt.Stringer as "ID, Title".
func (c Course) String() string {
	return c.ID + ", " + c.Title
}
