package courses

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoursePrerequisiteList(t *testing.T) {
	tests := []struct {
		name   string
		course Course
		want   string
	}{
		{"none", Course{ID: "CS101"}, "None"},
		{"one", Course{ID: "CS200", Prerequisites: []string{"CS101"}}, "CS101"},
		{"many", Course{ID: "CS300", Prerequisites: []string{"CS200", "MATH201"}}, "CS200, MATH201"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.course.PrerequisiteList())
			assert.Equal(t, tt.want != "None", tt.course.HasPrerequisites())
		})
	}
}

func TestCourseEqualAndClone(t *testing.T) {
	a := Course{ID: "CS200", Title: "Data Structures", Prerequisites: []string{"CS101"}}
	b := a.Clone()

	assert.True(t, a.Equal(b))
	b.Prerequisites[0] = "CS102"
	assert.False(t, a.Equal(b))
	assert.Equal(t, "CS101", a.Prerequisites[0])

	assert.Equal(t, "CS200, Data Structures", a.String())
}
