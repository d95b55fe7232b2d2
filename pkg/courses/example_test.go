package courses_test

import (
	"fmt"

	"github.com/agentstation/coursemap/pkg/courses"
	"github.com/agentstation/coursemap/pkg/errors"
	"github.com/agentstation/coursemap/pkg/logging"
)

func ExampleCatalog() {
	catalog := courses.New(courses.WithLogger(logging.NewNopLogger()))

	result := catalog.Load([]courses.Course{
		{ID: "CS201", Title: "Data Structures", Prerequisites: []string{"CS101"}},
		{ID: "CS101", Title: "Intro to CS"},
	})
	fmt.Println("loaded:", result.Inserted, "valid:", result.Validation.Valid())

	for course := range catalog.All() {
		fmt.Println(course)
	}

	course, _ := catalog.Get("CS201")
	fmt.Println("Prerequisites:", course.PrerequisiteList())

	_, err := catalog.Get("CS999")
	fmt.Println(errors.IsNotFound(err))
	// Output:
	// loaded: 2 valid: true
	// CS101, Intro to CS
	// CS201, Data Structures
	// Prerequisites: CS101
	// true
}

func ExampleCatalog_Get_empty() {
	catalog := courses.New(courses.WithLogger(logging.NewNopLogger()))

	_, err := catalog.Get("CS101")
	fmt.Println(err)
	// Output:
	// no courses loaded
}
