package output

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/coursemap/pkg/courses"
	"github.com/agentstation/coursemap/pkg/loader"
)

// maxTitleWidth truncates titles in the narrow table.
const maxTitleWidth = 48

// CoursesToData converts courses to table format. The wide layout adds the
// prerequisite count and never truncates titles.
func CoursesToData(list []courses.Course, wide bool) Data {
	headers := []string{"Course", "Title", "Prerequisites"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft}
	if wide {
		headers = append(headers, "Count")
		align = append(align, AlignRight)
	}

	rows := make([][]string, 0, len(list))
	for _, course := range list {
		title := course.Title
		if !wide && runewidth.StringWidth(title) > maxTitleWidth {
			title = runewidth.Truncate(title, maxTitleWidth, "...")
		}
		row := []string{course.ID, title, course.PrerequisiteList()}
		if wide {
			row = append(row, strconv.Itoa(len(course.Prerequisites)))
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// CourseToData renders a single course as a property/value table.
func CourseToData(course courses.Course) Data {
	return propertyTable([][2]string{
		{"course", course.ID},
		{"title", course.Title},
		{"prerequisites", course.PrerequisiteList()},
	})
}

// ReportToData summarizes a load report as a property/value table.
func ReportToData(report *loader.Report) Data {
	status := "valid"
	load := report.Load
	if load == nil {
		load = &courses.LoadResult{}
	}
	switch {
	case load.Validation == nil:
		status = "not run"
	case !load.Validation.Valid():
		status = strconv.Itoa(len(load.Validation.Warnings)) + " unresolved"
	}

	return propertyTable([][2]string{
		{"source", report.Source},
		{"format", string(report.Format)},
		{"lines", strconv.Itoa(report.Lines)},
		{"courses_loaded", strconv.Itoa(report.Loaded())},
		{"new_courses", strconv.Itoa(load.Inserted)},
		{"duplicates_kept", strconv.Itoa(load.Duplicates)},
		{"parse_errors", strconv.Itoa(report.Errors())},
		{"prerequisites", status},
	})
}

// ValidationToData lists unresolved prerequisites.
func ValidationToData(report *courses.ValidationReport) Data {
	data := Data{Headers: []string{"Course", "Missing Prerequisite"}}
	if report == nil {
		return data
	}
	for _, w := range report.Warnings {
		data.Rows = append(data.Rows, []string{w.ID, w.Reference})
	}
	return data
}

// propertyTable builds a two-column table, titling snake_case keys.
func propertyTable(pairs [][2]string) Data {
	caser := cases.Title(language.English)
	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, []string{caser.String(strings.ReplaceAll(p[0], "_", " ")), p[1]})
	}
	return Data{
		Headers:         []string{"Property", "Value"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft},
	}
}
