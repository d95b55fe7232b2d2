package loader

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/coursemap/pkg/courses"
	"github.com/agentstation/coursemap/pkg/errors"
)

// document is the YAML/JSON course file layout. Both a bare list of
// courses and a mapping with a "courses" key are accepted.
type document struct {
	Courses []courses.Course `yaml:"courses" json:"courses"`
}

// ParseDocument reads a YAML or JSON course document. JSON is parsed as
// YAML, which is a superset. Records missing a title or course number are
// reported as diagnostics and skipped.
func ParseDocument(r io.Reader, source string, format Format) (*Result, error) {
	result := &Result{Source: source, Format: format}

	data, err := io.ReadAll(r)
	if err != nil {
		return result, errors.WrapIO("read", source, err)
	}
	result.Lines = bytes.Count(data, []byte("\n"))
	if len(bytes.TrimSpace(data)) == 0 {
		return result, nil
	}

	var shape any
	if err := yaml.Unmarshal(data, &shape); err != nil {
		return result, errors.WrapParse(string(format), source, err)
	}

	var records []courses.Course
	if _, isList := shape.([]any); isList {
		err = yaml.Unmarshal(data, &records)
	} else {
		var doc document
		err = yaml.Unmarshal(data, &doc)
		records = doc.Courses
	}
	if err != nil {
		return result, errors.WrapParse(string(format), source, err)
	}

	for i, record := range records {
		record.ID = strings.TrimSpace(record.ID)
		record.Title = strings.TrimSpace(record.Title)
		if record.Title == "" {
			result.Diagnostics = append(result.Diagnostics,
				errors.NewParseError(string(format), source, 0, missingTitle(i, record.ID), nil))
			continue
		}
		if record.ID == "" {
			result.Diagnostics = append(result.Diagnostics,
				errors.NewParseError(string(format), source, 0,
					fmt.Sprintf("missing course number in record %d", i+1), nil))
			continue
		}
		record.Prerequisites = trimAll(record.Prerequisites)
		result.Candidates = append(result.Candidates, record)
	}
	return result, nil
}

func missingTitle(i int, id string) string {
	if id == "" {
		return fmt.Sprintf("missing course title in record %d", i+1)
	}
	return fmt.Sprintf("missing course title in record %d (%s)", i+1, id)
}

func trimAll(ids []string) []string {
	var out []string
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
