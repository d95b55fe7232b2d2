package loader

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/agentstation/coursemap/pkg/courses"
	"github.com/agentstation/coursemap/pkg/errors"
)

// maxLineSize bounds a single course line. Longer lines are reported and
// skipped.
const maxLineSize = 1 << 20

// ParseLines reads the line format:
//
//	identifier,title[,prerequisite]*
//
// Blank lines and lines starting with '#' are skipped. A line without a
// course number or title, or longer than maxLineSize, is reported in
// Result.Diagnostics and skipped; parsing continues. The returned error is
// non-nil only when r itself fails.
func ParseLines(r io.Reader, source string) (*Result, error) {
	result := &Result{Source: source, Format: FormatLines}
	reader := bufio.NewReaderSize(r, 64*1024)

	for {
		raw, n, tooLong, err := readLine(reader)
		if n > 0 {
			result.Lines++
			if tooLong {
				result.Diagnostics = append(result.Diagnostics,
					errors.NewParseError(string(FormatLines), source, result.Lines,
						fmt.Sprintf("line exceeds %d bytes", maxLineSize), nil))
			} else {
				parseInto(result, source, string(raw))
			}
		}
		if err == io.EOF {
			return result, nil
		}
		if err != nil {
			return result, errors.WrapIO("read", source, err)
		}
	}
}

// readLine returns the next line without its terminator and the number of
// bytes consumed. A line longer than maxLineSize is drained and reported
// with tooLong set and no content.
func readLine(reader *bufio.Reader) (line []byte, n int, tooLong bool, err error) {
	for {
		chunk, readErr := reader.ReadSlice('\n')
		n += len(chunk)
		if !tooLong {
			line = append(line, chunk...)
			if len(bytes.TrimSuffix(line, []byte("\n"))) > maxLineSize {
				tooLong = true
				line = nil
			}
		}
		if readErr == bufio.ErrBufferFull {
			continue
		}
		return bytes.TrimSuffix(line, []byte("\n")), n, tooLong, readErr
	}
}

func parseInto(result *Result, source, line string) {
	line = strings.TrimSuffix(line, "\r")
	if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return
	}

	course, err := parseLine(line)
	if err != nil {
		result.Diagnostics = append(result.Diagnostics,
			errors.NewParseError(string(FormatLines), source, result.Lines, err.Error(), nil))
		return
	}
	result.Candidates = append(result.Candidates, course)
}

// parseLine splits one non-blank line into a candidate course.
func parseLine(line string) (courses.Course, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return courses.Course{}, errors.New("missing course title")
	}

	course := courses.Course{
		ID:    strings.TrimSpace(fields[0]),
		Title: strings.TrimSpace(fields[1]),
	}
	if course.Title == "" {
		return courses.Course{}, errors.New("missing course title")
	}
	if course.ID == "" {
		return courses.Course{}, errors.New("missing course number")
	}

	for _, field := range fields[2:] {
		if prereq := strings.TrimSpace(field); prereq != "" {
			course.Prerequisites = append(course.Prerequisites, prereq)
		}
	}
	return course, nil
}
