package dxf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Tag is one DXF group: an integer group code line followed by a value line.
// The code tells how to interpret the value (8 = layer name, 10/20 = x/y
// coordinate, 62 = color, and so on).
type Tag struct {
	Code  int
	Value string
}

// Float parses the tag value as a coordinate or length.
func (t Tag) Float() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	if err != nil {
		return 0, fmt.Errorf("group %d: invalid numeric value %q", t.Code, t.Value)
	}
	return f, nil
}

// Int parses the tag value as an integer attribute.
func (t Tag) Int() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(t.Value))
	if err != nil {
		return 0, fmt.Errorf("group %d: invalid integer value %q", t.Code, t.Value)
	}
	return n, nil
}

// tagReader scans a DXF stream as a sequence of code/value pairs.
type tagReader struct {
	scanner *bufio.Scanner
	line    int
}

func newTagReader(r io.Reader) *tagReader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 1024*1024)
	return &tagReader{scanner: s}
}

// Next returns the next tag, or io.EOF at the end of the stream. Group codes
// are right-aligned in the file, so both lines are trimmed before use. A group
// code with no following value line is a truncated file and reported as such.
func (tr *tagReader) Next() (Tag, error) {
	if !tr.scanner.Scan() {
		if err := tr.scanner.Err(); err != nil {
			return Tag{}, err
		}
		return Tag{}, io.EOF
	}
	tr.line++
	codeText := strings.TrimSpace(tr.scanner.Text())

	code, err := strconv.Atoi(codeText)
	if err != nil {
		return Tag{}, fmt.Errorf("line %d: expected group code, got %q", tr.line, codeText)
	}

	if !tr.scanner.Scan() {
		if err := tr.scanner.Err(); err != nil {
			return Tag{}, err
		}
		return Tag{}, fmt.Errorf("line %d: group code %d has no value line", tr.line, code)
	}
	tr.line++

	return Tag{Code: code, Value: strings.TrimRight(tr.scanner.Text(), "\r")}, nil
}
