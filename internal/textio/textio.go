// Package textio holds the small line-oriented readers shared by the
// puzzle parsers. Every error carries the 1-based line number it came from.
package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadInt is returned when a token is not a base-10 integer.
var ErrBadInt = errors.New("textio: malformed integer")

// Line is one input line with its 1-based position.
type Line struct {
	No   int
	Text string
}

// Lines reads r fully and returns its lines with trailing whitespace
// trimmed. Blank lines are kept so callers can use them as separators.
func Lines(r io.Reader) ([]Line, error) {
	var out []Line
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		out = append(out, Line{No: n, Text: strings.TrimRight(sc.Text(), " \t\r")})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("textio: read after line %d: %w", n, err)
	}

	return out, nil
}

// NonBlank filters out empty lines.
func NonBlank(lines []Line) []Line {
	out := lines[:0:0]
	for _, l := range lines {
		if strings.TrimSpace(l.Text) != "" {
			out = append(out, l)
		}
	}

	return out
}

// Blocks splits lines into groups separated by one or more blank lines.
func Blocks(lines []Line) [][]Line {
	var (
		out [][]Line
		cur []Line
	)
	for _, l := range lines {
		if strings.TrimSpace(l.Text) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}

	return out
}

// Int parses s as a signed base-10 integer.
func Int(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrBadInt)
	}

	return n, nil
}

// Ints splits s on sep and parses every field.
func Ints(s, sep string) ([]int, error) {
	fields := strings.Split(s, sep)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := Int(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}

// Errorf prefixes an error with the line it was found on.
func (l Line) Errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: "+format, append([]any{l.No}, args...)...)
}
