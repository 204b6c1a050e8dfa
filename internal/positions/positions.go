// Package positions parses coordinate lists: one integer per line.
// Blank lines are ignored and coordinates below 1 are dropped without
// comment.
package positions

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Error reports a line that is not an integer.
type Error struct {
	Line int
	Text string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("position line %d: %q is not an integer", e.Line, e.Text)
}

func (e *Error) Unwrap() error { return e.Err }

// Parse splits s on newlines and returns the positive coordinates in order.
func Parse(s string) ([]int, error) {
	return Read(strings.NewReader(s))
}

// Read is Parse over a reader.
func Read(r io.Reader) ([]int, error) {
	var out []int
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		txt := strings.TrimSpace(sc.Text())
		if txt == "" {
			continue
		}
		v, err := strconv.Atoi(txt)
		if err != nil {
			return nil, &Error{Line: n, Text: txt, Err: err}
		}
		if v < 1 {
			continue
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
