// internal/locus/errors.go
package locus

import (
	"errors"
	"fmt"
)

var (
	// ErrParse marks unreadable numbers and locations.
	ErrParse = errors.New("parse error")
	// ErrMalformedRecord marks records missing a required column or attribute.
	ErrMalformedRecord = errors.New("malformed record")
)

// ParseError locates a failure in an annotation source. Err wraps
// ErrParse or ErrMalformedRecord, plus any underlying cause.
type ParseError struct {
	Format string
	Line   int
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: line %d: %s: %v", e.Format, e.Line, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: line %d: %v", e.Format, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
