// internal/locus/annotation.go
package locus

import (
	"context"
	"errors"
	"fmt"
	"io"

	"locusfind/internal/genbank"
)

// Annotation resolves against GenBank flat files: CDS features whose
// span includes the position at either end, identified by locus_tag.
//
// Feature coordinates are the parser's: Start zero-based, End the
// one-based last base. A CDS at 100..200 thus has Start 99 and covers
// positions 99 through 200 under the inclusive test.
var Annotation Format = annotation{}

type annotation struct{}

func (annotation) Name() string  { return "gb" }
func (annotation) Label() string { return "CDS" }

func (a annotation) Features(ctx context.Context, r io.Reader, yield func(Feature) error) error {
	gr := genbank.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := gr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var se *genbank.SyntaxError
			if errors.As(err, &se) {
				return &ParseError{Format: a.Name(), Line: se.Line, Err: fmt.Errorf("%w: %s", ErrMalformedRecord, se.Msg)}
			}
			return err
		}
		for i := range rec.Features {
			gf := &rec.Features[i]
			if gf.Key != "CDS" {
				continue
			}
			sp, err := gf.Span()
			if err != nil {
				return &ParseError{Format: a.Name(), Line: gf.Line, Field: "location", Err: fmt.Errorf("%w: %w", ErrParse, err)}
			}
			ft := Feature{
				SeqID:      rec.ID(),
				Type:       gf.Key,
				Start:      sp.Start,
				End:        sp.End,
				Strand:     int8(sp.Strand),
				Qualifiers: gf.Qualifiers,
				Line:       gf.Line,
			}
			if err := yield(ft); err != nil {
				return err
			}
		}
	}
}

// Contains includes both ends.
func (annotation) Contains(f Feature, pos int) (bool, error) {
	return f.Start <= pos && pos <= f.End, nil
}

// Identify returns the first locus_tag; a CDS without one is found but unnamed.
func (annotation) Identify(f Feature) (string, error) {
	if vs := f.Qualifiers["locus_tag"]; len(vs) > 0 {
		return vs[0], nil
	}
	return "", nil
}
