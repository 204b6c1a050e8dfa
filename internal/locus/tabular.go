// internal/locus/tabular.go
package locus

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"locusfind/internal/gff"
)

// Tabular resolves against GFF-style feature files: gene and pseudogene
// records, strictly inside (start, end), identified by the Name attribute.
var Tabular Format = tabular{}

type tabular struct{}

func (tabular) Name() string  { return "gff" }
func (tabular) Label() string { return "gene" }

func isTabularCandidate(typ string) bool { return typ == "gene" || typ == "pseudogene" }

func (t tabular) Features(ctx context.Context, r io.Reader, yield func(Feature) error) error {
	gr := gff.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := gr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return &ParseError{Format: t.Name(), Line: pe.Line, Err: fmt.Errorf("%w: %w", ErrParse, pe.Err)}
			}
			return err
		}
		if rec.IsComment() {
			continue
		}
		if !rec.Complete() {
			return &ParseError{
				Format: t.Name(), Line: rec.Line,
				Err: fmt.Errorf("%w: %d of %d columns", ErrMalformedRecord, len(rec.Fields), gff.NumFields),
			}
		}
		if !isTabularCandidate(rec.Type()) {
			continue
		}
		start, err := t.atoi(rec, "start", rec.Start())
		if err != nil {
			return err
		}
		end, endErr := t.atoi(rec, "end", rec.End())
		ft := Feature{
			SeqID:      rec.Seqid(),
			Type:       rec.Type(),
			Start:      start,
			End:        end,
			Strand:     gffStrand(rec.Fields[gff.FieldStrand]),
			Attributes: rec.Attributes(),
			Line:       rec.Line,
			endErr:     endErr,
		}
		if err := yield(ft); err != nil {
			return err
		}
	}
}

func (t tabular) atoi(rec gff.Record, field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Format: t.Name(), Line: rec.Line, Field: field, Err: fmt.Errorf("%w: %w", ErrParse, err)}
	}
	return n, nil
}

// Contains excludes both ends. End is only consulted once Start lies
// below pos, so an unreadable end on a gene further along is not an error.
func (tabular) Contains(f Feature, pos int) (bool, error) {
	if f.Start >= pos {
		return false, nil
	}
	if f.endErr != nil {
		return false, f.endErr
	}
	return pos < f.End, nil
}

func (t tabular) Identify(f Feature) (string, error) {
	name, ok := gff.AttrValue(f.Attributes, "Name")
	if !ok {
		return "", &ParseError{Format: t.Name(), Line: f.Line, Field: "attributes", Err: fmt.Errorf("%w: no Name= attribute", ErrMalformedRecord)}
	}
	return name, nil
}

func gffStrand(s string) int8 {
	switch s {
	case "+":
		return 1
	case "-":
		return -1
	}
	return 0
}
