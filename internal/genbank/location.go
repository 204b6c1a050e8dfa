// internal/genbank/location.go
package genbank

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrLocation is wrapped by every location parse failure.
var ErrLocation = errors.New("bad feature location")

// Strand of a feature span.
type Strand int8

const (
	Plus  Strand = 1
	Minus Strand = -1
)

// Span is the extent of a location: Start is zero-based, End is the
// one-based last base, so the span covers [Start, End). Compound
// locations (join, order) span from their lowest start to their highest
// end.
type Span struct {
	Start  int
	End    int
	Strand Strand
}

// ParseLocation parses an INSDC feature location expression, e.g.
// "complement(join(<1..200,300..>410))".
func ParseLocation(expr string) (Span, error) {
	p := &locParser{s: strings.Join(strings.Fields(expr), "")}
	if p.s == "" {
		return Span{}, fmt.Errorf("%w: empty", ErrLocation)
	}
	sp, err := p.location()
	if err != nil {
		return Span{}, fmt.Errorf("%w %q: %v", ErrLocation, expr, err)
	}
	if p.i != len(p.s) {
		return Span{}, fmt.Errorf("%w %q: trailing %q", ErrLocation, expr, p.s[p.i:])
	}
	return sp, nil
}

type locParser struct {
	s string
	i int
}

func (p *locParser) consume(prefix string) bool {
	if strings.HasPrefix(p.s[p.i:], prefix) {
		p.i += len(prefix)
		return true
	}
	return false
}

func (p *locParser) location() (Span, error) {
	switch {
	case p.consume("complement("):
		sp, err := p.location()
		if err != nil {
			return sp, err
		}
		if !p.consume(")") {
			return sp, errors.New("unclosed complement(")
		}
		sp.Strand = -sp.Strand
		return sp, nil
	case p.consume("join("), p.consume("order("), p.consume("bond("):
		return p.list()
	}
	return p.simple()
}

func (p *locParser) list() (Span, error) {
	var out Span
	for n := 0; ; n++ {
		sp, err := p.location()
		if err != nil {
			return out, err
		}
		if n == 0 {
			out = sp
		} else {
			out.Start = min(out.Start, sp.Start)
			out.End = max(out.End, sp.End)
			if sp.Strand != out.Strand {
				out.Strand = Plus
			}
		}
		if p.consume(",") {
			continue
		}
		if p.consume(")") {
			return out, nil
		}
		return out, errors.New("expected ',' or ')'")
	}
}

// simple parses [ACC:]pos, pos..pos, pos^pos or pos.pos, where a pos
// may itself be a bracketed range "(a.b)".
func (p *locParser) simple() (Span, error) {
	// remote reference, e.g. J00194.1:100..202
	if j := strings.IndexByte(p.s[p.i:], ':'); j >= 0 {
		if k := strings.IndexAny(p.s[p.i:], ",()"); k < 0 || j < k {
			p.i += j + 1
		}
	}

	aLo, aHi, err := p.position()
	if err != nil {
		return Span{}, err
	}
	switch {
	case p.consume(".."):
		_, b, err := p.position()
		if err != nil {
			return Span{}, err
		}
		if b < aLo {
			return Span{}, fmt.Errorf("end %d before start %d", b, aLo)
		}
		return Span{Start: aLo - 1, End: b, Strand: Plus}, nil
	case p.consume("^"):
		if _, _, err := p.position(); err != nil {
			return Span{}, err
		}
		// a site between two bases has no extent
		return Span{Start: aLo, End: aLo, Strand: Plus}, nil
	case p.consume("."):
		_, b, err := p.position()
		if err != nil {
			return Span{}, err
		}
		if b < aLo {
			return Span{}, fmt.Errorf("end %d before start %d", b, aLo)
		}
		return Span{Start: aLo - 1, End: b, Strand: Plus}, nil
	}
	return Span{Start: aLo - 1, End: aHi, Strand: Plus}, nil
}

// position parses one base number, optionally prefixed by '<' or '>',
// or a bracketed "(a.b)" somewhere between a and b. lo is the value used
// when the position starts a range, hi when it ends one.
func (p *locParser) position() (lo, hi int, err error) {
	if p.consume("(") {
		if lo, err = p.number(); err != nil {
			return 0, 0, err
		}
		if !p.consume(".") {
			return 0, 0, errors.New("expected '.' in bracketed position")
		}
		if hi, err = p.number(); err != nil {
			return 0, 0, err
		}
		if !p.consume(")") {
			return 0, 0, errors.New("unclosed bracketed position")
		}
		if hi < lo {
			return 0, 0, fmt.Errorf("bracketed position (%d.%d) is reversed", lo, hi)
		}
		return lo, hi, nil
	}
	if p.i < len(p.s) && (p.s[p.i] == '<' || p.s[p.i] == '>') {
		p.i++
	}
	n, err := p.number()
	return n, n, err
}

func (p *locParser) number() (int, error) {
	j := p.i
	for j < len(p.s) && p.s[j] >= '0' && p.s[j] <= '9' {
		j++
	}
	if j == p.i {
		if p.i < len(p.s) {
			return 0, fmt.Errorf("expected position at %q", p.s[p.i:])
		}
		return 0, errors.New("expected position at end")
	}
	n, err := strconv.Atoi(p.s[p.i:j])
	if err != nil {
		return 0, err
	}
	p.i = j
	return n, nil
}
