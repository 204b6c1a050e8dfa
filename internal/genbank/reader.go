// internal/genbank/reader.go
package genbank

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrFormat is wrapped by structural errors in the flat file.
var ErrFormat = errors.New("malformed GenBank record")

// SyntaxError is a structural error at a 1-based line. It matches
// ErrFormat under errors.Is.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("genbank: line %d: %v: %s", e.Line, ErrFormat, e.Msg)
}

func (e *SyntaxError) Is(target error) bool { return target == ErrFormat }

const (
	featureIndent   = 5  // column of a feature key
	qualifierIndent = 21 // column of locations and qualifiers
)

// Record is one LOCUS ... // entry.
type Record struct {
	Name      string
	Length    int
	Accession string
	Version   string
	Features  []Feature
}

// ID returns the versioned accession when present, else the LOCUS name.
func (r *Record) ID() string {
	if r.Version != "" {
		return r.Version
	}
	return r.Name
}

// Feature is one entry of the FEATURES table. Line is the 1-based line
// of the feature key. The location is kept as text and parsed on demand
// by Span, so features nobody asks about never fail the read.
type Feature struct {
	Key        string
	Location   string
	Qualifiers map[string][]string
	Line       int
}

// Span parses the feature location.
func (f *Feature) Span() (Span, error) { return ParseLocation(f.Location) }

// Qualifier returns the first value of a qualifier.
func (f *Feature) Qualifier(name string) (string, bool) {
	vs := f.Qualifiers[name]
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Reader streams records from a GenBank flat file. Text before the
// first LOCUS line (release headers) is ignored.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	const maxLine = 16 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Reader{sc: sc}
}

func (r *Reader) next() (string, bool) {
	if !r.sc.Scan() {
		return "", false
	}
	r.line++
	return strings.TrimRight(r.sc.Text(), "\r"), true
}

func (r *Reader) scanErr() error {
	if err := r.sc.Err(); err != nil {
		return fmt.Errorf("genbank: line %d: %w", r.line+1, err)
	}
	return nil
}

// Read returns the next record, or io.EOF when no LOCUS line remains.
func (r *Reader) Read() (*Record, error) {
	var line string
	for {
		l, ok := r.next()
		if !ok {
			if err := r.scanErr(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		if strings.HasPrefix(l, "LOCUS") {
			line = l
			break
		}
	}

	rec := &Record{}
	cols := strings.Fields(line)
	if len(cols) > 1 {
		rec.Name = cols[1]
	}
	if len(cols) > 2 {
		rec.Length, _ = strconv.Atoi(cols[2])
	}

	var (
		inFeatures bool
		ft         *featureBuilder
	)
	flush := func() {
		if ft != nil {
			rec.Features = append(rec.Features, ft.build())
			ft = nil
		}
	}

	for {
		line, ok := r.next()
		if !ok {
			if err := r.scanErr(); err != nil {
				return nil, err
			}
			return nil, &SyntaxError{Line: r.line, Msg: fmt.Sprintf("record %q not terminated by //", rec.Name)}
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "//") {
			flush()
			return rec, nil
		}

		if line[0] != ' ' {
			// top-level keyword
			flush()
			kw, rest, _ := strings.Cut(line, " ")
			inFeatures = kw == "FEATURES"
			switch kw {
			case "ACCESSION":
				if f := strings.Fields(rest); len(f) > 0 {
					rec.Accession = f[0]
				}
			case "VERSION":
				if f := strings.Fields(rest); len(f) > 0 {
					rec.Version = f[0]
				}
			}
			continue
		}
		if !inFeatures {
			continue
		}

		indent := len(line) - len(strings.TrimLeft(line, " "))
		body := strings.TrimSpace(line)
		switch {
		case indent < qualifierIndent:
			if indent != featureIndent {
				return nil, &SyntaxError{Line: r.line, Msg: fmt.Sprintf("feature key at column %d", indent+1)}
			}
			flush()
			key, loc, _ := strings.Cut(body, " ")
			ft = &featureBuilder{
				f:   Feature{Key: key, Location: strings.TrimSpace(loc), Qualifiers: map[string][]string{}, Line: r.line},
				qix: -1,
			}
		case ft == nil:
			return nil, &SyntaxError{Line: r.line, Msg: "qualifier outside a feature"}
		default:
			ft.add(body)
		}
	}
}

// featureBuilder accumulates the continuation lines of one feature.
type featureBuilder struct {
	f     Feature
	names []string
	raw   []string
	qix   int // index into names/raw of the open qualifier, -1 while still in the location
}

func (b *featureBuilder) add(body string) {
	open := b.qix >= 0 && isOpenQuote(b.raw[b.qix])
	switch {
	case open:
		b.raw[b.qix] += "\n" + body
	case strings.HasPrefix(body, "/"):
		name, val, hasVal := strings.Cut(body[1:], "=")
		if !hasVal {
			val = ""
		}
		b.names = append(b.names, name)
		b.raw = append(b.raw, val)
		b.qix = len(b.names) - 1
	case b.qix < 0:
		b.f.Location += body
	default:
		b.raw[b.qix] += "\n" + body
	}
}

func (b *featureBuilder) build() Feature {
	for i, name := range b.names {
		b.f.Qualifiers[name] = append(b.f.Qualifiers[name], qualifierValue(name, b.raw[i]))
	}
	return b.f
}

// isOpenQuote reports whether a raw qualifier value starts a quoted
// string that has not been closed yet. Embedded quotes are doubled.
func isOpenQuote(raw string) bool {
	if !strings.HasPrefix(raw, `"`) {
		return false
	}
	n := strings.Count(raw, `"`)
	return n%2 == 1 || !strings.HasSuffix(raw, `"`)
}

func qualifierValue(name, raw string) string {
	sep := " "
	if name == "translation" {
		sep = ""
	}
	v := strings.ReplaceAll(raw, "\n", sep)
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		v = strings.ReplaceAll(v[1:len(v)-1], `""`, `"`)
	}
	return v
}
