// Package gff reads tab-delimited feature files (GFF2/GFF3/GTF layout)
// record by record. It does not interpret the columns beyond what the
// accessors below need; numeric parsing is left to callers.
package gff

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// Column indices of a feature line.
// http://www.sequenceontology.org/gff3.shtml
const (
	FieldSeqid = iota
	FieldSource
	FieldType
	FieldStart
	FieldEnd
	FieldScore
	FieldStrand
	FieldPhase
	FieldAttributes

	NumFields
)

// CommentMarker marks comment and directive lines when found anywhere in
// the first column.
const CommentMarker = "#"

// fastaDirective ends the feature section of a GFF3 file.
const fastaDirective = "##FASTA"

// Record is one tab-split line. Line is 1-based.
type Record struct {
	Line   int
	Fields []string
}

// IsComment reports whether the first column carries the comment marker.
func (r Record) IsComment() bool {
	return len(r.Fields) > 0 && strings.Contains(r.Fields[0], CommentMarker)
}

// Complete reports whether the record has all nine columns.
func (r Record) Complete() bool { return len(r.Fields) >= NumFields }

func (r Record) field(i int) string {
	if i < len(r.Fields) {
		return r.Fields[i]
	}
	return ""
}

func (r Record) Seqid() string      { return r.field(FieldSeqid) }
func (r Record) Type() string       { return r.field(FieldType) }
func (r Record) Start() string      { return r.field(FieldStart) }
func (r Record) End() string        { return r.field(FieldEnd) }
func (r Record) Attributes() string { return r.field(FieldAttributes) }

// Reader yields records in file order. Blank lines are skipped; a
// ##FASTA directive is treated as end of input.
type Reader struct {
	cr   *csv.Reader
	done bool
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return &Reader{cr: cr}
}

// Read returns the next record, or io.EOF.
func (r *Reader) Read() (Record, error) {
	if r.done {
		return Record{}, io.EOF
	}
	fields, err := r.cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			r.done = true
		}
		return Record{}, err
	}
	line, _ := r.cr.FieldPos(0)
	if strings.TrimSpace(fields[0]) == fastaDirective {
		r.done = true
		return Record{}, io.EOF
	}
	return Record{Line: line, Fields: fields}, nil
}

// AttrValue returns the text after the first occurrence of key+"=" in
// attrs, up to the next ';'. The match is a plain substring search, so
// "Name" also matches inside "gene_Name=".
func AttrValue(attrs, key string) (string, bool) {
	tag := key + "="
	i := strings.Index(attrs, tag)
	if i < 0 {
		return "", false
	}
	v := attrs[i+len(tag):]
	if j := strings.IndexByte(v, ';'); j >= 0 {
		v = v[:j]
	}
	return v, true
}
