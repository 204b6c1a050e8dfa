// internal/output/gff.go
package output

import (
	"io"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"

	"locusfind/internal/locus"
)

// idTag names the identifier attribute for each annotation format.
func idTag(f locus.Format) string {
	if f == locus.Annotation {
		return "locus_tag"
	}
	return "Name"
}

// ToGFF renders a found lookup as a single-base feature at the queried
// position, typed like the feature that contains it. It returns nil for
// lookups without a containing feature.
func ToGFF(lk locus.Lookup, f locus.Format) *gff.Feature {
	if !lk.Found {
		return nil
	}
	strand := seq.None
	switch {
	case lk.Feature.Strand > 0:
		strand = seq.Plus
	case lk.Feature.Strand < 0:
		strand = seq.Minus
	}
	g := &gff.Feature{
		SeqName:    lk.Feature.SeqID,
		Source:     GFFSource,
		Feature:    lk.Feature.Type,
		FeatStart:  lk.Position - 1, // biogo stores zero-based starts
		FeatEnd:    lk.Position,
		FeatStrand: strand,
		FeatFrame:  gff.NoFrame,
	}
	if lk.ID != "" {
		g.FeatAttributes = gff.Attributes{{Tag: idTag(f), Value: lk.ID}}
	}
	return g
}

// StreamGFF writes one GFF line per found lookup arriving on in.
func StreamGFF(w io.Writer, in <-chan locus.Lookup, f locus.Format, header bool) error {
	gw := gff.NewWriter(w, 60, header)
	for lk := range in {
		g := ToGFF(lk, f)
		if g == nil {
			continue
		}
		if _, err := gw.Write(g); err != nil {
			return err
		}
	}
	return nil
}
