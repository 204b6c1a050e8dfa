// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"locusfind/internal/locus"
	"locusfind/pkg/api"
)

// ToAPILookup converts a lookup to the stable wire schema (v1).
func ToAPILookup(lk locus.Lookup, f locus.Format) api.LookupV1 {
	v := api.LookupV1{
		Position: lk.Position,
		Found:    lk.Found,
		ID:       lk.ID,
		Format:   f.Name(),
	}
	if lk.Found {
		ft := lk.Feature
		v.SeqID = ft.SeqID
		v.Type = ft.Type
		v.Start = ft.Start
		v.End = ft.End
		v.Strand = strandSymbol(ft.Strand)
		v.Line = ft.Line
	}
	return v
}

func strandSymbol(s int8) string {
	switch {
	case s > 0:
		return "+"
	case s < 0:
		return "-"
	}
	return ""
}

// WriteJSON writes a single JSON array of v1 lookups (pretty-indented).
func WriteJSON(w io.Writer, list []locus.Lookup, f locus.Format) error {
	out := make([]api.LookupV1, 0, len(list))
	for _, lk := range list {
		out = append(out, ToAPILookup(lk, f))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
