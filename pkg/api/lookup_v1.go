// pkg/api/lookup_v1.go
package api

// LookupV1 is the stable JSON/JSONL schema for one coordinate lookup.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type LookupV1 struct {
	Position int    `json:"position"`
	Found    bool   `json:"found"`
	ID       string `json:"id"`     // "" when not found or unnamed
	Format   string `json:"format"` // "gff" | "gb"

	// Containing feature, when found. Coordinates are as read from the
	// source: GFF columns 4/5, or GenBank zero-based start / one-based end.
	SeqID  string `json:"seq_id,omitempty"`
	Type   string `json:"type,omitempty"`
	Start  int    `json:"start,omitempty"`
	End    int    `json:"end,omitempty"`
	Strand string `json:"strand,omitempty"` // "+" | "-"
	Line   int    `json:"line,omitempty"`
}
