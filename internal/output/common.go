// internal/output/common.go
package output

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatGFF   = "gff"
)

// Formats lists the accepted --output values.
var Formats = []string{FormatText, FormatJSON, FormatJSONL, FormatGFF}

// TSVHeader is the optional header row of text output.
const TSVHeader = "position\tlocus"

// GFFSource fills column 2 of GFF output.
const GFFSource = "locusfind"
