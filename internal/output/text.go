// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"locusfind/internal/locus"
)

// FormatRow renders one lookup as "position<TAB>identifier", using the
// format's "No ... found" text when there is no identifier to show.
func FormatRow(lk locus.Lookup, f locus.Format) string {
	if !lk.Found || lk.ID == "" {
		return fmt.Sprintf("%d\t%s", lk.Position, locus.NotFoundText(f))
	}
	return fmt.Sprintf("%d\t%s", lk.Position, lk.ID)
}

// StreamText writes rows as they arrive on in.
func StreamText(w io.Writer, in <-chan locus.Lookup, f locus.Format, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for lk := range in {
		if _, err := fmt.Fprintln(w, FormatRow(lk, f)); err != nil {
			return err
		}
	}
	return nil
}
