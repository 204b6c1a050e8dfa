// internal/writers/lookup.go
package writers

import (
	"fmt"
	"io"

	"locusfind/internal/locus"
	"locusfind/internal/output"
)

// streamFunc consumes in until it is closed.
type streamFunc func(w io.Writer, in <-chan locus.Lookup, f locus.Format, header bool) error

// lookupWriters maps an output format to its writer.
var lookupWriters = map[string]streamFunc{
	output.FormatText:  output.StreamText,
	output.FormatGFF:   output.StreamGFF,
	output.FormatJSONL: streamJSONL,
	output.FormatJSON: func(w io.Writer, in <-chan locus.Lookup, f locus.Format, _ bool) error {
		var buf []locus.Lookup
		for lk := range in {
			buf = append(buf, lk)
		}
		return output.WriteJSON(w, buf, f)
	},
}

// StartLookupWriter spins up a writer goroutine for lookups. Close the
// returned channel when done, then receive the writer's error.
func StartLookupWriter(out io.Writer, format string, f locus.Format, header bool, bufSize int) (chan<- locus.Lookup, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan locus.Lookup, bufSize)
	errCh := make(chan error, 1)

	go func() {
		fn, ok := lookupWriters[format]
		if !ok {
			for range in {
			}
			errCh <- fmt.Errorf("unknown output format %q (no writer registered)", format)
			return
		}
		err := fn(out, in, f, header)
		if err != nil {
			// keep the producer from blocking on a dead writer
			for range in {
			}
		}
		errCh <- err
	}()

	return in, errCh
}
