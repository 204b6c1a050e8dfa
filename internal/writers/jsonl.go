// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"locusfind/internal/locus"
	"locusfind/internal/output"
)

// Reuse a 64 KiB buffered writer across JSONL writers.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// streamJSONL writes each lookup as one JSON line (v1).
func streamJSONL(out io.Writer, in <-chan locus.Lookup, f locus.Format, _ bool) error {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := json.NewEncoder(bw)
	for lk := range in {
		if err := enc.Encode(output.ToAPILookup(lk, f)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
