// internal/annotio/open.go
package annotio

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// stdin is swapped by tests.
var stdin io.Reader = os.Stdin

// readCloser closes every layer of a decompressing reader.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() error {
	var err error
	for _, c := range rc.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader over an annotation or coordinate file.
// "-" reads standard input. Gzip input is detected by its magic number
// (1F 8B) or a .gz suffix, for files and stdin alike.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		br := bufio.NewReader(stdin)
		if isGzip(br) {
			gr, err := gzip.NewReader(br)
			if err != nil {
				return nil, fmt.Errorf("stdin: %w", err)
			}
			return gr, nil
		}
		return io.NopCloser(br), nil
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(fh)
	if isGzip(br) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = fh.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &readCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return &readCloser{Reader: br, closers: []io.Closer{fh}}, nil
}

func isGzip(br *bufio.Reader) bool {
	sig, err := br.Peek(2)
	return err == nil && sig[0] == 0x1f && sig[1] == 0x8b
}
