// internal/annotio/spool.go
package annotio

import (
	"fmt"
	"io"
	"os"
)

// Spool copies standard input to a temporary file so that it can be
// opened more than once. Paths other than "-" are returned unchanged
// with a no-op cleanup. The copy keeps any compression; Open detects it.
func Spool(path string) (string, func(), error) {
	if path != Stdin {
		return path, func() {}, nil
	}
	fh, err := os.CreateTemp("", "locusfind-stdin-*")
	if err != nil {
		return "", nil, fmt.Errorf("spool stdin: %w", err)
	}
	cleanup := func() { _ = os.Remove(fh.Name()) }
	if _, err := io.Copy(fh, stdin); err != nil {
		_ = fh.Close()
		cleanup()
		return "", nil, fmt.Errorf("spool stdin: %w", err)
	}
	if err := fh.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("spool stdin: %w", err)
	}
	return fh.Name(), cleanup, nil
}
