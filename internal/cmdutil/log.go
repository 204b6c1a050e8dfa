// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Logger writes prefixed diagnostic lines to the caller's stderr.
// Quiet silences warnings; Verbose enables debug lines.
type Logger struct {
	W       io.Writer
	Quiet   bool
	Verbose bool
}

func (l Logger) Warnf(format string, a ...any) {
	if l.Quiet || l.W == nil {
		return
	}
	_, _ = fmt.Fprintf(l.W, "WARN: "+format+"\n", a...)
}

func (l Logger) Debugf(format string, a ...any) {
	if !l.Verbose || l.W == nil {
		return
	}
	_, _ = fmt.Fprintf(l.W, "DEBUG: "+format+"\n", a...)
}
