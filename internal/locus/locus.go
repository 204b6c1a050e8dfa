// internal/locus/locus.go
package locus

import (
	"context"
	"errors"
	"fmt"
	"io"

	"locusfind/internal/annotio"
)

// Feature is a candidate feature yielded by a Format, in file order.
// Coordinates follow the format's own convention; only the Format's
// Contains interprets them. Attributes holds the raw GFF column 9;
// Qualifiers holds GenBank qualifiers.
type Feature struct {
	SeqID      string
	Type       string
	Start      int
	End        int
	Strand     int8 // 1, -1, or 0 when unknown
	Attributes string
	Qualifiers map[string][]string
	Line       int

	endErr error // End could not be read; reported only if Start qualifies
}

// Result is the outcome of one lookup. Found with an empty ID means the
// containing feature carries no identifier.
type Result struct {
	Found   bool
	ID      string
	Feature Feature
}

// Lookup pairs a queried coordinate with its result.
type Lookup struct {
	Position int
	Result
}

// Format is the capability shared by annotation formats.
type Format interface {
	// Name is the CLI/wire name: "gff" or "gb".
	Name() string
	// Label names the feature kind searched for, as in "No gene found".
	Label() string
	// Features streams the candidate features of r to yield in file
	// order. A non-nil error from yield stops the scan and is returned.
	Features(ctx context.Context, r io.Reader, yield func(Feature) error) error
	// Contains reports whether f covers the 1-based position pos. Its
	// error is a deferred parse failure of f.
	Contains(f Feature, pos int) (bool, error)
	// Identify extracts the identifier of a containing feature.
	Identify(f Feature) (string, error)
}

// NotFoundText is the text shown for a coordinate without a named feature.
func NotFoundText(f Format) string { return "No " + f.Label() + " found" }

// ByName returns the format registered under name.
func ByName(name string) (Format, error) {
	switch name {
	case Tabular.Name():
		return Tabular, nil
	case Annotation.Name():
		return Annotation, nil
	}
	return nil, fmt.Errorf("unknown annotation format %q", name)
}

var errStop = errors.New("stop")

// Resolve scans r and returns the first feature containing pos.
func Resolve(ctx context.Context, f Format, r io.Reader, pos int) (Result, error) {
	var res Result
	err := f.Features(ctx, r, func(ft Feature) error {
		ok, err := f.Contains(ft, pos)
		if err != nil || !ok {
			return err
		}
		id, err := f.Identify(ft)
		if err != nil {
			return err
		}
		res = Result{Found: true, ID: id, Feature: ft}
		return errStop
	})
	if err != nil && !errors.Is(err, errStop) {
		return Result{}, err
	}
	return res, nil
}

// ResolveFile opens path, resolves pos and closes the file again. Each
// call reads the file afresh.
func ResolveFile(ctx context.Context, f Format, path string, pos int) (Result, error) {
	rc, err := annotio.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer rc.Close()

	res, err := Resolve(ctx, f, rc, pos)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}
