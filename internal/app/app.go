// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"locusfind/internal/annotio"
	"locusfind/internal/cli"
	"locusfind/internal/cmdutil"
	"locusfind/internal/locus"
	"locusfind/internal/pipeline"
	"locusfind/internal/positions"
	"locusfind/internal/writers"
)

// flush reports the exit code for a final flush of outw.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}

func usageError(stderr io.Writer, err error) int {
	_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	cli.Usage(stderr)
	return 2
}

// readPositions gathers the coordinates from --position and then
// --positions-file.
func readPositions(o cli.Options) ([]int, error) {
	var out []int
	if o.Position != "" {
		ps, err := positions.Parse(o.Position)
		if err != nil {
			return nil, fmt.Errorf("--position: %w", err)
		}
		out = append(out, ps...)
	}
	if o.PositionsFile != "" {
		rc, err := annotio.Open(o.PositionsFile)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		ps, err := positions.Read(rc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.PositionsFile, err)
		}
		out = append(out, ps...)
	}
	return out, nil
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	opts, err := cli.ParseArgs(argv, outw)
	if errors.Is(err, cli.ErrPrintedAndExitOK) {
		return flush(outw, stderr, 0)
	}
	if err != nil {
		return usageError(stderr, err)
	}

	log := cmdutil.Logger{W: stderr, Quiet: opts.Quiet, Verbose: opts.Verbose}
	for _, w := range opts.Warnings {
		log.Warnf("%s", w)
	}

	pos, err := readPositions(opts)
	if err != nil {
		return usageError(stderr, err)
	}

	format, err := locus.ByName(opts.Format)
	if err != nil {
		return usageError(stderr, err)
	}

	path, cleanup, err := annotio.Spool(opts.Input)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 3
	}
	defer cleanup()

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	log.Debugf("format=%s input=%s positions=%d threads=%d output=%s", format.Name(), opts.Input, len(pos), thr, opts.Output)

	inCh, writeErr := writers.StartLookupWriter(outw, opts.Output, format, opts.Header, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	found, perr := cmdutil.RunStream(
		ctx,
		pipeline.Config{Threads: thr},
		pos,
		pipeline.FileResolver{Format: format, Path: path},
		func(lk locus.Lookup) error {
			select {
			case inCh <- lk:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if code := flush(outw, stderr, 0); code != 0 {
		return code
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", perr)
		return 3
	}
	log.Debugf("%d of %d coordinates inside a %s", found, len(pos), format.Label())
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
