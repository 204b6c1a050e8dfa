package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"locusfind/internal/locus"
	"locusfind/pkg/api"
)

func send(in chan<- locus.Lookup, lks ...locus.Lookup) {
	for _, lk := range lks {
		in <- lk
	}
	close(in)
}

var sample = []locus.Lookup{
	{Position: 150, Result: locus.Result{Found: true, ID: "geneA", Feature: locus.Feature{SeqID: "chr1", Type: "gene", Start: 100, End: 200}}},
	{Position: 100},
}

func TestStartLookupWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartLookupWriter(&buf, "text", locus.Tabular, false, 4)
	send(in, sample...)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	if buf.String() != "150\tgeneA\n100\tNo gene found\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestStartLookupWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartLookupWriter(&buf, "json", locus.Tabular, false, 4)
	send(in, sample...)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	var got []api.LookupV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 2 {
		t.Fatalf("json: %v len=%d", err, len(got))
	}
}

func TestStartLookupWriter_JSONL(t *testing.T) {
	var buf bytes.Buffer
	in, done := StartLookupWriter(&buf, "jsonl", locus.Annotation, false, 4)
	send(in, sample...)
	if err := <-done; err != nil {
		t.Fatalf("writer err: %v", err)
	}
	sc := bufio.NewScanner(&buf)
	var n int
	for sc.Scan() {
		var v api.LookupV1
		if err := json.Unmarshal(sc.Bytes(), &v); err != nil {
			t.Fatalf("line %d: %v", n+1, err)
		}
		if v.Format != "gb" || v.Position != sample[n].Position {
			t.Fatalf("line %d: %+v", n+1, v)
		}
		n++
	}
	if n != 2 {
		t.Fatalf("want 2 lines, got %d", n)
	}
}

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	in, done := StartLookupWriter(&b, "nope-format", locus.Tabular, false, 1)
	send(in, sample...)
	err := <-done
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("want unknown output format error, got %v", err)
	}
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWriterErrorDrainsInput(t *testing.T) {
	in, done := StartLookupWriter(failWriter{err: syscall.EPIPE}, "text", locus.Tabular, false, 1)
	// more items than the buffer holds: must not block after the writer fails
	send(in, sample[0], sample[1], sample[0], sample[1], sample[0])
	err := <-done
	if !IsBrokenPipe(err) {
		t.Fatalf("want broken pipe, got %v", err)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(io.ErrClosedPipe) || !IsBrokenPipe(syscall.EPIPE) {
		t.Fatal("pipe errors not recognized")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(errors.New("x")) {
		t.Fatal("false positive")
	}
}
