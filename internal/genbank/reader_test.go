package genbank

import (
	"errors"
	"io"
	"strings"
	"testing"
)

const twoRecords = `GBBCT1.SEQ          Genetic Sequence Data Bank
                          Release 250.0

LOCUS       SCU49845     5028 bp    DNA             PLN       21-JUN-1999
DEFINITION  Saccharomyces cerevisiae TCP1-beta gene, partial cds, and Axl2p
            (AXL2) and Rev7p (REV7) genes, complete cds.
ACCESSION   U49845
VERSION     U49845.1  GI:1293613
FEATURES             Location/Qualifiers
     source          1..5028
                     /organism="Saccharomyces cerevisiae"
                     /db_xref="taxon:4932"
     CDS             <1..206
                     /codon_start=3
                     /product="TCP1-beta"
                     /locus_tag="SC_0001"
                     /translation="SSIYNGISTSGLDLNNGTIADMRQLGIVESYKLKRAVVSSASEA
                     AEVLLRVDNIIRARPRTANRQHM"
     gene            687..3158
                     /gene="AXL2"
     CDS             join(687..700,
                     710..3158)
                     /gene="AXL2"
                     /note="plasma membrane glycoprotein; ""AXL2""
                     homolog"
                     /pseudo
ORIGIN
        1 gatcctccat atacaacggt atctccacct caggtttaga tctcaacaac ggaaccattg
//
LOCUS       SECOND       100 bp    DNA     linear   BCT 01-JAN-2000
FEATURES             Location/Qualifiers
     CDS             complement(10..90)
                     /locus_tag="SEC_1"
                     /locus_tag="SEC_1b"
//
`

func readAll(t *testing.T, src string) []*Record {
	t.Helper()
	r := NewReader(strings.NewReader(src))
	var out []*Record
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		out = append(out, rec)
	}
}

func TestReaderRecords(t *testing.T) {
	recs := readAll(t, twoRecords)
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	r := recs[0]
	if r.Name != "SCU49845" || r.Length != 5028 || r.Accession != "U49845" || r.Version != "U49845.1" {
		t.Fatalf("bad header: %+v", r)
	}
	if r.ID() != "U49845.1" || recs[1].ID() != "SECOND" {
		t.Fatalf("bad ids: %q %q", r.ID(), recs[1].ID())
	}
	if len(r.Features) != 4 {
		t.Fatalf("want 4 features, got %d", len(r.Features))
	}
	keys := []string{"source", "CDS", "gene", "CDS"}
	for i, k := range keys {
		if r.Features[i].Key != k {
			t.Fatalf("feature %d: want %s got %s", i, k, r.Features[i].Key)
		}
	}
	if r.Features[1].Line != 13 {
		t.Fatalf("want CDS at line 13, got %d", r.Features[1].Line)
	}
}

func TestReaderQualifiers(t *testing.T) {
	recs := readAll(t, twoRecords)
	cds := recs[0].Features[1]
	if v, ok := cds.Qualifier("locus_tag"); !ok || v != "SC_0001" {
		t.Fatalf("locus_tag = %q,%v", v, ok)
	}
	if v, _ := cds.Qualifier("codon_start"); v != "3" {
		t.Fatalf("codon_start = %q", v)
	}
	if v, _ := cds.Qualifier("translation"); v != "SSIYNGISTSGLDLNNGTIADMRQLGIVESYKLKRAVVSSASEAAEVLLRVDNIIRARPRTANRQHM" {
		t.Fatalf("translation joined wrongly: %q", v)
	}

	axl := recs[0].Features[3]
	if axl.Location != "join(687..700,710..3158)" {
		t.Fatalf("location continuation: %q", axl.Location)
	}
	if v, _ := axl.Qualifier("note"); v != `plasma membrane glycoprotein; "AXL2" homolog` {
		t.Fatalf("note = %q", v)
	}
	if v, ok := axl.Qualifier("pseudo"); !ok || v != "" {
		t.Fatalf("pseudo = %q,%v", v, ok)
	}
	if _, ok := axl.Qualifier("locus_tag"); ok {
		t.Fatal("unexpected locus_tag")
	}

	sec := recs[1].Features[0]
	if got := sec.Qualifiers["locus_tag"]; len(got) != 2 || got[0] != "SEC_1" {
		t.Fatalf("repeated qualifier: %v", got)
	}
	sp, err := sec.Span()
	if err != nil || sp != (Span{9, 90, Minus}) {
		t.Fatalf("span = %+v, %v", sp, err)
	}
}

func TestReaderTruncated(t *testing.T) {
	src := "LOCUS       X 10 bp\nFEATURES             Location/Qualifiers\n     CDS             1..5\n"
	_, err := NewReader(strings.NewReader(src)).Read()
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("want ErrFormat, got %v", err)
	}
	var se *SyntaxError
	if !errors.As(err, &se) || se.Line != 3 {
		t.Fatalf("want SyntaxError at line 3, got %v", err)
	}
}

func TestReaderQualifierOutsideFeature(t *testing.T) {
	src := "LOCUS       X 10 bp\nFEATURES             Location/Qualifiers\n                     /locus_tag=\"x\"\n//\n"
	_, err := NewReader(strings.NewReader(src)).Read()
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("want ErrFormat, got %v", err)
	}
}

func TestReaderEmpty(t *testing.T) {
	if _, err := NewReader(strings.NewReader("")).Read(); !errors.Is(err, io.EOF) {
		t.Fatalf("want EOF, got %v", err)
	}
}
