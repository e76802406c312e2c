// internal/dataset/dataset_test.go
package dataset

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"genescan/internal/seq"
)

const sampleCSV = `patient_id,gene_type,sequence,is_mutated,mutation_count,health_status
P2,TP53,acgtacgt,False,0,healthy
P1,BRCA1,AAAAAAAA,False,0,healthy
P1,BRCA1,AAAATAAA,True,1,monitor
P1,BRCA1,TTTTTTTT,True,8,at_risk
P3,KRAS,CCCCGGGG,True,2,monitor
`

func TestReadCSVGroup(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 || rows[0].Sequence != "ACGTACGT" || rows[3].MutationCount != 8 {
		t.Fatalf("rows = %+v", rows)
	}
	recs := Group(rows, "in.csv")
	if len(recs) != 2 {
		t.Fatalf("P3 has no reference and must be skipped, got %d records", len(recs))
	}
	p1, p2 := recs[0], recs[1]
	if p1.PatientID != "P1" || p2.PatientID != "P2" {
		t.Fatalf("records not sorted: %s, %s", p1.PatientID, p2.PatientID)
	}
	if p1.Reference != "AAAAAAAA" || p1.Sample != "AAAATAAA" || !*p1.KnownMutated {
		t.Fatalf("P1 = %+v", p1)
	}
	// no mutated row: the reference doubles as the sample
	if p2.Sample != p2.Reference || *p2.KnownMutated || p2.Source != "in.csv" {
		t.Fatalf("P2 = %+v", p2)
	}
}

func TestReadCSVErrors(t *testing.T) {
	cases := map[string]string{
		"missing column": "patient_id,gene_type,sequence\nP1,X,ACGT\n",
		"bad base":       "patient_id,gene_type,sequence,is_mutated\nP1,X,ACNT,false\n",
		"bad bool":       "patient_id,gene_type,sequence,is_mutated\nP1,X,ACGT,maybe\n",
		"empty id":       "patient_id,gene_type,sequence,is_mutated\n,X,ACGT,false\n",
	}
	for name, in := range cases {
		if _, err := ReadCSV(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	_, err := ReadCSV(strings.NewReader(cases["bad base"]))
	if !errors.Is(err, ErrInvalidBase) {
		t.Fatalf("want ErrInvalidBase, got %v", err)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	rows := NewGenerator(7).Patients(5, 30)
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatal(err)
	}
	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, rows) {
		t.Fatalf("round trip mismatch")
	}
}

const sampleFASTA = `>P1|TP53|reference some description
ACGT
acgt
>P1|TP53|sample
ACGT
ACGA
>P2|EGFR
GGGG
`

func TestReadFASTA(t *testing.T) {
	rows, err := ReadFASTA(strings.NewReader(sampleFASTA))
	if err != nil {
		t.Fatal(err)
	}
	want := []Row{
		{PatientID: "P1", GeneType: "TP53", Sequence: "ACGTACGT"},
		{PatientID: "P1", GeneType: "TP53", Sequence: "ACGTACGA", IsMutated: true},
		{PatientID: "P2", GeneType: "EGFR", Sequence: "GGGG"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("rows = %+v", rows)
	}
	if _, err := ReadFASTA(strings.NewReader("ACGT\n")); err == nil {
		t.Fatal("sequence before header must fail")
	}
	if _, err := ReadFASTA(strings.NewReader(">P|G|other\nACGT\n")); err == nil {
		t.Fatal("unknown role must fail")
	}
}

func TestWriteFASTAWraps(t *testing.T) {
	var buf bytes.Buffer
	rows := []Row{{PatientID: "P1", GeneType: "MYC", Sequence: "ACGTACGTAC", IsMutated: true}}
	if err := WriteFASTA(&buf, rows, 4); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != ">P1|MYC|sample\nACGT\nACGT\nAC\n" {
		t.Fatalf("got %q", got)
	}
	back, err := ReadFASTA(&buf)
	if err != nil || !reflect.DeepEqual(back, rows) {
		t.Fatalf("read back %+v, %v", back, err)
	}
}

func writeGz(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	gw.Close()
	fh.Close()
	return path
}

func TestLoadGzipFASTA(t *testing.T) {
	path := writeGz(t, "in.fa.gz", sampleFASTA)
	recs, err := Loader{}.Load(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 || recs[0].Sample != "ACGTACGA" || recs[1].PatientID != "P2" {
		t.Fatalf("records = %+v", recs)
	}
}

func TestLoadGzipMagicWithoutSuffix(t *testing.T) {
	// gzip detected by content, format by the remaining name
	path := writeGz(t, "in.csv", sampleCSV)
	recs, err := Loader{}.Load(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("records = %d", len(recs))
	}
}

func TestLoadStdin(t *testing.T) {
	orig := stdin
	stdin = strings.NewReader(sampleCSV)
	defer func() { stdin = orig }()

	recs, err := Loader{}.Load(context.Background(), "-")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 || recs[0].Source != "-" {
		t.Fatalf("records = %+v", recs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Loader{}.Load(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want ErrNotExist, got %v", err)
	}
}

func TestDetectFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"a.csv":              FormatCSV,
		"a.FA":               FormatFASTA,
		"a.fasta.gz":         FormatFASTA,
		"-":                  FormatCSV,
		"sqlite:///tmp/x.db": FormatSQL,
		"postgres://h/db":    FormatSQL,
	} {
		if got := DetectFormat(in); got != want {
			t.Errorf("%s: got %s want %s", in, got, want)
		}
	}
}

func TestLimit(t *testing.T) {
	recs := make([]Record, 5)
	if len(Limit(recs, 0)) != 5 || len(Limit(recs, 2)) != 2 || len(Limit(recs, 9)) != 5 {
		t.Fatal("limit")
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	a := NewGenerator(42).Patients(20, 100)
	b := NewGenerator(42).Patients(20, 100)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different datasets")
	}
}

func TestGeneratorPatients(t *testing.T) {
	rows := NewGenerator(1).Patients(400, 200)
	refs := map[string]Row{}
	mutated := 0
	for _, r := range rows {
		if len(r.Sequence) != 200 {
			t.Fatalf("length %d", len(r.Sequence))
		}
		if !r.IsMutated {
			refs[r.PatientID] = r
			continue
		}
		mutated++
		ref := refs[r.PatientID]
		d, err := seq.Hamming(ref.Sequence, r.Sequence)
		if err != nil || d != r.MutationCount {
			t.Fatalf("%s: hamming %d, recorded %d", r.PatientID, d, r.MutationCount)
		}
		want := "monitor"
		if d > AtRiskMutations {
			want = "at_risk"
		}
		if r.HealthStatus != want || r.GeneType != ref.GeneType {
			t.Fatalf("%+v", r)
		}
	}
	if len(refs) != 400 || refs["PATIENT_0000"].HealthStatus != "healthy" {
		t.Fatalf("refs = %d", len(refs))
	}
	if frac := float64(mutated) / 400; frac < 0.6 || frac > 0.8 {
		t.Fatalf("mutated fraction %.2f", frac)
	}
}
