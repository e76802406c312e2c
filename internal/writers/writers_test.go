// internal/writers/writers_test.go
package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"syscall"
	"testing"

	"genescan/internal/engine"
	"genescan/internal/output"
	"genescan/pkg/api"
)

func results(ids ...string) []engine.Result {
	out := make([]engine.Result, len(ids))
	for i, id := range ids {
		out[i] = engine.Result{PatientID: id, Status: engine.StatusMissingInput}
	}
	return out
}

func run(t *testing.T, w io.Writer, format string, opt Options, rs []engine.Result) error {
	t.Helper()
	in, done := StartResultWriter(w, format, opt)
	for _, r := range rs {
		in <- r
	}
	close(in)
	return <-done
}

func TestFormatsRegistered(t *testing.T) {
	if got := Formats(); !reflect.DeepEqual(got, []string{"json", "jsonl", "text"}) {
		t.Fatalf("formats = %v", got)
	}
}

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	err := run(t, &b, "nope-format", Options{BufSize: 1}, results("a", "b"))
	if err == nil || !strings.Contains(err.Error(), "unknown result format") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJSONReportSortedWithAnalyzers(t *testing.T) {
	var buf bytes.Buffer
	opt := Options{Sort: true, Analyzers: func() []engine.LogSummary {
		return []engine.LogSummary{{Name: "pattern", Total: 3}}
	}}
	if err := run(t, &buf, "json", opt, results("P3", "P1", "P2")); err != nil {
		t.Fatalf("writer err: %v", err)
	}
	var rep api.ReportV1
	if err := json.Unmarshal(buf.Bytes(), &rep); err != nil {
		t.Fatal(err)
	}
	var ids []string
	for _, r := range rep.Results {
		ids = append(ids, r.PatientID)
	}
	if !reflect.DeepEqual(ids, []string{"P1", "P2", "P3"}) || rep.Analyzers[0].Name != "pattern" {
		t.Fatalf("report = %+v", rep)
	}
}

func TestJSONLOneLinePerResult(t *testing.T) {
	for _, sorted := range []bool{false, true} {
		var buf bytes.Buffer
		if err := run(t, &buf, "jsonl", Options{Sort: sorted, BufSize: 2}, results("b", "a", "c")); err != nil {
			t.Fatal(err)
		}
		sc := bufio.NewScanner(&buf)
		var ids []string
		for sc.Scan() {
			var v api.PatientResultV1
			if err := json.Unmarshal(sc.Bytes(), &v); err != nil {
				t.Fatalf("line %q: %v", sc.Text(), err)
			}
			ids = append(ids, v.PatientID)
		}
		if len(ids) != 3 {
			t.Fatalf("sorted=%v ids=%v", sorted, ids)
		}
		if sorted && !reflect.DeepEqual(ids, []string{"a", "b", "c"}) {
			t.Fatalf("not sorted: %v", ids)
		}
	}
}

func TestTextHeader(t *testing.T) {
	for _, sorted := range []bool{false, true} {
		var buf bytes.Buffer
		if err := run(t, &buf, "text", Options{Sort: sorted, Header: true}, results("x", "y")); err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 3 || lines[0] != output.TSVHeader {
			t.Fatalf("sorted=%v lines=%q", sorted, lines)
		}
	}
}

type epipeWriter struct{}

func (epipeWriter) Write([]byte) (int, error) { return 0, syscall.EPIPE }

func TestBrokenPipeIsSuccess(t *testing.T) {
	for _, f := range Formats() {
		if err := run(t, epipeWriter{}, f, Options{Header: true}, results("a")); err != nil {
			t.Fatalf("%s: broken pipe surfaced: %v", f, err)
		}
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(fmt.Errorf("write: %w", syscall.EPIPE)) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatal("wrapped pipe errors not recognized")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(io.EOF) {
		t.Fatal("false positive")
	}
}
