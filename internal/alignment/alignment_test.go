package alignment

import (
	"reflect"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"ACGT", "ACGT", 100},
		{"ACGT", "ACGA", 75},
		{"ACGT", "TGCA", 0},
		{"ACGT", "ACG", 0}, // length mismatch degrades to 0
		{"", "", 0},
	}
	for _, tc := range tests {
		if got := Score(tc.a, tc.b); got != tc.want {
			t.Errorf("Score(%q,%q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
		if got := Identity(tc.a, tc.b); got != tc.want {
			t.Errorf("Identity(%q,%q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestGapsAndMismatches(t *testing.T) {
	gaps, mm := GapsAndMismatches("ACGTAA", "AGGT")
	if gaps != 2 || !reflect.DeepEqual(mm, []int{1}) {
		t.Fatalf("got gaps=%d mm=%v", gaps, mm)
	}
	gaps, mm = GapsAndMismatches("AC", "TCGG")
	if gaps != 2 || !reflect.DeepEqual(mm, []int{0}) {
		t.Fatalf("got gaps=%d mm=%v", gaps, mm)
	}
	gaps, mm = GapsAndMismatches("ACGT", "ACGT")
	if gaps != 0 || mm != nil {
		t.Fatalf("identical: gaps=%d mm=%v", gaps, mm)
	}
}

func TestAlign(t *testing.T) {
	r := New().Align("GGCC", "GGCA")
	want := Result{
		Score: 75, Identity: 75, Gaps: 0, Mismatches: []int{3},
		ReferenceLength: 4, SampleLength: 4, GCReference: 100, GCSample: 75,
	}
	if !reflect.DeepEqual(r, want) {
		t.Fatalf("Align = %+v, want %+v", r, want)
	}
	unequal := New().Align("GGCC", "GG")
	if unequal.Score != 0 || unequal.Gaps != 2 || unequal.Mismatches != nil {
		t.Fatalf("unequal = %+v", unequal)
	}
}

func TestAlignBatch(t *testing.T) {
	out := New().AlignBatch([]Pair{{"AA", "AA"}, {"AA", "AT"}})
	if len(out) != 2 || out[0].Score != 100 || out[1].Score != 50 {
		t.Fatalf("batch = %+v", out)
	}
}
