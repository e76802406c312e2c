package pattern

import (
	"reflect"
	"strings"
	"testing"
)

func TestFindAll(t *testing.T) {
	tests := []struct {
		s, p string
		want []int
	}{
		{"ATGATGATG", "ATG", []int{0, 3, 6}},
		{"AAAA", "AA", []int{0, 1, 2}}, // overlapping
		{"ACGT", "TT", nil},
		{"AC", "ACGT", nil},
		{"ACGT", "", nil},
	}
	for _, tc := range tests {
		if got := FindAll(tc.s, tc.p); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("FindAll(%q,%q) = %v, want %v", tc.s, tc.p, got, tc.want)
		}
	}
}

func TestFindMotifs(t *testing.T) {
	s := "CCTATAAAGGAATAAATATAAA"
	got := FindMotifs(s, DefaultMotifs)
	want := MotifMatches{
		"TATA_box":      {2, 16},
		"Poly_A_signal": {10},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FindMotifs = %v, want %v", got, want)
	}
	if got := FindMotifs("CCCC", DefaultMotifs); len(got) != 0 {
		t.Fatalf("expected no motifs, got %v", got)
	}
}

func TestTandemRepeatsSingleUnit(t *testing.T) {
	got := TandemRepeats("ATATATAT", 2, 2)
	want := []TandemRepeat{{Position: 0, Unit: "AT", UnitLength: 2, RepeatCount: 4, TotalLength: 8}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TandemRepeats = %+v, want %+v", got, want)
	}
	// default range adds nothing for this input
	if all := TandemRepeats("ATATATAT", 2, 6); !reflect.DeepEqual(all, want) {
		t.Fatalf("TandemRepeats 2..6 = %+v", all)
	}
}

func TestTandemRepeatsReportedPerUnitLength(t *testing.T) {
	// A 16bp AT run shows up under unit 2 and again under unit 4. The
	// scan does not deduplicate across unit lengths.
	s := strings.Repeat("AT", 8)
	got := TandemRepeats(s, 2, 4)
	if len(got) != 2 {
		t.Fatalf("want 2 reports, got %+v", got)
	}
	if got[0].UnitLength != 2 || got[0].RepeatCount != 8 {
		t.Fatalf("unit 2: %+v", got[0])
	}
	if got[1].UnitLength != 4 || got[1].Unit != "ATAT" || got[1].RepeatCount != 4 || got[1].Position != 0 {
		t.Fatalf("unit 4: %+v", got[1])
	}
}

func TestTandemRepeatsGreedyResume(t *testing.T) {
	// CAG x3, a break, CAG x3 again: two separate runs
	s := "CAGCAGCAGTTCAGCAGCAG"
	got := TandemRepeats(s, 3, 3)
	if len(got) != 2 || got[0].Position != 0 || got[1].Position != 11 {
		t.Fatalf("got %+v", got)
	}
	if got[1].Unit != "CAG" || got[1].TotalLength != 9 {
		t.Fatalf("second run %+v", got[1])
	}
}

func TestRepeatingPatterns(t *testing.T) {
	s := strings.Repeat("ACG", 6) // 18bp, lengths 3..8
	got := RepeatingPatterns(s, 3, 10)
	if len(got) == 0 {
		t.Fatal("expected repeats")
	}
	first := got[0]
	if first.Pattern != "ACG" || first.Length != 3 || first.Frequency != 6 {
		t.Fatalf("top repeat %+v", first)
	}
	if !reflect.DeepEqual(first.Positions, []int{0, 3, 6, 9, 12}) {
		t.Fatalf("positions capped at 5: %v", first.Positions)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Frequency < got[i].Frequency {
			t.Fatalf("not sorted by frequency at %d: %+v", i, got)
		}
	}
	if len(got) > MaxRepeats {
		t.Fatalf("result not capped: %d", len(got))
	}
}

func TestRepeatingPatternsTieOrder(t *testing.T) {
	// ACG, CGA and GAC all occur 5 or 6 times; equal frequencies keep first-seen order.
	s := strings.Repeat("ACG", 6)
	got := RepeatingPatterns(s, 3, 3)
	var names []string
	for _, r := range got {
		names = append(names, r.Pattern)
	}
	want := []string{"ACG", "CGA", "GAC"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("order = %v, want %v", names, want)
	}
	if got[1].Frequency != 5 || got[2].Frequency != 5 {
		t.Fatalf("frequencies %+v", got)
	}
}

func TestRepeatingPatternsShortSequence(t *testing.T) {
	// len/2 = 2 leaves no candidate lengths
	if got := RepeatingPatterns("AAAAA", 3, 10); got != nil {
		t.Fatalf("want nil, got %+v", got)
	}
}

func TestComplexity(t *testing.T) {
	if got := Complexity("AC", 3); got != 0 {
		t.Fatalf("short sequence complexity = %v", got)
	}
	// single repeated base: one distinct k-mer over the window count
	s := strings.Repeat("A", 52)
	if got, want := Complexity(s, 3), 1.0/50; got != want {
		t.Fatalf("homopolymer complexity = %v, want %v", got, want)
	}
	// past 4^k windows the denominator stops growing
	if got, want := Complexity(strings.Repeat("A", 200), 3), 1.0/64; got != want {
		t.Fatalf("long homopolymer complexity = %v, want %v", got, want)
	}
	if got := Complexity("ACGTAC", 3); got != 1 {
		t.Fatalf("all-distinct complexity = %v, want 1", got)
	}
	// more windows than 4^1 possible k-mers
	if got := Complexity("ACGTACGT", 1); got != 1 {
		t.Fatalf("k=1 complexity = %v", got)
	}
}

func TestWindows(t *testing.T) {
	s := strings.Repeat("G", 100) + strings.Repeat("A", 150)
	ws := Windows(s, 100, 0)
	if len(ws) != 4 {
		t.Fatalf("want 4 windows, got %d", len(ws))
	}
	starts := []int{0, 50, 100, 150}
	for i, w := range ws {
		if w.Start != starts[i] || w.End != starts[i]+100 || w.Length != 100 {
			t.Fatalf("window %d: %+v", i, w)
		}
	}
	if ws[0].GCContent != 100 || ws[1].GCContent != 50 || ws[2].GCContent != 0 {
		t.Fatalf("gc: %+v", ws)
	}
	cons := ConservedRegions(ws, 55)
	if len(cons) != 1 || cons[0].Start != 0 {
		t.Fatalf("conserved: %+v", cons)
	}
	if got := AverageGC(ws); got != 37.5 {
		t.Fatalf("average gc = %v", got)
	}
	if Windows("ACG", 100, 0) != nil || AverageGC(nil) != 0 {
		t.Fatal("short sequence should have no windows")
	}
	if got := Windows("ACG", 1, 0); len(got) != 3 {
		t.Fatalf("size 1 stride raised to 1: %+v", got)
	}
}

func TestScannerAnalyze(t *testing.T) {
	s := strings.Repeat("TATAAACG", 30)
	sc := New(Config{})
	a := sc.Analyze(s)
	if a.SequenceLength != len(s) {
		t.Fatalf("length %d", a.SequenceLength)
	}
	if len(a.Motifs["TATA_box"]) != 30 {
		t.Fatalf("tata hits: %v", a.Motifs["TATA_box"])
	}
	if a.Complexity <= 0 || a.Complexity > 1 {
		t.Fatalf("complexity %v", a.Complexity)
	}
	if len(a.Repeats) != MaxRepeats {
		t.Fatalf("repeats %d", len(a.Repeats))
	}
	b := sc.Analyze(s)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("analysis is not deterministic")
	}
}
