package mutation

import (
	"errors"
	"strings"
	"testing"

	"genescan/internal/seq"
)

func TestSignificance(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, SignificanceNormal},
		{3, SignificanceLow},
		{4, SignificanceLow},
		{5, SignificanceModerate},
		{7, SignificanceModerate},
		{10, SignificanceHigh},
		{12, SignificanceHigh},
	}
	for _, tc := range tests {
		if got := Significance(tc.count, 5); got != tc.want {
			t.Errorf("Significance(%d, 5) = %q, want %q", tc.count, got, tc.want)
		}
	}
}

func TestIsTransition(t *testing.T) {
	tests := []struct {
		a, b byte
		want bool
	}{
		{'A', 'G', true}, {'G', 'A', true},
		{'C', 'T', true}, {'T', 'C', true},
		{'A', 'C', false}, {'A', 'T', false},
		{'G', 'C', false}, {'G', 'T', false},
	}
	for _, tc := range tests {
		if got := IsTransition(tc.a, tc.b); got != tc.want {
			t.Errorf("IsTransition(%c,%c) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestScan(t *testing.T) {
	ref := "AAAACCCCGGGGTTTT"
	sample := "GAAACCCTGGGCTTTT" // A>G (ts), C>T (ts), G>C (tv)
	a, err := New(DefaultConfig()).Scan(ref, sample)
	if err != nil {
		t.Fatal(err)
	}
	if a.Total != 3 || a.Types.Transitions != 2 || a.Types.Transversions != 1 || a.Types.Total != 3 {
		t.Fatalf("types: %+v total=%d", a.Types, a.Total)
	}
	if want := 3.0 / 16 * 100; a.Rate != want {
		t.Fatalf("rate = %v, want %v", a.Rate, want)
	}
	if a.Significance != SignificanceLow {
		t.Fatalf("significance = %q", a.Significance)
	}
	if len(a.Hotspots) != 1 || a.Hotspots[0].Start != 0 || a.Hotspots[0].End != 100 || a.Hotspots[0].MutationCount != 3 {
		t.Fatalf("hotspots: %+v", a.Hotspots)
	}
	if a.Hotspots[0].Density != 0.03 {
		t.Fatalf("density = %v", a.Hotspots[0].Density)
	}
}

func TestScanLengthMismatch(t *testing.T) {
	if _, err := New(DefaultConfig()).Scan("ACGT", "ACG"); !errors.Is(err, seq.ErrLengthMismatch) {
		t.Fatalf("want ErrLengthMismatch, got %v", err)
	}
}

func TestScanIdentical(t *testing.T) {
	a, err := New(Config{}).Scan("ACGT", "ACGT")
	if err != nil {
		t.Fatal(err)
	}
	if a.Total != 0 || a.Rate != 0 || a.Significance != SignificanceNormal || a.Hotspots != nil {
		t.Fatalf("unexpected analysis %+v", a)
	}
	if ClassifyRisk(a) != RiskNormal {
		t.Fatalf("risk = %q", ClassifyRisk(a))
	}
}

func positions(ps ...int) []seq.Mutation {
	out := make([]seq.Mutation, len(ps))
	for i, p := range ps {
		out[i] = seq.Mutation{Position: p}
	}
	return out
}

func TestHotspots(t *testing.T) {
	muts := positions(1, 2, 3, 150, 210, 220, 230, 240)
	hs := Hotspots(muts, 100)
	if len(hs) != 2 {
		t.Fatalf("want 2 hotspots, got %+v", hs)
	}
	if hs[0].Start != 0 || hs[0].MutationCount != 3 {
		t.Fatalf("first hotspot %+v", hs[0])
	}
	if hs[1].Start != 200 || hs[1].End != 300 || hs[1].MutationCount != 4 || hs[1].Density != 0.04 {
		t.Fatalf("second hotspot %+v", hs[1])
	}
	if Hotspots(nil, 100) != nil {
		t.Fatal("no mutations should give no hotspots")
	}
	// window size 10: 1,2,3 in [0,10); 150 alone; 210..240 spread over four windows
	if hs := Hotspots(muts, 10); len(hs) != 1 || hs[0].End != 10 {
		t.Fatalf("w=10: %+v", hs)
	}
}

func TestClassifyRisk(t *testing.T) {
	three := []Hotspot{{}, {}, {}}
	one := []Hotspot{{}}
	tests := []struct {
		name string
		a    Analysis
		want Risk
	}{
		{"high significance", Analysis{Significance: SignificanceHigh}, RiskHigh},
		{"high rate", Analysis{Significance: SignificanceLow, Rate: 2.5}, RiskHigh},
		{"many hotspots", Analysis{Significance: SignificanceLow, Hotspots: three}, RiskHigh},
		{"moderate significance", Analysis{Significance: SignificanceModerate}, RiskModerate},
		{"moderate rate", Analysis{Significance: SignificanceLow, Rate: 1.5}, RiskModerate},
		{"one hotspot", Analysis{Significance: SignificanceNormal, Hotspots: one}, RiskModerate},
		{"low", Analysis{Significance: SignificanceLow, Rate: 0.5}, RiskLow},
		{"normal", Analysis{Significance: SignificanceNormal}, RiskNormal},
		{"rate boundary", Analysis{Significance: SignificanceNormal, Rate: 2.0}, RiskModerate},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyRisk(tc.a); got != tc.want {
				t.Fatalf("ClassifyRisk = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestScanIsDeterministic(t *testing.T) {
	ref := strings.Repeat("ACGT", 100)
	sample := []byte(ref)
	for _, p := range []int{5, 17, 33, 260, 261, 262} {
		sample[p] = 'A'
		if ref[p] == 'A' {
			sample[p] = 'C'
		}
	}
	s := New(DefaultConfig())
	a1, _ := s.Scan(ref, string(sample))
	a2, _ := s.Scan(ref, string(sample))
	if a1.Total != a2.Total || a1.Rate != a2.Rate || len(a1.Hotspots) != len(a2.Hotspots) {
		t.Fatalf("non-deterministic scan: %+v vs %+v", a1, a2)
	}
	for i := range a1.Mutations {
		if a1.Mutations[i] != a2.Mutations[i] {
			t.Fatalf("mutation %d differs", i)
		}
	}
}
