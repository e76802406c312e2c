// Package alignment scores a sample against its reference position by
// position. Unlike the mutation scanner it never fails: sequences of
// different length score 0 and the difference is reported as gaps.
package alignment

import "genescan/internal/seq"

// Result is the comparison of one reference/sample pair.
type Result struct {
	Score           float64
	Identity        float64
	Gaps            int
	Mismatches      []int
	ReferenceLength int
	SampleLength    int
	GCReference     float64
	GCSample        float64
}

// Score is the percentage of matching positions. It is 0 when the lengths
// differ or the sequences are empty.
func Score(a, b string) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	match := 0
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			match++
		}
	}
	return float64(match) / float64(len(a)) * 100
}

// Identity is reported separately from Score but computed the same way.
func Identity(a, b string) float64 { return Score(a, b) }

// GapsAndMismatches lists mismatches over the shared prefix and counts the
// length difference as gaps. Positions past the shorter sequence are gaps,
// never mismatches.
func GapsAndMismatches(a, b string) (int, []int) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var mm []int
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			mm = append(mm, i)
		}
	}
	gaps := len(a) - len(b)
	if gaps < 0 {
		gaps = -gaps
	}
	return gaps, mm
}

type Scorer struct{}

func New() *Scorer { return &Scorer{} }

// Align bundles every alignment measure for one pair.
func (Scorer) Align(ref, sample string) Result {
	gaps, mm := GapsAndMismatches(ref, sample)
	return Result{
		Score:           Score(ref, sample),
		Identity:        Identity(ref, sample),
		Gaps:            gaps,
		Mismatches:      mm,
		ReferenceLength: len(ref),
		SampleLength:    len(sample),
		GCReference:     seq.GCContent(ref),
		GCSample:        seq.GCContent(sample),
	}
}

// Pair is one reference/sample input to AlignBatch.
type Pair struct {
	Reference string
	Sample    string
}

// AlignBatch aligns every pair in order.
func (s Scorer) AlignBatch(pairs []Pair) []Result {
	out := make([]Result, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, s.Align(p.Reference, p.Sample))
	}
	return out
}
