// Package mutation diffs a sample against its reference, classifies each
// substitution, and grades the result.
package mutation

import (
	"genescan/internal/seq"
)

// Clinical significance grades.
const (
	SignificanceNormal   = "normal"
	SignificanceLow      = "low"
	SignificanceModerate = "moderate"
	SignificanceHigh     = "high"
)

// Config holds the scanner knobs.
type Config struct {
	SignificanceThreshold int // mutations at which a sample becomes "moderate" [5]
	HotspotWindow         int // bp per hotspot window [100]
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{SignificanceThreshold: 5, HotspotWindow: 100}
}

// Types counts substitutions by category.
type Types struct {
	Transitions   int
	Transversions int
	Total         int
}

// Hotspot is a fixed window holding at least MinHotspotMutations mutations.
type Hotspot struct {
	Start         int
	End           int // exclusive
	MutationCount int
	Density       float64
}

// MinHotspotMutations is the count at which a window is reported.
const MinHotspotMutations = 3

// Analysis is the outcome of one Scan.
type Analysis struct {
	Mutations    []seq.Mutation
	Total        int
	Rate         float64 // percent of reference positions
	Types        Types
	Significance string
	Hotspots     []Hotspot
}

type Scanner struct{ cfg Config }

// New returns a Scanner. Non-positive fields fall back to DefaultConfig.
func New(c Config) *Scanner {
	d := DefaultConfig()
	if c.SignificanceThreshold <= 0 {
		c.SignificanceThreshold = d.SignificanceThreshold
	}
	if c.HotspotWindow <= 0 {
		c.HotspotWindow = d.HotspotWindow
	}
	return &Scanner{cfg: c}
}

func (s *Scanner) Config() Config { return s.cfg }

// Scan compares sample against ref. Both must have the same length.
func (s *Scanner) Scan(ref, sample string) (Analysis, error) {
	muts, err := seq.FindMutations(ref, sample)
	if err != nil {
		return Analysis{}, err
	}
	a := Analysis{
		Mutations:    muts,
		Total:        len(muts),
		Types:        Categorize(muts),
		Significance: Significance(len(muts), s.cfg.SignificanceThreshold),
		Hotspots:     Hotspots(muts, s.cfg.HotspotWindow),
	}
	if len(ref) > 0 {
		a.Rate = float64(len(muts)) / float64(len(ref)) * 100
	}
	return a, nil
}

// IsTransition reports whether a->b swaps purine for purine (A/G) or
// pyrimidine for pyrimidine (C/T).
func IsTransition(a, b byte) bool {
	switch {
	case a == 'A' && b == 'G', a == 'G' && b == 'A':
		return true
	case a == 'C' && b == 'T', a == 'T' && b == 'C':
		return true
	}
	return false
}

// Categorize splits muts into transitions and transversions.
func Categorize(muts []seq.Mutation) Types {
	t := Types{Total: len(muts)}
	for _, m := range muts {
		if IsTransition(m.Reference, m.Sample) {
			t.Transitions++
		} else {
			t.Transversions++
		}
	}
	return t
}

// Significance grades a mutation count against threshold t:
// 0 normal, [1,t) low, [t,2t) moderate, >=2t high.
func Significance(count, t int) string {
	switch {
	case count == 0:
		return SignificanceNormal
	case count < t:
		return SignificanceLow
	case count < 2*t:
		return SignificanceModerate
	default:
		return SignificanceHigh
	}
}

// Hotspots partitions [0, max position] into consecutive windows of size w
// starting at 0 and reports the windows holding at least
// MinHotspotMutations mutations, in ascending order.
func Hotspots(muts []seq.Mutation, w int) []Hotspot {
	if len(muts) == 0 || w <= 0 {
		return nil
	}
	maxPos := 0
	for _, m := range muts {
		if m.Position > maxPos {
			maxPos = m.Position
		}
	}
	counts := make([]int, maxPos/w+1)
	for _, m := range muts {
		counts[m.Position/w]++
	}
	var out []Hotspot
	for i, n := range counts {
		if n < MinHotspotMutations {
			continue
		}
		out = append(out, Hotspot{
			Start:         i * w,
			End:           i*w + w,
			MutationCount: n,
			Density:       float64(n) / float64(w),
		})
	}
	return out
}
