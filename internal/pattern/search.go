// internal/pattern/search.go
package pattern

import "strings"

// FindAll returns the start of every occurrence of p in s, overlapping
// occurrences included: each search resumes one base after the previous hit.
func FindAll(s, p string) []int {
	if p == "" {
		return nil
	}
	var out []int
	for start := 0; start <= len(s)-len(p); {
		i := strings.Index(s[start:], p)
		if i < 0 {
			break
		}
		out = append(out, start+i)
		start += i + 1
	}
	return out
}

// Motif is a named literal regulatory sequence.
type Motif struct {
	Name     string
	Sequence string
}

// DefaultMotifs is the stock regulatory motif table.
var DefaultMotifs = []Motif{
	{Name: "TATA_box", Sequence: "TATAAA"},
	{Name: "CAAT_box", Sequence: "GGCCAATCT"},
	{Name: "GC_box", Sequence: "GGGCGG"},
	{Name: "Kozak_sequence", Sequence: "GCCGCCACCATGG"},
	{Name: "Poly_A_signal", Sequence: "AATAAA"},
}

// MotifMatches maps motif name to hit positions. Motifs without hits are absent.
type MotifMatches map[string][]int

// FindMotifs runs FindAll for every motif in table.
func FindMotifs(s string, table []Motif) MotifMatches {
	out := MotifMatches{}
	for _, m := range table {
		if pos := FindAll(s, m.Sequence); len(pos) > 0 {
			out[m.Name] = pos
		}
	}
	return out
}
