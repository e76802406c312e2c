package pattern

import "genescan/internal/seq"

// Window is the GC profile of one fixed-size slice of a sequence.
type Window struct {
	Start     int
	End       int // exclusive
	GCContent float64
	Length    int
}

// Windows profiles s in windows of size bp, advancing by stride, for as
// long as a full window fits. stride 0 means size/2; a stride that still
// comes out as 0 (size 1) is raised to 1.
func Windows(s string, size, stride int) []Window {
	if size <= 0 {
		return nil
	}
	if stride <= 0 {
		stride = size / 2
	}
	if stride < 1 {
		stride = 1
	}
	var out []Window
	for i := 0; i+size <= len(s); i += stride {
		w := s[i : i+size]
		out = append(out, Window{Start: i, End: i + size, GCContent: seq.GCContent(w), Length: len(w)})
	}
	return out
}

// ConservedRegions keeps the windows whose GC content is at least threshold.
func ConservedRegions(ws []Window, threshold float64) []Window {
	var out []Window
	for _, w := range ws {
		if w.GCContent >= threshold {
			out = append(out, w)
		}
	}
	return out
}

// AverageGC is the mean window GC content, 0 when there are no windows.
func AverageGC(ws []Window) float64 {
	if len(ws) == 0 {
		return 0
	}
	sum := 0.0
	for _, w := range ws {
		sum += w.GCContent
	}
	return sum / float64(len(ws))
}

// Complexity is the share of distinct k-mers among the k-mers that could
// appear: distinct / min(len(s)-k+1, 4^k). It is 0 when s is shorter than k.
func Complexity(s string, k int) float64 {
	if k <= 0 || len(s) < k {
		return 0
	}
	windows := len(s) - k + 1
	possible := windows
	// 4^k without overflow; stop as soon as it exceeds the window count.
	p := 1
	for i := 0; i < k && p < windows; i++ {
		p *= 4
	}
	if p < possible {
		possible = p
	}
	seen := make(map[string]struct{}, possible)
	for i := 0; i < windows; i++ {
		seen[s[i:i+k]] = struct{}{}
	}
	return float64(len(seen)) / float64(possible)
}
