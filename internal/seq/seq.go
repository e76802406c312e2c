// internal/seq/seq.go
package seq

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned by functions that compare two sequences
// position by position.
var ErrLengthMismatch = errors.New("sequences must be of equal length")

var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['G'] = 'C'
	complement['C'] = 'G'
}

// GCContent returns the percentage of G and C bases in s (0 for empty s).
// Bytes outside the alphabet count toward the length only.
func GCContent(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(s); i++ {
		if s[i] == 'G' || s[i] == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(s)) * 100
}

// Hamming counts the positions at which a and b differ.
func Hamming(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, lengthErr(a, b)
	}
	d := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d, nil
}

// RevComp maps A<->T and G<->C, leaves any other byte as is, and reverses.
func RevComp(s string) string {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[s[n-1-i]]
	}
	return string(out)
}

func lengthErr(a, b string) error {
	return fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(a), len(b))
}
