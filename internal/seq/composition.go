package seq

// Composition is the per-base makeup of a sequence.
type Composition struct {
	Length     int
	A, T, G, C int

	APercent, TPercent, GPercent, CPercent float64
	GCContent                              float64
}

// Compose counts each base of s. Percentages stay 0 for an empty sequence.
func Compose(s string) Composition {
	c := Composition{Length: len(s)}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A':
			c.A++
		case 'T':
			c.T++
		case 'G':
			c.G++
		case 'C':
			c.C++
		}
	}
	if c.Length > 0 {
		n := float64(c.Length)
		c.APercent = float64(c.A) / n * 100
		c.TPercent = float64(c.T) / n * 100
		c.GPercent = float64(c.G) / n * 100
		c.CPercent = float64(c.C) / n * 100
	}
	c.GCContent = GCContent(s)
	return c
}
