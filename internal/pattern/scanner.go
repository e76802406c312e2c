// Package pattern finds motifs, repeats and composition structure in a
// single sequence. Everything here is pure; Scanner only bundles the
// knobs.
package pattern

// Config holds the pattern scanner knobs. Zero fields take the defaults.
type Config struct {
	Motifs []Motif

	RepeatMinLen int     // [3]
	RepeatMaxLen int     // [10]
	KmerSize     int     // complexity k [3]
	WindowSize   int     // GC profile window [100]
	WindowStride int     // 0 = WindowSize/2
	GCThreshold  float64 // conserved region cut-off [55.0]
	TandemMin    int     // [2]
	TandemMax    int     // [6]
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		Motifs:       DefaultMotifs,
		RepeatMinLen: 3,
		RepeatMaxLen: 10,
		KmerSize:     3,
		WindowSize:   100,
		GCThreshold:  55.0,
		TandemMin:    2,
		TandemMax:    6,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Motifs == nil {
		c.Motifs = d.Motifs
	}
	if c.RepeatMinLen <= 0 {
		c.RepeatMinLen = d.RepeatMinLen
	}
	if c.RepeatMaxLen <= 0 {
		c.RepeatMaxLen = d.RepeatMaxLen
	}
	if c.KmerSize <= 0 {
		c.KmerSize = d.KmerSize
	}
	if c.WindowSize <= 0 {
		c.WindowSize = d.WindowSize
	}
	if c.GCThreshold == 0 {
		c.GCThreshold = d.GCThreshold
	}
	if c.TandemMin <= 0 {
		c.TandemMin = d.TandemMin
	}
	if c.TandemMax <= 0 {
		c.TandemMax = d.TandemMax
	}
	return c
}

// Analysis bundles every pattern finding for one sequence.
type Analysis struct {
	SequenceLength   int
	Complexity       float64
	Motifs           MotifMatches
	Repeats          []Repeat
	ConservedRegions []Window
	TandemRepeats    []TandemRepeat
	AverageGC        float64
}

type Scanner struct{ cfg Config }

func New(c Config) *Scanner { return &Scanner{cfg: c.withDefaults()} }

func (s *Scanner) Config() Config { return s.cfg }

// Analyze runs every pattern search over sq.
func (s *Scanner) Analyze(sq string) Analysis {
	c := s.cfg
	ws := Windows(sq, c.WindowSize, c.WindowStride)
	return Analysis{
		SequenceLength:   len(sq),
		Complexity:       Complexity(sq, c.KmerSize),
		Motifs:           FindMotifs(sq, c.Motifs),
		Repeats:          RepeatingPatterns(sq, c.RepeatMinLen, c.RepeatMaxLen),
		ConservedRegions: ConservedRegions(ws, c.GCThreshold),
		TandemRepeats:    TandemRepeats(sq, c.TandemMin, c.TandemMax),
		AverageGC:        AverageGC(ws),
	}
}
