package pattern

import "sort"

const (
	// MinRepeatFrequency is the occurrence count a substring needs to be
	// reported by RepeatingPatterns.
	MinRepeatFrequency = 3
	// MaxRepeats caps the RepeatingPatterns result.
	MaxRepeats = 10
	// MaxRepeatPositions caps Repeat.Positions.
	MaxRepeatPositions = 5
	// MinTandemCopies is the number of adjacent copies that make a tandem repeat.
	MinTandemCopies = 3
)

// Repeat is a substring that occurs at least MinRepeatFrequency times.
type Repeat struct {
	Pattern   string
	Length    int
	Frequency int
	Positions []int // first MaxRepeatPositions occurrences
}

// RepeatingPatterns tallies every substring of length L for
// L in [minLen, min(maxLen+1, len(s)/2)) and returns the most frequent
// ones. Ties keep scan order: shorter lengths first, then first-seen order.
func RepeatingPatterns(s string, minLen, maxLen int) []Repeat {
	upper := maxLen + 1
	if h := len(s) / 2; h < upper {
		upper = h
	}
	var out []Repeat
	for l := minLen; l < upper; l++ {
		if l <= 0 {
			continue
		}
		counts := make(map[string]int)
		var order []string
		for i := 0; i+l <= len(s); i++ {
			sub := s[i : i+l]
			if counts[sub] == 0 {
				order = append(order, sub)
			}
			counts[sub]++
		}
		for _, sub := range order {
			n := counts[sub]
			if n < MinRepeatFrequency {
				continue
			}
			pos := FindAll(s, sub)
			if len(pos) > MaxRepeatPositions {
				pos = pos[:MaxRepeatPositions]
			}
			out = append(out, Repeat{Pattern: sub, Length: l, Frequency: n, Positions: pos})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Frequency > out[j].Frequency })
	if len(out) > MaxRepeats {
		out = out[:MaxRepeats]
	}
	return out
}

// TandemRepeat is a run of at least MinTandemCopies identical adjacent units.
type TandemRepeat struct {
	Position    int
	Unit        string
	UnitLength  int
	RepeatCount int
	TotalLength int
}

// TandemRepeats scans each unit length in [minUnit, maxUnit] left to right.
// A reported run is consumed whole before the scan resumes. Positions are
// not shared between unit lengths, so one region can be reported under
// several unit lengths (e.g. an AT run also shows up as ATAT).
func TandemRepeats(s string, minUnit, maxUnit int) []TandemRepeat {
	var out []TandemRepeat
	for u := minUnit; u <= maxUnit; u++ {
		if u <= 0 {
			continue
		}
		for i := 0; i < len(s)-2*u; {
			unit := s[i : i+u]
			copies := 1
			j := i + u
			for j+u <= len(s) && s[j:j+u] == unit {
				copies++
				j += u
			}
			if copies < MinTandemCopies {
				i++
				continue
			}
			out = append(out, TandemRepeat{
				Position:    i,
				Unit:        unit,
				UnitLength:  u,
				RepeatCount: copies,
				TotalLength: u * copies,
			})
			i = j
		}
	}
	return out
}
