// Package assess turns mutation and alignment findings into a patient risk
// level. Its cut-offs are independent of mutation.ClassifyRisk.
package assess

import (
	"errors"
	"fmt"
	"strings"

	"genescan/internal/alignment"
	"genescan/internal/mutation"
)

// Level is the ordinal patient risk.
type Level string

const (
	Normal   Level = "NORMAL"
	Low      Level = "LOW"
	Moderate Level = "MODERATE"
	High     Level = "HIGH"
)

// Levels lists every level from most to least severe.
var Levels = []Level{High, Moderate, Low, Normal}

var recommendations = map[Level]string{
	High:     "Immediate clinical consultation recommended. Significant mutations detected.",
	Moderate: "Clinical follow-up advised. Monitor for disease progression.",
	Low:      "Routine monitoring recommended. Minor variations detected.",
	Normal:   "No significant mutations detected. Routine screening sufficient.",
}

var ErrUnknownLevel = errors.New("unknown risk level")

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := recommendations[l]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownLevel, s)
	}
	return l, nil
}

// Recommendation returns the fixed advice text for l.
func Recommendation(l Level) string { return recommendations[l] }

type Assessment struct {
	Level          Level
	Recommendation string
	MutationCount  int
	MutationRate   float64
	Identity       float64
}

// Classify applies the risk table top-down; the first matching row wins.
func Classify(count int, rate, identity float64) Level {
	switch {
	case count > 15 || rate > 2.0 || identity < 95:
		return High
	case count > 8 || rate > 1.0 || identity < 98:
		return Moderate
	case count > 3 || rate > 0.5:
		return Low
	default:
		return Normal
	}
}

// Assess grades one patient.
func Assess(m mutation.Analysis, a alignment.Result) Assessment {
	l := Classify(m.Total, m.Rate, a.Identity)
	return Assessment{
		Level:          l,
		Recommendation: Recommendation(l),
		MutationCount:  m.Total,
		MutationRate:   m.Rate,
		Identity:       a.Identity,
	}
}

// Tally counts assessments per level.
type Tally map[Level]int

func (t Tally) Add(l Level) { t[l]++ }
