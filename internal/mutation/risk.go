package mutation

// Risk is the scanner's own coarse risk class. It uses different cut-offs
// than the patient assessment in package assess.
type Risk string

const (
	RiskNormal   Risk = "normal"
	RiskLow      Risk = "low_risk"
	RiskModerate Risk = "moderate_risk"
	RiskHigh     Risk = "high_risk"
)

// ClassifyRisk grades an Analysis. Branches are checked in order and the
// first match wins.
func ClassifyRisk(a Analysis) Risk {
	switch {
	case a.Significance == SignificanceHigh || a.Rate > 2.0 || len(a.Hotspots) > 2:
		return RiskHigh
	case a.Significance == SignificanceModerate || a.Rate > 1.0 || len(a.Hotspots) > 0:
		return RiskModerate
	case a.Significance == SignificanceLow:
		return RiskLow
	default:
		return RiskNormal
	}
}
