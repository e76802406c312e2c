// internal/output/rows.go
package output

import (
	"fmt"

	"genescan/internal/engine"
)

// FormatRowTSV returns one TSVHeader-shaped row (no trailing newline).
// Analysis columns are empty unless the patient was analyzed.
func FormatRowTSV(r engine.Result) string {
	if r.Status != engine.StatusOK {
		return fmt.Sprintf("%s\t%s\t%s\t\t\t\t\t\t\t\t\t%s", r.PatientID, r.GeneType, r.Status, r.Source)
	}
	hits := 0
	for _, pos := range r.Pattern.Motifs {
		hits += len(pos)
	}
	return fmt.Sprintf("%s\t%s\t%s\t%s\t%d\t%.4f\t%.2f\t%s\t%d\t%.4f\t%d\t%s",
		r.PatientID, r.GeneType, r.Status,
		r.Assessment.Level, r.Mutation.Total, r.Mutation.Rate, r.Alignment.Identity,
		r.Mutation.Significance, len(r.Mutation.Hotspots),
		r.Pattern.Complexity, hits, r.Source,
	)
}
