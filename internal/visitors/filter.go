// internal/visitors/filter.go
package visitors

import (
	"strings"

	"genescan/internal/assess"
	"genescan/internal/common"
	"genescan/internal/engine"
	"genescan/internal/runutil"
)

// Records drops records before analysis: patients whose gene is not in
// Genes (when set) and, with Dedupe, patients already fed from an earlier
// input. Not safe for concurrent use; the pipeline calls it from one
// goroutine.
type Records struct {
	genes common.StringSet
	seen  *runutil.LRUSet[string]
}

func NewRecords(genes []string, dedupe bool) *Records {
	r := &Records{genes: common.NewStringSet(common.UniqueUpper(genes))}
	if dedupe {
		r.seen = runutil.NewLRUSet[string](0)
	}
	return r
}

func (r *Records) Keep(rec engine.Record) bool {
	if !r.genes.Has(strings.ToUpper(rec.GeneType)) {
		return false
	}
	if r.seen != nil && r.seen.Add(rec.PatientID) {
		return false
	}
	return true
}

// MinLevel keeps analyzed results at or above Level plus every missing or
// failed result, so problems are never filtered away.
type MinLevel struct {
	Level assess.Level
}

func (v MinLevel) Visit(r engine.Result) (bool, engine.Result, error) {
	if v.Level == "" || r.Status != engine.StatusOK {
		return true, r, nil
	}
	return severity(r.Assessment.Level) >= severity(v.Level), r, nil
}

// severity is 0 for NORMAL and grows with risk.
func severity(l assess.Level) int {
	for i, x := range assess.Levels {
		if x == l {
			return len(assess.Levels) - 1 - i
		}
	}
	return -1
}
