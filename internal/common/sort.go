// internal/common/sort.go
package common

import (
	"sort"

	"genescan/internal/engine"
)

// LessResult defines a stable order for results (for --sort).
func LessResult(a, b engine.Result) bool {
	if a.PatientID != b.PatientID {
		return a.PatientID < b.PatientID
	}
	if a.GeneType != b.GeneType {
		return a.GeneType < b.GeneType
	}
	return a.Source < b.Source
}

func SortResults(rs []engine.Result) {
	sort.SliceStable(rs, func(i, j int) bool { return LessResult(rs[i], rs[j]) })
}
