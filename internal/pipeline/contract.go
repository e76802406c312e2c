// internal/pipeline/contract.go
package pipeline

import (
	"context"
	"time"

	"genescan/internal/engine"
)

// Loader turns one input location into records.
type Loader interface {
	Load(ctx context.Context, input string) ([]engine.Record, error)
}

// Analyzer is the minimal capability the pipeline needs from an engine.
// Any engine (including fakes in tests) can satisfy this.
type Analyzer interface {
	AnalyzeInto(rec engine.Record, logs *engine.Logs) (engine.Result, error)
}

// Observer is told about every finished patient, from the collector goroutine.
type Observer interface {
	ObserveAnalysis(res engine.Result, elapsed time.Duration)
}
