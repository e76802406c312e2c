package cmdutil

import (
	"context"

	"genescan/internal/engine"
	"genescan/internal/pipeline"
)

// RunStream runs the shared pipeline, applies a visitor, and streams results via send.
// It returns the number of kept outputs and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	inputs []string,
	loader pipeline.Loader,
	an pipeline.Analyzer,
	visit func(engine.Result) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachResult(ctx, cfg, inputs, loader, an, func(r engine.Result) error {
		keep, out, vErr := visit(r)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
