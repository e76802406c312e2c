// Package visitors holds the per-record and per-result filters applied
// around the pipeline.
package visitors

import "genescan/internal/engine"

// PassThrough returns the result unchanged.
type PassThrough struct{}

func (PassThrough) Visit(r engine.Result) (keep bool, out engine.Result, err error) {
	return true, r, nil
}
