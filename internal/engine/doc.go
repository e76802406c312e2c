// Package engine analyzes one patient: it runs the alignment, mutation and
// pattern scanners over a reference/sample pair and grades the outcome. It
// never imports app, writers, dataset or pipeline.
//
// Reports are serialized through pkg/api, not from these types directly.
package engine
