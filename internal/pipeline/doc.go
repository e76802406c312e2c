// Package pipeline loads patient records from inputs, fans them out to a
// pool of Analyzer workers, and hands every result to a visit callback on a
// single collector goroutine.
//
// The only contracts to implement are Loader and Analyzer. This keeps the
// pipeline swappable and testable.
package pipeline
