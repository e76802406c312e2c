// Package writers turns analysis results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (JSON report, JSONL, TSV).
//   - Engine stays domain-only; Pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
