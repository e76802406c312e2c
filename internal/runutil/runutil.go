// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads maps the --threads setting to a worker count:
// 0 (or less) means one per CPU.
func EffectiveThreads(threads int) int {
	if threads <= 0 {
		return runtime.NumCPU()
	}
	return threads
}

// WriterBuffer sizes the writer input channel for a worker count.
func WriterBuffer(threads int) int {
	return EffectiveThreads(threads) * 4
}

// ValidateRun returns warnings for settings that are legal but likely
// unintended. Rules:
//   - --header only affects text output
//   - --sort with jsonl buffers the whole run before writing
//   - --max-samples with several inputs counts patients across all of them
func ValidateRun(format string, header, sort bool, maxSamples, inputs int) []string {
	var warns []string
	if header && format != "text" {
		warns = append(warns, "--header only applies to text output; ignoring")
	}
	if sort && format == "jsonl" {
		warns = append(warns, "--sort buffers every result before writing jsonl")
	}
	if maxSamples > 0 && inputs > 1 {
		warns = append(warns, "--max-samples counts patients across all inputs")
	}
	return warns
}
