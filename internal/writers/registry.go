// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"genescan/internal/engine"
)

// Options shared by every result writer.
type Options struct {
	Sort    bool // buffer and order by patient before writing
	Header  bool // TSV header row
	BufSize int  // input channel capacity
	// Analyzers is called once after the input closes; its summaries go
	// into the JSON report.
	Analyzers func() []engine.LogSummary
}

// Factory starts a writer goroutine. The error channel yields exactly one
// value after the input channel is closed and drained.
type Factory func(out io.Writer, opt Options) (chan<- engine.Result, <-chan error)

// ResultWriters maps format name to writer. Formats register in init().
var ResultWriters = map[string]Factory{}

// Register adds or replaces a format (last wins).
func Register(format string, f Factory) { ResultWriters[format] = f }

// Formats lists the registered format names in order.
func Formats() []string {
	out := make([]string, 0, len(ResultWriters))
	for k := range ResultWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// StartResultWriter dispatches to the registered format. An unknown format
// still returns a draining channel so callers need no special case.
func StartResultWriter(out io.Writer, format string, opt Options) (chan<- engine.Result, <-chan error) {
	if opt.BufSize <= 0 {
		opt.BufSize = 64
	}
	if f, ok := ResultWriters[format]; ok {
		return f(out, opt)
	}
	in := make(chan engine.Result, opt.BufSize)
	errCh := make(chan error, 1)
	go func() {
		for range in {
		}
		errCh <- fmt.Errorf("unknown result format %q (no writer registered)", format)
	}()
	return in, errCh
}

func drain(in <-chan engine.Result) []engine.Result {
	var buf []engine.Result
	for r := range in {
		buf = append(buf, r)
	}
	return buf
}
