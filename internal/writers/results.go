// internal/writers/results.go
package writers

import (
	"io"

	"genescan/internal/common"
	"genescan/internal/engine"
	"genescan/internal/jsonutil"
	"genescan/internal/output"
)

func init() {
	Register("json", startJSON)
	Register("jsonl", startJSONL)
	Register("text", startText)
}

// startJSON buffers every result and writes one report document.
func startJSON(out io.Writer, opt Options) (chan<- engine.Result, <-chan error) {
	in := make(chan engine.Result, opt.BufSize)
	errCh := make(chan error, 1)
	go func() {
		buf := drain(in)
		if opt.Sort {
			common.SortResults(buf)
		}
		var analyzers []engine.LogSummary
		if opt.Analyzers != nil {
			analyzers = opt.Analyzers()
		}
		err := output.WriteJSON(out, buf, analyzers)
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()
	return in, errCh
}

// startJSONL streams one v1 result per line, or buffers when sorting.
func startJSONL(out io.Writer, opt Options) (chan<- engine.Result, <-chan error) {
	wire := func(r engine.Result) any { return output.ToAPIResult(r) }
	if !opt.Sort {
		return jsonutil.StartJSONL(out, opt.BufSize, wire, IsBrokenPipe)
	}
	in := make(chan engine.Result, opt.BufSize)
	errCh := make(chan error, 1)
	go func() {
		buf := drain(in)
		common.SortResults(buf)
		sink, done := jsonutil.StartJSONL(out, len(buf)+1, wire, IsBrokenPipe)
		for _, r := range buf {
			sink <- r
		}
		close(sink)
		errCh <- <-done
	}()
	return in, errCh
}

func startText(out io.Writer, opt Options) (chan<- engine.Result, <-chan error) {
	in := make(chan engine.Result, opt.BufSize)
	errCh := make(chan error, 1)
	go func() {
		var err error
		if opt.Sort {
			buf := drain(in)
			common.SortResults(buf)
			err = output.WriteText(out, buf, opt.Header)
		} else {
			err = output.StreamText(out, in, opt.Header)
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()
	return in, errCh
}
