// internal/jsonutil/jsonl.go
package jsonutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Pooled 64 KiB writers shared by JSONL streams.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// StartJSONL spins up a goroutine writing one JSON line per value sent on
// the returned channel. wire maps a domain value to its serialized form.
// Errors accepted by ignore (e.g. a closed downstream pipe) are dropped.
// After the first write error remaining values are drained and discarded so
// senders never block.
func StartJSONL[T any](out io.Writer, bufSize int, wire func(T) any, ignore func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		var err error
		for v := range in {
			if err != nil {
				continue
			}
			err = enc.Encode(wire(v))
		}
		if err == nil {
			err = bw.Flush()
		}
		if err != nil && ignore != nil && ignore(err) {
			err = nil
		}
		done <- err
	}()

	return in, done
}
