// internal/output/text.go
package output

import (
	"bufio"
	"fmt"
	"io"

	"genescan/internal/engine"
)

// WriteText prints an optional header and one TSV row per result.
func WriteText(w io.Writer, list []engine.Result, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		if _, err := fmt.Fprintln(bw, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintln(bw, FormatRowTSV(r)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// StreamText writes rows as they arrive on in. The channel is always drained.
func StreamText(w io.Writer, in <-chan engine.Result, header bool) error {
	var err error
	if header {
		_, err = fmt.Fprintln(w, TSVHeader)
	}
	for r := range in {
		if err != nil {
			continue
		}
		_, err = fmt.Fprintln(w, FormatRowTSV(r))
	}
	return err
}
