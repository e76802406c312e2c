// internal/cliutil/cliutil.go
package cliutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrNoMatch = errors.New("no input matched")

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// isLocation reports URL-style inputs (database DSNs, s3://...) that must
// not be globbed even when they carry '?' query strings.
func isLocation(s string) bool { return strings.Contains(s, "://") }

// ExpandInputs expands globs among path-like inputs, keeping "-" (stdin)
// and URL-style locations verbatim. Matches of one pattern are sorted.
func ExpandInputs(args []string) ([]string, error) {
	var out []string
	for _, a := range args {
		if a == "-" || isLocation(a) || !hasGlobMeta(a) {
			out = append(out, a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", a, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("%w %q", ErrNoMatch, a)
		}
		out = append(out, m...)
	}
	return out, nil
}
