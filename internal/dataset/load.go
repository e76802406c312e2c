// internal/dataset/load.go
package dataset

import (
	"context"
	"fmt"
	"strings"

	"genescan/internal/engine"
)

// Record is the engine's per-patient input.
type Record = engine.Record

// Format names an on-disk layout.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatFASTA Format = "fasta"
	FormatSQL   Format = "sql"
)

// DetectFormat picks the layout from the input location.
func DetectFormat(input string) Format {
	if _, _, ok := ParseDSN(input); ok {
		return FormatSQL
	}
	name := strings.TrimSuffix(strings.ToLower(input), ".gz")
	for _, ext := range []string{".fa", ".fasta", ".fna"} {
		if strings.HasSuffix(name, ext) {
			return FormatFASTA
		}
	}
	return FormatCSV
}

// Loader reads inputs into records. The zero value reads the default table.
type Loader struct {
	Table string
}

// ReadRows reads the raw rows of one input.
func (l Loader) ReadRows(ctx context.Context, input string) ([]Row, error) {
	if driver, dsn, ok := ParseDSN(input); ok {
		table := l.Table
		if table == "" {
			table = DefaultTable
		}
		return LoadSQL(ctx, driver, dsn, table)
	}
	rc, err := openReader(input)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	if DetectFormat(input) == FormatFASTA {
		return ReadFASTA(rc)
	}
	return ReadCSV(rc)
}

// Load reads one input and groups it into records stamped with the input.
func (l Loader) Load(ctx context.Context, input string) ([]Record, error) {
	rows, err := l.ReadRows(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	return Group(rows, input), nil
}

// Limit keeps at most n records; n <= 0 keeps all.
func Limit(recs []Record, n int) []Record {
	if n <= 0 || len(recs) <= n {
		return recs
	}
	return recs[:n]
}
