// internal/dataset/csv.go
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV parses rows with a header naming at least patient_id, gene_type,
// sequence and is_mutated. Column order is free; unknown columns are ignored.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, need := range []string{"patient_id", "gene_type", "sequence", "is_mutated"} {
		if _, ok := idx[need]; !ok {
			return nil, fmt.Errorf("csv header: missing column %q", need)
		}
	}
	get := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		row, err := parseRow(
			get(rec, "patient_id"), get(rec, "gene_type"), get(rec, "sequence"),
			get(rec, "is_mutated"), get(rec, "mutation_count"), get(rec, "health_status"),
		)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(id, gene, sequence, mutated, count, health string) (Row, error) {
	if id == "" {
		return Row{}, errors.New("empty patient_id")
	}
	// empty sequences are kept; the engine reports them as missing input
	s := ""
	if sequence != "" {
		var err error
		if s, err = Normalize(sequence); err != nil {
			return Row{}, err
		}
	}
	isMut, err := parseBool(mutated)
	if err != nil {
		return Row{}, fmt.Errorf("is_mutated: %w", err)
	}
	n := 0
	if count != "" {
		if n, err = strconv.Atoi(count); err != nil {
			return Row{}, fmt.Errorf("mutation_count: %w", err)
		}
	}
	return Row{PatientID: id, GeneType: gene, Sequence: s, IsMutated: isMut, MutationCount: n, HealthStatus: health}, nil
}

// parseBool accepts Go bool syntax plus the "True"/"False" spelling of
// pandas-written CSVs and an empty cell as false.
func parseBool(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(strings.ToLower(v))
}

// WriteCSV writes rows with the canonical Columns header.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.PatientID, r.GeneType, r.Sequence,
			strconv.FormatBool(r.IsMutated), strconv.Itoa(r.MutationCount), r.HealthStatus,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
