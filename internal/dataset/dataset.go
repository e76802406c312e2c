// Package dataset turns tabular sequence data into engine records. Rows
// carry one sequence each; Group pairs a patient's reference row with its
// (possibly) mutated sample row.
package dataset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"genescan/internal/engine"
)

// ErrInvalidBase is returned for a sequence holding anything but A, T, G, C.
var ErrInvalidBase = errors.New("invalid nucleotide")

// Row is one sequence of the dataset.
type Row struct {
	PatientID     string
	GeneType      string
	Sequence      string
	IsMutated     bool
	MutationCount int
	HealthStatus  string
}

// Columns is the canonical CSV header / SQL column list.
var Columns = []string{"patient_id", "gene_type", "sequence", "is_mutated", "mutation_count", "health_status"}

// Normalize upper-cases s and checks the alphabet.
func Normalize(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'T', 'G', 'C':
		default:
			return "", fmt.Errorf("%w %q at position %d", ErrInvalidBase, s[i], i)
		}
	}
	return s, nil
}

// Group pairs rows by patient, ordered by patient id. The reference is the
// first non-mutated row; the sample is the first mutated row, or the
// reference itself when the patient has none. Patients without a reference
// row are dropped. source is stamped on every record.
func Group(rows []Row, source string) []engine.Record {
	type pair struct {
		ref, sample *Row
	}
	byID := make(map[string]*pair)
	for i := range rows {
		r := &rows[i]
		p := byID[r.PatientID]
		if p == nil {
			p = &pair{}
			byID[r.PatientID] = p
		}
		switch {
		case !r.IsMutated && p.ref == nil:
			p.ref = r
		case r.IsMutated && p.sample == nil:
			p.sample = r
		}
	}
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]engine.Record, 0, len(ids))
	for _, id := range ids {
		p := byID[id]
		if p.ref == nil {
			continue
		}
		sample := p.sample
		if sample == nil {
			sample = p.ref
		}
		known := sample.IsMutated
		out = append(out, engine.Record{
			PatientID:    id,
			GeneType:     p.ref.GeneType,
			Reference:    p.ref.Sequence,
			Sample:       sample.Sequence,
			KnownMutated: &known,
			Source:       source,
		})
	}
	return out
}
