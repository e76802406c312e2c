package engine

import (
	"errors"
	"fmt"

	"genescan/internal/alignment"
	"genescan/internal/assess"
	"genescan/internal/mutation"
	"genescan/internal/pattern"
)

// ErrMissingInput marks a record without a reference or sample sequence.
var ErrMissingInput = errors.New("missing reference or sample sequence")

// Record is one patient's input.
type Record struct {
	PatientID    string
	GeneType     string
	Reference    string
	Sample       string
	KnownMutated *bool  // ground truth when the dataset carries it
	Source       string // input the record was read from
}

type Status string

const (
	StatusOK           Status = "ok"
	StatusMissingInput Status = "missing_input"
	StatusFailed       Status = "failed"
)

// Result is everything learned about one patient.
type Result struct {
	PatientID    string
	GeneType     string
	KnownMutated *bool
	Source       string

	Status Status
	Error  string

	Alignment    alignment.Result
	Mutation     mutation.Analysis
	MutationRisk mutation.Risk
	Pattern      pattern.Analysis
	Assessment   assess.Assessment
}

// The three scanners the engine composes. Any implementation (including
// fakes in tests) can be plugged in through NewWithScanners.
type (
	MutationScanner interface {
		Scan(ref, sample string) (mutation.Analysis, error)
	}
	PatternScanner interface {
		Analyze(seq string) pattern.Analysis
	}
	AlignmentScorer interface {
		Align(ref, sample string) alignment.Result
	}
)

// Config gathers the knobs of every scanner.
type Config struct {
	Mutation mutation.Config
	Pattern  pattern.Config
}

func DefaultConfig() Config {
	return Config{Mutation: mutation.DefaultConfig(), Pattern: pattern.DefaultConfig()}
}

type Engine struct {
	mut MutationScanner
	pat PatternScanner
	aln AlignmentScorer
}

func New(c Config) *Engine {
	return NewWithScanners(mutation.New(c.Mutation), pattern.New(c.Pattern), alignment.New())
}

func NewWithScanners(m MutationScanner, p PatternScanner, a AlignmentScorer) *Engine {
	return &Engine{mut: m, pat: p, aln: a}
}

// Analyze runs every scanner over rec. A record without sequences yields a
// missing_input result and a nil error so batches keep going. A failing
// mutation scan yields a failed result carrying the alignment computed so
// far, together with the wrapped error.
func (e *Engine) Analyze(rec Record) (Result, error) {
	return e.AnalyzeInto(rec, nil)
}

// AnalyzeInto is Analyze that also appends each scanner's output to the
// matching log in logs. Nil logs (or nil fields) are skipped.
func (e *Engine) AnalyzeInto(rec Record, logs *Logs) (Result, error) {
	res := Result{
		PatientID:    rec.PatientID,
		GeneType:     rec.GeneType,
		KnownMutated: rec.KnownMutated,
		Source:       rec.Source,
	}
	if rec.Reference == "" || rec.Sample == "" {
		res.Status = StatusMissingInput
		res.Error = ErrMissingInput.Error()
		return res, nil
	}

	res.Alignment = e.aln.Align(rec.Reference, rec.Sample)
	logs.alignment(res.Alignment)

	m, err := e.mut.Scan(rec.Reference, rec.Sample)
	if err != nil {
		res.Status = StatusFailed
		res.Error = err.Error()
		return res, fmt.Errorf("patient %s: %w", rec.PatientID, err)
	}
	res.Mutation = m
	logs.mutation(m)
	res.MutationRisk = mutation.ClassifyRisk(m)

	// patterns are searched on the patient's own sequence
	res.Pattern = e.pat.Analyze(rec.Sample)
	logs.pattern(res.Pattern)
	res.Assessment = assess.Assess(m, res.Alignment)
	res.Status = StatusOK
	return res, nil
}
