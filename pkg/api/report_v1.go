// pkg/api/report_v1.go
package api

// Stable JSON/JSONL schema (v1). Keep fields, names, and types stable.
// Add new fields only with ",omitempty".

type MutationV1 struct {
	Position  int    `json:"position"`
	Reference string `json:"reference"`
	Sample    string `json:"sample"`
	Type      string `json:"type"`
}

type HotspotV1 struct {
	Start         int     `json:"start"`
	End           int     `json:"end"`
	MutationCount int     `json:"mutation_count"`
	Density       float64 `json:"density"`
}

type MutationTypesV1 struct {
	Transitions   int `json:"transitions"`
	Transversions int `json:"transversions"`
	Total         int `json:"total"`
}

// MutationAnalysisV1 lists at most the first 20 mutations; Total is the
// full count.
type MutationAnalysisV1 struct {
	Mutations    []MutationV1    `json:"mutations"`
	Total        int             `json:"total_mutations"`
	Rate         float64         `json:"mutation_rate"`
	Types        MutationTypesV1 `json:"mutation_types"`
	Significance string          `json:"significance"`
	Hotspots     []HotspotV1     `json:"hotspots"`
	RiskLevel    string          `json:"risk_level"`
}

type AlignmentV1 struct {
	Score           float64 `json:"alignment_score"`
	Identity        float64 `json:"identity"`
	Gaps            int     `json:"gaps"`
	MismatchCount   int     `json:"mismatch_count"`
	Mismatches      []int   `json:"mismatches,omitempty"` // first 20
	ReferenceLength int     `json:"reference_length"`
	SampleLength    int     `json:"sample_length"`
	GCReference     float64 `json:"gc_content_reference"`
	GCSample        float64 `json:"gc_content_sample"`
}

type RepeatV1 struct {
	Pattern   string `json:"pattern"`
	Length    int    `json:"length"`
	Frequency int    `json:"frequency"`
	Positions []int  `json:"positions"`
}

type WindowV1 struct {
	Start     int     `json:"start"`
	End       int     `json:"end"`
	GCContent float64 `json:"gc_content"`
	Length    int     `json:"length"`
}

type TandemRepeatV1 struct {
	Position    int    `json:"position"`
	Unit        string `json:"repeat_unit"`
	UnitLength  int    `json:"unit_length"`
	RepeatCount int    `json:"repeat_count"`
	TotalLength int    `json:"total_length"`
}

type PatternAnalysisV1 struct {
	SequenceLength   int              `json:"sequence_length"`
	Complexity       float64          `json:"complexity_score"`
	Motifs           map[string][]int `json:"motifs"`
	Repeats          []RepeatV1       `json:"repeating_patterns"`
	ConservedRegions []WindowV1       `json:"conserved_regions"`
	TandemRepeats    []TandemRepeatV1 `json:"tandem_repeats"`
	AverageGC        float64          `json:"average_gc_content"`
}

type AssessmentV1 struct {
	Level          string  `json:"risk_level"`
	Recommendation string  `json:"recommendation"`
	MutationCount  int     `json:"mutation_count"`
	MutationRate   float64 `json:"mutation_rate"`
	Identity       float64 `json:"identity"`
}

// PatientResultV1 is one patient; also the JSONL line schema.
type PatientResultV1 struct {
	PatientID    string `json:"patient_id"`
	GeneType     string `json:"gene_type"`
	Status       string `json:"status"`
	Error        string `json:"error,omitempty"`
	KnownMutated *bool  `json:"known_mutated,omitempty"`
	SourceFile   string `json:"source_file,omitempty"`

	Alignment  *AlignmentV1        `json:"alignment,omitempty"`
	Mutation   *MutationAnalysisV1 `json:"mutation_analysis,omitempty"`
	Pattern    *PatternAnalysisV1  `json:"pattern_analysis,omitempty"`
	Assessment *AssessmentV1       `json:"risk_assessment,omitempty"`
}

type SummaryV1 struct {
	HighRisk     int `json:"high_risk"`
	ModerateRisk int `json:"moderate_risk"`
	LowRisk      int `json:"low_risk"`
	Normal       int `json:"normal"`
	MissingInput int `json:"missing_input,omitempty"`
	Failed       int `json:"failed,omitempty"`
}

type AnalyzerSummaryV1 struct {
	Name          string `json:"agent_name"`
	TotalAnalyses int    `json:"total_analyses"`
}

// ReportV1 is the single-document JSON report.
type ReportV1 struct {
	TotalPatients int                 `json:"total_patients"`
	Results       []PatientResultV1   `json:"results"`
	Summary       SummaryV1           `json:"summary"`
	Analyzers     []AnalyzerSummaryV1 `json:"analyzers,omitempty"`
}
