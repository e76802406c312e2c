// internal/output/json.go
package output

import (
	"io"

	"genescan/internal/assess"
	"genescan/internal/engine"
	"genescan/internal/jsonutil"
	"genescan/pkg/api"
)

func capInts(a []int) []int {
	if len(a) > MaxListedMutations {
		a = a[:MaxListedMutations]
	}
	return append([]int(nil), a...)
}

// ToAPIResult converts a domain Result to the stable wire schema (v1).
// Analyses are only attached to results with status ok.
func ToAPIResult(r engine.Result) api.PatientResultV1 {
	v := api.PatientResultV1{
		PatientID:    r.PatientID,
		GeneType:     r.GeneType,
		Status:       string(r.Status),
		Error:        r.Error,
		KnownMutated: r.KnownMutated,
		SourceFile:   r.Source,
	}
	if r.Status == engine.StatusMissingInput {
		return v
	}
	a := r.Alignment
	v.Alignment = &api.AlignmentV1{
		Score:           a.Score,
		Identity:        a.Identity,
		Gaps:            a.Gaps,
		MismatchCount:   len(a.Mismatches),
		Mismatches:      capInts(a.Mismatches),
		ReferenceLength: a.ReferenceLength,
		SampleLength:    a.SampleLength,
		GCReference:     a.GCReference,
		GCSample:        a.GCSample,
	}
	if r.Status != engine.StatusOK {
		return v
	}
	v.Mutation = toAPIMutation(r)
	v.Pattern = toAPIPattern(r)
	as := r.Assessment
	v.Assessment = &api.AssessmentV1{
		Level:          string(as.Level),
		Recommendation: as.Recommendation,
		MutationCount:  as.MutationCount,
		MutationRate:   as.MutationRate,
		Identity:       as.Identity,
	}
	return v
}

func toAPIMutation(r engine.Result) *api.MutationAnalysisV1 {
	m := r.Mutation
	muts := m.Mutations
	if len(muts) > MaxListedMutations {
		muts = muts[:MaxListedMutations]
	}
	out := &api.MutationAnalysisV1{
		Mutations:    make([]api.MutationV1, 0, len(muts)),
		Total:        m.Total,
		Rate:         m.Rate,
		Types:        api.MutationTypesV1{Transitions: m.Types.Transitions, Transversions: m.Types.Transversions, Total: m.Types.Total},
		Significance: m.Significance,
		Hotspots:     make([]api.HotspotV1, 0, len(m.Hotspots)),
		RiskLevel:    string(r.MutationRisk),
	}
	for _, x := range muts {
		out.Mutations = append(out.Mutations, api.MutationV1{
			Position: x.Position, Reference: string(x.Reference), Sample: string(x.Sample), Type: x.Kind,
		})
	}
	for _, h := range m.Hotspots {
		out.Hotspots = append(out.Hotspots, api.HotspotV1{Start: h.Start, End: h.End, MutationCount: h.MutationCount, Density: h.Density})
	}
	return out
}

func toAPIPattern(r engine.Result) *api.PatternAnalysisV1 {
	p := r.Pattern
	out := &api.PatternAnalysisV1{
		SequenceLength:   p.SequenceLength,
		Complexity:       p.Complexity,
		Motifs:           make(map[string][]int, len(p.Motifs)),
		Repeats:          make([]api.RepeatV1, 0, len(p.Repeats)),
		ConservedRegions: make([]api.WindowV1, 0, len(p.ConservedRegions)),
		TandemRepeats:    make([]api.TandemRepeatV1, 0, len(p.TandemRepeats)),
		AverageGC:        p.AverageGC,
	}
	for name, pos := range p.Motifs {
		out.Motifs[name] = append([]int{}, pos...)
	}
	for _, x := range p.Repeats {
		out.Repeats = append(out.Repeats, api.RepeatV1{Pattern: x.Pattern, Length: x.Length, Frequency: x.Frequency, Positions: append([]int{}, x.Positions...)})
	}
	for _, w := range p.ConservedRegions {
		out.ConservedRegions = append(out.ConservedRegions, api.WindowV1{Start: w.Start, End: w.End, GCContent: w.GCContent, Length: w.Length})
	}
	for _, t := range p.TandemRepeats {
		out.TandemRepeats = append(out.TandemRepeats, api.TandemRepeatV1{
			Position: t.Position, Unit: t.Unit, UnitLength: t.UnitLength, RepeatCount: t.RepeatCount, TotalLength: t.TotalLength,
		})
	}
	return out
}

// Summarize counts results per risk level. Missing and failed patients are
// counted separately and never contribute to a level.
func Summarize(list []engine.Result) api.SummaryV1 {
	tally := assess.Tally{}
	var s api.SummaryV1
	for _, r := range list {
		switch r.Status {
		case engine.StatusMissingInput:
			s.MissingInput++
		case engine.StatusFailed:
			s.Failed++
		default:
			tally.Add(r.Assessment.Level)
		}
	}
	s.HighRisk = tally[assess.High]
	s.ModerateRisk = tally[assess.Moderate]
	s.LowRisk = tally[assess.Low]
	s.Normal = tally[assess.Normal]
	return s
}

// BuildReport assembles the full v1 report.
func BuildReport(list []engine.Result, analyzers []engine.LogSummary) api.ReportV1 {
	rep := api.ReportV1{
		TotalPatients: len(list),
		Results:       make([]api.PatientResultV1, 0, len(list)),
		Summary:       Summarize(list),
	}
	for _, r := range list {
		rep.Results = append(rep.Results, ToAPIResult(r))
	}
	for _, a := range analyzers {
		rep.Analyzers = append(rep.Analyzers, api.AnalyzerSummaryV1{Name: a.Name, TotalAnalyses: a.Total})
	}
	return rep
}

// WriteJSON writes a single pretty-indented v1 report.
func WriteJSON(w io.Writer, list []engine.Result, analyzers []engine.LogSummary) error {
	return jsonutil.EncodePretty(w, BuildReport(list, analyzers))
}
