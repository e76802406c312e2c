// internal/dataset/generate.go
package dataset

import (
	"fmt"
	"math/rand"
)

// GeneTypes are the gene labels the generator draws from.
var GeneTypes = []string{"BRCA1", "BRCA2", "TP53", "EGFR", "KRAS", "MYC", "PTEN"}

const (
	MutatedFraction = 0.7
	MinMutationRate = 0.005
	MaxMutationRate = 0.02
	// more mutations than this mark a patient at_risk
	AtRiskMutations = 5
)

var bases = [4]byte{'A', 'T', 'G', 'C'}

// Generator produces synthetic patients. Equal seeds give equal datasets.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Sequence returns n random bases.
func (g *Generator) Sequence(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = bases[g.rng.Intn(4)]
	}
	return string(b)
}

// Mutate substitutes a distinct random base at each position with
// probability rate and returns the new sequence with the substitution count.
func (g *Generator) Mutate(s string, rate float64) (string, int) {
	b := []byte(s)
	n := 0
	for i := range b {
		if g.rng.Float64() >= rate {
			continue
		}
		nb := bases[g.rng.Intn(4)]
		for nb == b[i] {
			nb = bases[g.rng.Intn(4)]
		}
		b[i] = nb
		n++
	}
	return string(b), n
}

// Patients returns rows for n patients with sequences of length seqLen.
// Every patient has a healthy reference row; about MutatedFraction of them
// also get a mutated sample row.
func (g *Generator) Patients(n, seqLen int) []Row {
	rows := make([]Row, 0, n*2)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("PATIENT_%04d", i)
		gene := GeneTypes[g.rng.Intn(len(GeneTypes))]
		ref := g.Sequence(seqLen)
		rows = append(rows, Row{PatientID: id, GeneType: gene, Sequence: ref, HealthStatus: "healthy"})
		if g.rng.Float64() >= MutatedFraction {
			continue
		}
		rate := MinMutationRate + g.rng.Float64()*(MaxMutationRate-MinMutationRate)
		sample, count := g.Mutate(ref, rate)
		status := "monitor"
		if count > AtRiskMutations {
			status = "at_risk"
		}
		rows = append(rows, Row{
			PatientID: id, GeneType: gene, Sequence: sample,
			IsMutated: true, MutationCount: count, HealthStatus: status,
		})
	}
	return rows
}
