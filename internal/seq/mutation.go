package seq

// KindSubstitution is the only mutation kind a positional diff can produce.
const KindSubstitution = "substitution"

// Mutation is one differing position between a reference and a sample.
type Mutation struct {
	Position  int
	Reference byte
	Sample    byte
	Kind      string
}

// FindMutations returns every position where ref and sample differ, in
// ascending order.
func FindMutations(ref, sample string) ([]Mutation, error) {
	if len(ref) != len(sample) {
		return nil, lengthErr(ref, sample)
	}
	var out []Mutation
	for i := 0; i < len(ref); i++ {
		if ref[i] != sample[i] {
			out = append(out, Mutation{Position: i, Reference: ref[i], Sample: sample[i], Kind: KindSubstitution})
		}
	}
	return out, nil
}
