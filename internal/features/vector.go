package features

type Feature struct {
	Name  string
	Value float64
}

// Vector is the named feature set computed from one applicant, in the order
// the encoder produced it. It is not yet aligned to any model.
type Vector struct {
	order  []string
	values map[string]float64
}

func newVector(capacity int) *Vector {
	return &Vector{
		order:  make([]string, 0, capacity),
		values: make(map[string]float64, capacity),
	}
}

func (v *Vector) set(f Feature) {
	if _, ok := v.values[f.Name]; !ok {
		v.order = append(v.order, f.Name)
	}
	v.values[f.Name] = f.Value
}

func (v *Vector) setAll(fs []Feature) {
	for _, f := range fs {
		v.set(f)
	}
}

func (v Vector) Get(name string) (float64, bool) {
	val, ok := v.values[name]
	return val, ok
}

func (v Vector) Names() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}

func (v Vector) Len() int { return len(v.order) }

// Reindex aligns the vector to columns: the result has exactly len(columns)
// entries in that order, 0 for any column the encoder did not produce.
// Computed features that are not in columns are dropped.
func (v Vector) Reindex(columns []string) []float64 {
	out := make([]float64, len(columns))
	for i, c := range columns {
		out[i] = v.values[c]
	}
	return out
}
