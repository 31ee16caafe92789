package axis

// Kind tells which shape a Series was built from.
type Kind int

const (
	KindSingle Kind = iota
	KindMulti
)

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// Series is the input of Compute: either one sequence of values or several
// named sequences. Callers pick the shape with Single or Multi.
type Series struct {
	kind   Kind
	groups [][]float64
}

// Single wraps one flat sequence of values.
func Single(data []float64) Series {
	return Series{kind: KindSingle, groups: [][]float64{data}}
}

// Multi wraps several sequences. The resulting range covers all of them
// together; there is no per-series scaling.
func Multi(data ...[]float64) Series {
	return Series{kind: KindMulti, groups: data}
}

// Kind reports the shape s was built with.
func (s Series) Kind() Kind { return s.kind }

// Len is the number of sequences in s.
func (s Series) Len() int { return len(s.groups) }

// Values flattens every sequence into one slice.
func (s Series) Values() []float64 {
	n := 0
	for _, g := range s.groups {
		n += len(g)
	}
	out := make([]float64, 0, n)
	for _, g := range s.groups {
		out = append(out, g...)
	}
	return out
}

// Combine builds the input for a flat values list plus any number of
// datasets. Without datasets it is Single(values); otherwise values joins
// the datasets as one more sequence when it is non-empty. The datasets
// slice is never written to.
func Combine(values []float64, datasets [][]float64) Series {
	if len(datasets) == 0 {
		return Single(values)
	}
	groups := make([][]float64, 0, len(datasets)+1)
	groups = append(groups, datasets...)
	if len(values) > 0 {
		groups = append(groups, values)
	}
	return Multi(groups...)
}
