package match

type pairKey struct {
	a, b string
}

// PairSet holds the ordered name pairs a self-comparison should evaluate.
// For names n0..nk it contains (ni, nj) for every i <= j, so each unordered
// pair, self pairs included, is evaluated exactly once when A is iterated
// against itself. It is read-only after construction.
type PairSet struct {
	keys map[pairKey]struct{}
}

// NewPairSet builds the set from names in collection order.
func NewPairSet(names []string) *PairSet {
	keys := make(map[pairKey]struct{}, len(names)*(len(names)+1)/2)
	for i := range names {
		for j := i; j < len(names); j++ {
			keys[pairKey{names[i], names[j]}] = struct{}{}
		}
	}
	return &PairSet{keys: keys}
}

// Allows reports whether reference a should be compared with query b.
// A nil PairSet allows everything.
func (s *PairSet) Allows(a, b string) bool {
	if s == nil {
		return true
	}
	_, ok := s.keys[pairKey{a, b}]
	return ok
}

// Len returns the number of pairs in the set.
func (s *PairSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}
