package grid

import "math/bits"

// CandidateSet is a fixed-width bitset over the digits [1, side]:
// bit v-1 is set iff digit v has not been ruled out. The zero value is the
// empty set. Membership, insertion, removal and counting are all O(1).
type CandidateSet uint32

// FullSet returns the set containing every digit in [1, side].
func FullSet(side int) CandidateSet {
	return CandidateSet(1)<<side - 1
}

// Has reports whether digit v is in the set.
func (s CandidateSet) Has(v int) bool {
	return s&(CandidateSet(1)<<(v-1)) != 0
}

// Add returns the set with digit v included.
func (s CandidateSet) Add(v int) CandidateSet {
	return s | CandidateSet(1)<<(v-1)
}

// Remove returns the set with digit v excluded.
func (s CandidateSet) Remove(v int) CandidateSet {
	return s &^ (CandidateSet(1) << (v - 1))
}

// Count returns the number of digits in the set.
func (s CandidateSet) Count() int {
	return bits.OnesCount32(uint32(s))
}

// Lowest returns the smallest digit in the set, or 0 if the set is empty.
func (s CandidateSet) Lowest() int {
	if s == 0 {
		return 0
	}

	return bits.TrailingZeros32(uint32(s)) + 1
}

// Sole returns the single remaining digit and true when exactly one digit
// is left — a forced move for the cell owning this set.
func (s CandidateSet) Sole() (int, bool) {
	if s.Count() != 1 {
		return 0, false
	}

	return s.Lowest(), true
}

// Values returns the digits in the set in ascending order.
func (s CandidateSet) Values() []int {
	out := make([]int, 0, s.Count())
	for rest := s; rest != 0; {
		v := rest.Lowest()
		out = append(out, v)
		rest = rest.Remove(v)
	}

	return out
}
