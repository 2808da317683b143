package bwt

// MatchSet is a growable SMEM buffer. Reset drops the logical length and
// keeps the backing array, so a set owned by a long-lived iterator stops
// allocating once it has reached its working size.
type MatchSet struct {
	a []SMEM
}

func (s *MatchSet) Reset()            { s.a = s.a[:0] }
func (s *MatchSet) Push(m SMEM)       { s.a = append(s.a, m) }
func (s *MatchSet) Len() int          { return len(s.a) }
func (s *MatchSet) Cap() int          { return cap(s.a) }
func (s *MatchSet) At(i int) SMEM     { return s.a[i] }
func (s *MatchSet) Last() SMEM        { return s.a[len(s.a)-1] }
func (s *MatchSet) Slice() []SMEM     { return s.a }
func (s *MatchSet) Release()          { s.a = nil }
func (s *MatchSet) Set(i int, m SMEM) { s.a[i] = m }

// Reverse flips the set in place.
func (s *MatchSet) Reverse() {
	for i, j := 0, len(s.a)-1; i < j; i, j = i+1, j-1 {
		s.a[i], s.a[j] = s.a[j], s.a[i]
	}
}
