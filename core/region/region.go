// core/region/region.go
//
// Package region models the candidate alignment regions of one read and the
// per-read post-processing that runs over them: primary marking, grouping
// under a dominant primary, and alternate-hit (XA) generation.
//
// Regions refer to each other by index into the read's slice, never by
// pointer, so a []Region can be copied or re-sorted freely as long as the
// indices are rewritten with it (MarkPrimary does this).
package region

import "math"

const (
	// None marks an absent Secondary/SecondaryAll link.
	None = -1
	// Hidden is the Secondary of an alternate-contig hit that is shadowed by
	// a better hit. It is never a valid index.
	Hidden = math.MaxInt32
)

// Region is one candidate placement of a read.
type Region struct {
	QB, QE int   // query span [QB, QE)
	RB, RE int64 // global reference span [RB, RE); RB >= LPac is reverse strand
	RID    int   // contig id

	Score     int // best local score
	TrueScore int // score of the final alignment
	Sub       int // best suboptimal score overlapping this one
	SubN      int // number of near-equal suboptimal hits
	CSub      int // best suboptimal score from the same chain
	AltScore  int // score of the alternate hit shadowing this one
	SeedCov   int // query bases covered by seeds
	SeedLen0  int // length of the anchoring seed
	FracRep   float32

	Secondary    int // index of the primary this region is nested under, or None
	SecondaryAll int // index of the dominant hit across all contigs, or None
	IsAlt        bool
	Hash         uint64
}

// New returns a region with both links unset.
func New(qb, qe int, rb, re int64, rid, score int) Region {
	return Region{
		QB:           qb,
		QE:           qe,
		RB:           rb,
		RE:           re,
		RID:          rid,
		Score:        score,
		TrueScore:    score,
		Secondary:    None,
		SecondaryAll: None,
	}
}

// IsPrimary reports whether r is not nested under another hit.
func (r *Region) IsPrimary() bool { return r.Secondary < 0 }

func validIndex(k, n int) bool { return k >= 0 && k < n }
