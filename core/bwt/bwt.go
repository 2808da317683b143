// Package bwt holds the seed-search contract driven by the SMEM iterator:
// match intervals, reusable match sets and the backward-extension Searcher.
// It never imports smem, region, mem or anything under internal/.
package bwt

// SMEM is a super-maximal exact match. [Lo, Hi) is the suffix-array range
// in index space; [Start, End) is the span on the query.
type SMEM struct {
	Lo, Hi     uint64
	Start, End int
}

// Count is the number of reference occurrences (interval size).
func (m SMEM) Count() uint64 { return m.Hi - m.Lo }

// Len is the match length on the query.
func (m SMEM) Len() int { return m.End - m.Start }

// Params are the thresholds passed to a single search call.
type Params struct {
	MinIntv int    // minimum interval size for a match to be kept (<1 means 1)
	MaxIntv uint64 // stop forward extension once the interval drops below this (0 = off)
	MaxLen  int    // cap on forward extension length (<=0 = off)
}

// Searcher is the backward-extension primitive. SMEM1 finds the SMEMs that
// cover query position start, writes them to out sorted by query start,
// and returns the next cursor position, which must be > start.
// tmp is caller-owned scratch; implementations may clobber it.
type Searcher interface {
	SMEM1(q []byte, start int, p Params, out *MatchSet, tmp *[2]MatchSet) int
}

// Locator maps an interval to global index coordinates. Coordinates in
// [0, LPac) are forward strand; [LPac, 2*LPac) are the reverse complement.
type Locator interface {
	Locate(m SMEM, max int) []int64
}
