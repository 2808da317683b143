// Package smem walks a query left to right and yields, per step, the set of
// super-maximal exact matches the Searcher finds at the cursor.
//
// An Iterator owns its scratch buffers and is not safe for concurrent use.
// Bind one per worker and rebind it to each query with SetQuery.
package smem

import (
	"math"

	"altseed/core/bwt"
)

// Defaults applied by New.
const (
	DefaultMinIntv = 1
	DefaultMaxLen  = math.MaxInt32
	DefaultMaxIntv = 0
)

// Iterator is a stateful SMEM cursor over one query at a time.
type Iterator struct {
	idx bwt.Searcher

	query []byte
	start int
	n     int

	minIntv int
	maxLen  int
	maxIntv uint64

	matches bwt.MatchSet    // returned by Next
	sub     bwt.MatchSet    // sub-matches inside the longest match
	tmp     [2]bwt.MatchSet // ping-pong scratch for the searcher
}

// New binds an iterator to idx. The iterator starts exhausted until
// SetQuery is called.
func New(idx bwt.Searcher) *Iterator {
	return &Iterator{
		idx:     idx,
		minIntv: DefaultMinIntv,
		maxLen:  DefaultMaxLen,
		maxIntv: DefaultMaxIntv,
	}
}

// Config overwrites the search thresholds for subsequent Next calls.
func (it *Iterator) Config(minIntv, maxLen int, maxIntv uint64) {
	it.minIntv = minIntv
	it.maxLen = maxLen
	it.maxIntv = maxIntv
}

// SetQuery rebinds the iterator to the first n codes of q and rewinds the
// cursor. n <= 0 leaves the iterator exhausted; n is clamped to len(q).
// The caller keeps ownership of q and must not mutate it until the next
// SetQuery or Close.
func (it *Iterator) SetQuery(n int, q []byte) {
	if n > len(q) {
		n = len(q)
	}
	it.query = q
	it.start = 0
	it.n = n
}

// Cursor is the query offset the next search starts from.
func (it *Iterator) Cursor() int { return it.start }

// Next returns the next SMEM set, or false once the query is exhausted.
// The slice aliases an internal buffer and is only valid until the next
// call to Next or Close. A set may be empty when the cursor base has no
// occurrence in the index.
func (it *Iterator) Next() ([]bwt.SMEM, bool) {
	it.tmp[0].Reset()
	it.tmp[1].Reset()
	it.matches.Reset()
	it.sub.Reset()
	if it.start >= it.n || it.start < 0 {
		return nil, false
	}
	for it.start < it.n && it.query[it.start] > 3 {
		it.start++ // skip ambiguous bases
	}
	if it.start == it.n {
		return nil, false
	}
	from := it.start
	next := it.idx.SMEM1(it.query[:it.n], from, bwt.Params{
		MinIntv: it.minIntv,
		MaxIntv: it.maxIntv,
		MaxLen:  it.maxLen,
	}, &it.matches, &it.tmp)
	if next <= from {
		next = from + 1
	} else if next > it.n {
		next = it.n
	}
	it.start = next
	return it.matches.Slice(), true
}

// Collect drains the iterator over q and returns a copy of every set.
func (it *Iterator) Collect(n int, q []byte) [][]bwt.SMEM {
	it.SetQuery(n, q)
	var out [][]bwt.SMEM
	for {
		set, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, append([]bwt.SMEM(nil), set...))
	}
}

// Close drops the buffers and the query reference. The iterator is
// exhausted afterwards; SetQuery revives it.
func (it *Iterator) Close() {
	it.matches.Release()
	it.sub.Release()
	it.tmp[0].Release()
	it.tmp[1].Release()
	it.query = nil
	it.start, it.n = 0, 0
}
