package bwt

import (
	"bytes"
	"sort"
)

// Naive is a brute-force Searcher and Locator over an in-memory reference.
// It sorts the suffixes of fwd+rc directly, so it is only fit for small
// references and tests; production callers plug in a real FM-index.
type Naive struct {
	text []byte  // fwd, Ambiguous, revcomp, Ambiguous
	sa   []int32 // suffix order of text
	lPac int64
}

// NewNaive indexes an encoded (0..3) forward reference. Ambiguous bases are
// kept and never match.
func NewNaive(pac []byte) *Naive {
	n := len(pac)
	text := make([]byte, 0, 2*n+2)
	text = append(text, pac...)
	text = append(text, Ambiguous)
	text = append(text, RevComp(pac)...)
	text = append(text, Ambiguous)

	sa := make([]int32, len(text))
	for i := range sa {
		sa[i] = int32(i)
	}
	sort.Slice(sa, func(i, j int) bool {
		return bytes.Compare(text[sa[i]:], text[sa[j]:]) < 0
	})
	return &Naive{text: text, sa: sa, lPac: int64(n)}
}

// LPac is the forward reference length.
func (ix *Naive) LPac() int64 { return ix.lPac }

func (ix *Naive) prefix(i int, n int) []byte {
	p := int(ix.sa[i])
	end := p + n
	if end > len(ix.text) {
		end = len(ix.text)
	}
	return ix.text[p:end]
}

// interval returns the suffix-array range of suffixes starting with pat.
func (ix *Naive) interval(pat []byte) SMEM {
	n := len(pat)
	lo := sort.Search(len(ix.sa), func(i int) bool {
		return bytes.Compare(ix.prefix(i, n), pat) >= 0
	})
	hi := sort.Search(len(ix.sa), func(i int) bool {
		return bytes.Compare(ix.prefix(i, n), pat) > 0
	})
	return SMEM{Lo: uint64(lo), Hi: uint64(hi)}
}

func (ix *Naive) extend(q []byte, from, to int) SMEM {
	m := ix.interval(q[from:to])
	m.Start, m.End = from, to
	return m
}

// SMEM1 follows the two-phase search of bwa's bwt_smem1a: extend forward
// from x recording every interval-size change, then extend those
// candidates backward and keep the ones that cannot grow further without
// being contained in a longer match.
func (ix *Naive) SMEM1(q []byte, x int, p Params, mem *MatchSet, tmp *[2]MatchSet) int {
	mem.Reset()
	if x < 0 || x >= len(q) {
		return len(q)
	}
	if q[x] > 3 {
		return x + 1
	}
	minIntv := uint64(1)
	if p.MinIntv > 1 {
		minIntv = uint64(p.MinIntv)
	}
	curr, prev := &tmp[0], &tmp[1]
	curr.Reset()
	prev.Reset()

	ik := ix.extend(q, x, x+1)
	if ik.Count() < minIntv {
		return x + 1
	}
	i := x + 1
	for ; i < len(q); i++ {
		if ik.Count() < p.MaxIntv {
			curr.Push(ik) // small enough; stop extending
			break
		}
		if q[i] > 3 || (p.MaxLen > 0 && i-x >= p.MaxLen) {
			curr.Push(ik)
			break
		}
		ok := ix.extend(q, x, i+1)
		if ok.Count() != ik.Count() {
			curr.Push(ik)
			if ok.Count() < minIntv {
				break
			}
		}
		ik = ok
	}
	if i == len(q) {
		curr.Push(ik)
	}
	// once the forward interval fell below MaxIntv, candidates are kept
	// as they are instead of being extended backward
	stopped := ik.Count() < p.MaxIntv
	curr.Reverse() // longest first
	ret := curr.At(0).End

	prev, curr = curr, prev
	for i := x - 1; i >= -1; i-- {
		c := -1
		if i >= 0 && q[i] <= 3 {
			c = int(q[i])
		}
		curr.Reset()
		for j := 0; j < prev.Len(); j++ {
			pm := prev.At(j)
			var ok SMEM
			if c >= 0 && !stopped {
				ok = ix.extend(q, i, pm.End)
			}
			if c < 0 || stopped || ok.Count() < minIntv {
				if curr.Len() == 0 && (mem.Len() == 0 || i+1 < mem.Last().Start) {
					pm.Start = i + 1
					mem.Push(pm)
				}
			} else if curr.Len() == 0 || ok.Count() != curr.Last().Count() {
				curr.Push(ok)
			}
		}
		if curr.Len() == 0 {
			break
		}
		prev, curr = curr, prev
	}
	mem.Reverse()
	return ret
}

// Locate returns up to max global positions for m (all when max <= 0).
func (ix *Naive) Locate(m SMEM, max int) []int64 {
	n := int(m.Count())
	if max > 0 && n > max {
		n = max
	}
	out := make([]int64, 0, n)
	for k := m.Lo; k < m.Hi && len(out) < n; k++ {
		pos := int64(ix.sa[k])
		switch {
		case pos < ix.lPac:
		case pos == ix.lPac || pos > 2*ix.lPac:
			continue // separator suffixes never carry a match
		default:
			pos--
		}
		out = append(out, pos)
	}
	return out
}
