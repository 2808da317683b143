// core/mem/seed.go
package mem

import (
	"altseed/core/bwt"
	"altseed/core/refseq"
	"altseed/core/region"
	"altseed/core/smem"
)

// Index is a searchable, locatable reference index.
type Index interface {
	bwt.Searcher
	bwt.Locator
}

// SeedFinder turns SMEMs into ungapped regions: every located occurrence of
// a long enough SMEM is extended along its diagonal without gaps. It owns an
// SMEM iterator and must not be shared between goroutines.
type SeedFinder struct {
	opt Options
	ref *refseq.Reference
	idx Index
	it  *smem.Iterator
}

// NewSeedFinder binds a finder to idx, which must index ref.
func NewSeedFinder(opt Options, ref *refseq.Reference, idx Index) *SeedFinder {
	it := smem.New(idx)
	it.Config(opt.MinIntv, opt.MaxMemLen, opt.MaxIntv)
	return &SeedFinder{opt: opt, ref: ref, idx: idx, it: it}
}

// Close releases the iterator buffers.
func (f *SeedFinder) Close() { f.it.Close() }

type diagKey struct {
	rb     int64
	qb, qe int
}

// FindRegions encodes seq in place and returns its regions in discovery
// order. Seeds that extend to the same region are merged.
func (f *SeedFinder) FindRegions(seq []byte) []region.Region {
	bwt.EncodeInPlace(seq)
	f.it.SetQuery(len(seq), seq)
	var regs []region.Region
	seen := make(map[diagKey]int)
	for {
		set, ok := f.it.Next()
		if !ok {
			break
		}
		for _, m := range set {
			if m.Len() < f.opt.MinSeedLen {
				continue
			}
			for _, pos := range f.idx.Locate(m, f.opt.MaxOcc) {
				r, ok := f.extend(seq, m, pos)
				if !ok {
					continue
				}
				k := diagKey{rb: r.RB, qb: r.QB, qe: r.QE}
				if j, dup := seen[k]; dup {
					regs[j].SeedCov = max(regs[j].SeedCov, r.SeedCov)
					continue
				}
				seen[k] = len(regs)
				regs = append(regs, r)
			}
		}
	}
	f.it.SetQuery(0, nil)
	return regs
}

// extend grows the seed m placed at global position pos in both directions
// without gaps, stopping at the contig ends.
func (f *SeedFinder) extend(q []byte, m bwt.SMEM, pos int64) (region.Region, bool) {
	ref := f.ref
	seedLen := int64(m.Len())
	first, _ := ref.Depos(pos)
	last, _ := ref.Depos(pos + seedLen - 1)
	rid := ref.Pos2RID(first)
	if rid < 0 || rid != ref.Pos2RID(last) {
		return region.Region{}, false // seed bridges two contigs
	}
	c := ref.Contigs[rid]
	cb, ce := c.Offset, c.Offset+c.Len
	if pos >= ref.LPac {
		cb, ce = 2*ref.LPac-(c.Offset+c.Len), 2*ref.LPac-c.Offset
	}

	lo := max(cb, pos-int64(m.Start))
	hi := min(ce, pos+seedLen+int64(len(q)-m.End))
	seg := ref.Fetch(lo, hi)
	at := func(g int64) byte { return seg[g-lo] }

	a, b := f.opt.MatchScore, f.opt.Mismatch
	score := int(seedLen) * a

	// right
	best, bestLen, run, full := 0, 0, 0, true
	n := min(len(q)-m.End, int(hi-(pos+seedLen)))
	for j := 0; j < n; j++ {
		if qc := q[m.End+j]; qc < 4 && qc == at(pos+seedLen+int64(j)) {
			run += a
		} else {
			run -= b
		}
		if run > best {
			best, bestLen = run, j+1
		} else if best-run > f.opt.ZDrop {
			full = false
			break
		}
	}
	if full && m.End+n == len(q) && bestLen < n && run > 0 && run > best-f.opt.PenClip {
		best, bestLen = run, n
	}
	score += best
	qe, re := m.End+bestLen, pos+seedLen+int64(bestLen)

	// left
	best, bestLen, run, full = 0, 0, 0, true
	n = min(m.Start, int(pos-lo))
	for j := 1; j <= n; j++ {
		if qc := q[m.Start-j]; qc < 4 && qc == at(pos-int64(j)) {
			run += a
		} else {
			run -= b
		}
		if run > best {
			best, bestLen = run, j
		} else if best-run > f.opt.ZDrop {
			full = false
			break
		}
	}
	if full && m.Start-n == 0 && bestLen < n && run > 0 && run > best-f.opt.PenClip {
		best, bestLen = run, n
	}
	score += best
	qb, rb := m.Start-bestLen, pos-int64(bestLen)

	r := region.New(qb, qe, rb, re, rid, score)
	r.SeedCov = m.Len()
	r.SeedLen0 = m.Len()
	r.IsAlt = c.IsAlt
	return r, true
}
