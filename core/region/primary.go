// core/region/primary.go
package region

import "sort"

// MarkOptions are the scoring parameters primary marking depends on.
type MarkOptions struct {
	MatchScore int // a
	Mismatch   int // b
	OpenDel    int
	ExtDel     int
	OpenIns    int
	ExtIns     int
	MaskLevel  float64
}

// DefaultMarkOptions matches bwa mem defaults.
func DefaultMarkOptions() MarkOptions {
	return MarkOptions{
		MatchScore: 1,
		Mismatch:   4,
		OpenDel:    6,
		ExtDel:     1,
		OpenIns:    6,
		ExtIns:     1,
		MaskLevel:  0.5,
	}
}

// nearTie is the largest score gap still counted as a competing hit.
func (o MarkOptions) nearTie() int {
	t := o.MatchScore + o.Mismatch
	if d := o.OpenDel + o.ExtDel; d > t {
		t = d
	}
	if i := o.OpenIns + o.ExtIns; i > t {
		t = i
	}
	return t
}

// MarkPrimary sorts regs best first and tags each one as primary or nested
// under a better overlapping hit. Sub and SubN are refreshed along the way.
//
// SecondaryAll is computed over every hit. When alternate-contig hits are
// present the regions are re-sorted primary assembly first, Secondary is
// recomputed among primary-assembly hits only, and shadowed alternate hits
// get Secondary = Hidden. id seeds the tie-breaking hash; callers draw it
// from a seeded source to get reproducible output. Returns the number of
// primary-assembly regions.
func MarkPrimary(opt MarkOptions, regs []Region, id int64) int {
	n := len(regs)
	if n == 0 {
		return 0
	}
	nPri := 0
	for i := range regs {
		r := &regs[i]
		r.Sub, r.SubN, r.AltScore = 0, 0, 0
		r.Secondary, r.SecondaryAll = None, None
		r.Hash = hash64(uint64(id) + uint64(i))
		if !r.IsAlt {
			nPri++
		}
	}
	sort.SliceStable(regs, func(i, j int) bool { return byScore(&regs[i], &regs[j]) })
	z := markCore(opt, regs, nil)

	for i := range regs {
		r := &regs[i]
		r.SecondaryAll = i // rank in the all-hits order
		if !r.IsAlt && r.Secondary >= 0 && regs[r.Secondary].IsAlt {
			r.AltScore = regs[r.Secondary].Score
		}
	}
	if nPri == n {
		for i := range regs {
			regs[i].SecondaryAll = regs[i].Secondary
		}
		return nPri
	}

	if nPri > 0 {
		sort.SliceStable(regs, func(i, j int) bool { return byAssembly(&regs[i], &regs[j]) })
	}
	rank := make([]int, n)
	for i := range regs {
		rank[regs[i].SecondaryAll] = i
	}
	for i := range regs {
		r := &regs[i]
		if r.Secondary >= 0 {
			r.SecondaryAll = rank[r.Secondary]
			if r.IsAlt {
				r.Secondary = Hidden
			}
		} else {
			r.SecondaryAll = None
		}
	}
	if nPri > 0 {
		for i := 0; i < nPri; i++ {
			regs[i].Sub, regs[i].Secondary = 0, None
		}
		markCore(opt, regs[:nPri], z)
	}
	return nPri
}

// markCore walks regs in order and keeps a list of primaries; a region that
// significantly overlaps an earlier primary on the query becomes its
// secondary and feeds the primary's Sub/SubN.
func markCore(opt MarkOptions, regs []Region, z []int) []int {
	tie := opt.nearTie()
	z = append(z[:0], 0)
	for i := 1; i < len(regs); i++ {
		a := &regs[i]
		k := 0
		for ; k < len(z); k++ {
			p := &regs[z[k]]
			bMax := max(p.QB, a.QB)
			eMin := min(p.QE, a.QE)
			if eMin <= bMax {
				continue
			}
			minL := min(a.QE-a.QB, p.QE-p.QB)
			if float64(eMin-bMax) >= float64(minL)*opt.MaskLevel {
				if p.Sub == 0 {
					p.Sub = a.Score
				}
				if p.Score-a.Score <= tie && (p.IsAlt || !a.IsAlt) {
					p.SubN++
				}
				break
			}
		}
		if k == len(z) {
			z = append(z, i)
		} else {
			a.Secondary = z[k]
		}
	}
	return z
}

func byScore(a, b *Region) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.IsAlt != b.IsAlt {
		return !a.IsAlt
	}
	return a.Hash < b.Hash
}

func byAssembly(a, b *Region) bool {
	if a.IsAlt != b.IsAlt {
		return !a.IsAlt
	}
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Hash < b.Hash
}

// hash64 is Thomas Wang's 64-bit integer mix.
func hash64(key uint64) uint64 {
	key += ^(key << 32)
	key ^= key >> 22
	key += ^(key << 13)
	key ^= key >> 8
	key += key << 3
	key ^= key >> 15
	key += ^(key << 27)
	key ^= key >> 31
	return key
}
