// core/mem/align.go
package mem

import (
	"math/rand"

	"altseed/core/region"
)

// Finder discovers the candidate regions of one read. It may rewrite seq
// (for instance to encode it in place).
type Finder interface {
	FindRegions(seq []byte) []region.Region
}

// FinderFunc adapts a function to Finder.
type FinderFunc func(seq []byte) []region.Region

func (f FinderFunc) FindRegions(seq []byte) []region.Region { return f(seq) }

// AlignRead finds and marks the regions of seq. seq is copied first, so the
// caller's buffer is never modified. rng supplies the tie-breaking id for
// MarkPrimary; a nil rng uses id 0.
func AlignRead(opt Options, f Finder, seq []byte, rng *rand.Rand) []region.Region {
	cp := make([]byte, len(seq))
	copy(cp, seq)
	regs := f.FindRegions(cp)
	var id int64
	if rng != nil {
		id = rng.Int63()
	}
	region.MarkPrimary(opt.MarkOptions, regs, id)
	return regs
}
