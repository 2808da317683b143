// core/mem/aligner.go
package mem

import (
	"math/rand"

	"github.com/pkg/errors"

	"altseed/core/refseq"
	"altseed/core/region"
)

// Hit is a primary alignment and its XA string.
type Hit struct {
	Index  int // into Result.Regions
	Region region.Region
	Aln    region.Alignment
	XA     string
}

// Result is everything produced for one read.
type Result struct {
	Regions []region.Region
	Hits    []Hit
	Alt     region.AltStats
}

// Aligner runs seed finding, primary marking, XA generation and placement
// for one read at a time. It is not safe for concurrent use; give each
// worker its own.
type Aligner struct {
	opt    Options
	ref    *refseq.Reference
	finder *SeedFinder
	conv   *Ungapped
	rng    *rand.Rand
}

// NewAligner builds an aligner over ref/idx. seed drives tie-breaking.
func NewAligner(opt Options, ref *refseq.Reference, idx Index, seed int64) *Aligner {
	return &Aligner{
		opt:    opt,
		ref:    ref,
		finder: NewSeedFinder(opt, ref, idx),
		conv:   NewUngapped(opt, ref),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Reseed resets the tie-breaking source. Seeding from the read's input
// position makes results independent of which worker handles the read.
func (a *Aligner) Reseed(seed int64) { a.rng.Seed(seed) }

// Align processes one read. seq is not modified.
func (a *Aligner) Align(seq []byte) (Result, error) {
	regs := AlignRead(a.opt, a.finder, seq, a.rng)
	xa, st, err := region.GenAltStats(a.opt.Alt, a.ref, a.conv, regs, seq)
	if err != nil {
		return Result{}, errors.Wrap(err, "alt hits")
	}
	res := Result{Regions: regs, Alt: st}
	for i := range regs {
		if !regs[i].IsPrimary() {
			continue
		}
		aln, err := a.conv.Reg2Aln(seq, &regs[i], nil)
		if err != nil {
			return Result{}, errors.Wrapf(err, "place region %d", i)
		}
		res.Hits = append(res.Hits, Hit{Index: i, Region: regs[i], Aln: aln, XA: xa[i]})
	}
	return res, nil
}

// Overlap formats the regions of a read as FormatOverlap does.
func (a *Aligner) Overlap(name string, seqLen int, regs []region.Region) (string, error) {
	return FormatOverlap(a.opt, a.ref, name, seqLen, regs)
}

// Close releases the seed iterator.
func (a *Aligner) Close() { a.finder.Close() }
