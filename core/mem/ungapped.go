// core/mem/ungapped.go
package mem

import (
	"math"

	"github.com/pkg/errors"

	"altseed/core/bwt"
	"altseed/core/refseq"
	"altseed/core/region"
)

// Ungapped converts gap-free regions into alignments. A region whose query
// and reference spans differ is rejected.
type Ungapped struct {
	opt Options
	ref *refseq.Reference
}

func NewUngapped(opt Options, ref *refseq.Reference) *Ungapped {
	return &Ungapped{opt: opt, ref: ref}
}

// Reg2Aln places r. query is the read as given (ASCII or codes). Mapping
// quality is estimated for every region, secondaries included; parent is
// accepted for interface compatibility and not consulted.
func (u *Ungapped) Reg2Aln(query []byte, r *region.Region, _ *region.Region) (region.Alignment, error) {
	ref := u.ref
	l := len(query)
	if r.QB < 0 || r.QE > l || r.QB >= r.QE {
		return region.Alignment{}, errors.Errorf("query span [%d,%d) outside read of length %d", r.QB, r.QE, l)
	}
	if r.RB < 0 || r.RE > 2*ref.LPac || r.RB >= r.RE || (r.RB < ref.LPac && r.RE > ref.LPac) {
		return region.Alignment{}, errors.Errorf("reference span [%d,%d) is not on one strand", r.RB, r.RE)
	}
	if int64(r.QE-r.QB) != r.RE-r.RB {
		return region.Alignment{}, errors.Errorf("gapped region: query %d bp, reference %d bp", r.QE-r.QB, r.RE-r.RB)
	}

	rev := r.RB >= ref.LPac
	pos := r.RB
	if rev {
		pos, _ = ref.Depos(r.RE - 1)
	}
	rid := ref.Pos2RID(pos)
	if rid != r.RID {
		return region.Alignment{}, errors.Errorf("position %d resolves to contig %d, region says %d", pos, rid, r.RID)
	}

	seg := ref.Fetch(r.RB, r.RE)
	nm := 0
	for i, c := range seg {
		if qc := bwt.Code(query[r.QB+i]); qc > 3 || qc != c {
			nm++
		}
	}

	clip5, clip3 := r.QB, l-r.QE
	if rev {
		clip5, clip3 = clip3, clip5
	}
	cigar := make([]region.CigarOp, 0, 3)
	if clip5 > 0 {
		cigar = append(cigar, region.NewCigarOp(region.OpSoftClip, clip5))
	}
	cigar = append(cigar, region.NewCigarOp(region.OpMatch, r.QE-r.QB))
	if clip3 > 0 {
		cigar = append(cigar, region.NewCigarOp(region.OpSoftClip, clip3))
	}

	return region.Alignment{
		RID:   rid,
		Pos:   pos - ref.Contigs[rid].Offset,
		IsRev: rev,
		Cigar: cigar,
		NM:    nm,
		MapQ:  ApproxMapQ(u.opt, r),
	}, nil
}

// ApproxMapQ is bwa's single-end mapping quality estimate.
func ApproxMapQ(opt Options, r *region.Region) int {
	a, b := opt.MatchScore, opt.Mismatch
	sub := r.Sub
	if sub == 0 {
		sub = opt.MinSeedLen * a
	}
	if r.CSub > sub {
		sub = r.CSub
	}
	if sub >= r.Score {
		return 0
	}
	l := max(r.QE-r.QB, int(r.RE-r.RB))
	identity := 1 - float64(l*a-r.Score)/float64(a+b)/float64(l)

	var mapq int
	switch {
	case r.Score == 0:
		mapq = 0
	case opt.MapQCoefLen > 0:
		t := 1.0
		if l >= opt.MapQCoefLen {
			t = opt.MapQCoefFac / math.Log(float64(l))
		}
		t *= identity * identity
		mapq = int(6.02*float64(r.Score-sub)/float64(a)*t*t + .499)
	default:
		mapq = int(30*(1-float64(sub)/float64(r.Score))*math.Log(float64(r.SeedCov)) + .499)
		if identity < 0.95 {
			mapq = int(float64(mapq)*identity*identity + .499)
		}
	}
	if r.SubN > 0 {
		mapq -= int(4.343*math.Log(float64(r.SubN+1)) + .499)
	}
	mapq = min(max(mapq, 0), 60)
	return int(float64(mapq)*(1-float64(r.FracRep)) + .499)
}
