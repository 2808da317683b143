// core/mem/overlap.go
package mem

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"altseed/core/refseq"
	"altseed/core/region"
)

// FormatOverlap renders one tab-separated line per region:
//
//	name len qb qe contig contig_len beg end score
//
// qb/qe are swapped for reverse-strand regions so they read in the
// original read orientation; beg/end are contig-local; score is the true
// score per matched base over the longer of the two spans.
func FormatOverlap(opt Options, ref *refseq.Reference, name string, seqLen int, regs []region.Region) (string, error) {
	var sb strings.Builder
	var b []byte
	for i := range regs {
		p := &regs[i]
		at := p.RB
		if p.RB >= ref.LPac {
			at = p.RE - 1
		}
		pos, isRev := ref.Depos(at)
		rid := ref.Pos2RID(pos)
		if rid < 0 || rid != p.RID {
			return "", errors.Errorf("region %d: position %d resolves to contig %d, region says %d", i, pos, rid, p.RID)
		}
		pos -= ref.Contigs[rid].Offset

		qb, qe := p.QB, p.QE
		if isRev {
			qb, qe = qe, qb
		}
		span := max(p.QE-p.QB, int(p.RE-p.RB))
		score := 0.0
		if span > 0 {
			score = float64(p.TrueScore) / float64(opt.MatchScore) / float64(span)
		}

		b = b[:0]
		b = append(b, name...)
		b = append(b, '\t')
		b = strconv.AppendInt(b, int64(seqLen), 10)
		b = append(b, '\t')
		b = strconv.AppendInt(b, int64(qb), 10)
		b = append(b, '\t')
		b = strconv.AppendInt(b, int64(qe), 10)
		b = append(b, '\t')
		b = append(b, ref.Contigs[rid].Name...)
		b = append(b, '\t')
		b = strconv.AppendInt(b, ref.Contigs[rid].Len, 10)
		b = append(b, '\t')
		b = strconv.AppendInt(b, pos, 10)
		b = append(b, '\t')
		b = strconv.AppendInt(b, pos+(p.RE-p.RB), 10)
		b = append(b, '\t')
		b = strconv.AppendFloat(b, score, 'f', 3, 64)
		b = append(b, '\n')
		sb.Write(b)
	}
	return sb.String(), nil
}
