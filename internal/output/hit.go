// internal/output/hit.go
package output

import (
	"fmt"

	"github.com/pkg/errors"

	"altseed/core/mem"
	"altseed/core/region"
	"altseed/pkg/api"
)

// HitRow is a primary alignment with its alternative placements.
type HitRow struct {
	Read   string
	Index  int
	Sub    int
	Contig string
	IsAlt  bool
	Strand string
	Pos    int64 // 1-based
	MapQ   int
	Cigar  string
	NM     int
	Score  int
	XA     string
	Alts   []region.AltEntry
}

// NewHitRow renders h. It fails when the CIGAR or the XA string is malformed.
func NewHitRow(read string, index, sub int, contig string, isAlt bool, h mem.Hit) (HitRow, error) {
	cigar, err := region.FormatCigar(h.Aln.Cigar)
	if err != nil {
		return HitRow{}, errors.Wrapf(err, "hit %d of %s", sub, read)
	}
	alts, err := region.ParseAlt(h.XA)
	if err != nil {
		return HitRow{}, errors.Wrapf(err, "hit %d of %s", sub, read)
	}
	strand := "+"
	if h.Aln.IsRev {
		strand = "-"
	}
	return HitRow{
		Read:   read,
		Index:  index,
		Sub:    sub,
		Contig: contig,
		IsAlt:  isAlt,
		Strand: strand,
		Pos:    h.Aln.Pos + 1,
		MapQ:   h.Aln.MapQ,
		Cigar:  cigar,
		NM:     h.Aln.NM,
		Score:  h.Region.Score,
		XA:     h.XA,
		Alts:   alts,
	}, nil
}

func (r HitRow) Order() (int, int) { return r.Index, r.Sub }

func (r HitRow) TSV() string {
	xa := r.XA
	if xa == "" {
		xa = "*"
	}
	return fmt.Sprintf("%s\t%s\t%s\t%d\t%d\t%s\t%d\t%s",
		r.Read, r.Contig, r.Strand, r.Pos, r.MapQ, r.Cigar, r.NM, xa)
}

func (r HitRow) API() any { return ToAPIHit(r) }

// ToAPIHit converts a row to the stable wire schema (v1).
func ToAPIHit(r HitRow) api.HitV1 {
	v := api.HitV1{
		Read:   r.Read,
		Contig: r.Contig,
		Strand: r.Strand,
		Pos:    r.Pos,
		MapQ:   r.MapQ,
		Cigar:  r.Cigar,
		NM:     r.NM,
		Score:  r.Score,
		IsAlt:  r.IsAlt,
	}
	for _, e := range r.Alts {
		v.XA = append(v.XA, api.AltV1{
			Contig: e.Contig,
			Strand: e.Strand,
			Pos:    e.Pos,
			Cigar:  e.Cigar,
			NM:     e.NM,
			MapQ:   e.MapQ,
		})
	}
	return v
}
