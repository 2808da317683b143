// core/refseq/refseq.go
//
// Package refseq holds reference metadata: the contig table, the packed
// forward sequence, and the mapping from global positions back to contigs.
//
// Global coordinates follow the usual FM-index convention: [0, LPac) is the
// forward strand of all contigs laid end to end, [LPac, 2*LPac) is their
// reverse complement.
package refseq

import (
	"context"

	"github.com/biogo/store/interval"
	"github.com/pkg/errors"

	"altseed/core/bwt"
	"altseed/core/fasta"
)

// Contig is one reference sequence.
type Contig struct {
	Name   string
	Len    int64
	Offset int64 // start in the forward packed sequence
	IsAlt  bool
}

// Reference is an in-memory reference. It is read-only after construction
// and safe for concurrent use.
type Reference struct {
	Contigs []Contig
	Pac     []byte // forward codes, 0..3 and bwt.Ambiguous
	LPac    int64

	byName map[string]int
	tree   interval.IntTree
}

type span struct {
	rid        int
	start, end int
}

func (s span) ID() uintptr { return uintptr(s.rid) }
func (s span) Overlap(b interval.IntRange) bool {
	return s.start < b.End && s.end > b.Start
}
func (s span) Range() interval.IntRange {
	return interval.IntRange{Start: s.start, End: s.end}
}

// New builds a reference from raw (ASCII) contig sequences. Contigs named in
// alt are flagged as alternate.
func New(names []string, seqs [][]byte, alt map[string]bool) (*Reference, error) {
	if len(names) != len(seqs) {
		return nil, errors.Errorf("refseq: %d names for %d sequences", len(names), len(seqs))
	}
	r := &Reference{byName: make(map[string]int, len(names))}
	for i, name := range names {
		if _, dup := r.byName[name]; dup {
			return nil, errors.Errorf("refseq: duplicate contig %q", name)
		}
		r.byName[name] = i
		c := Contig{Name: name, Len: int64(len(seqs[i])), Offset: r.LPac, IsAlt: alt[name]}
		r.Contigs = append(r.Contigs, c)
		r.Pac = append(r.Pac, bwt.Encode(seqs[i])...)
		r.LPac += c.Len
		if c.Len == 0 {
			continue
		}
		if err := r.tree.Insert(span{rid: i, start: int(c.Offset), end: int(c.Offset + c.Len)}, false); err != nil {
			return nil, errors.Wrapf(err, "refseq: index contig %q", name)
		}
	}
	if r.LPac == 0 {
		return nil, errors.New("refseq: empty reference")
	}
	return r, nil
}

// Load reads a FASTA (optionally gzipped) reference. altNames lists the
// contigs to flag as alternate; unknown names are an error.
func Load(ctx context.Context, path string, altNames []string) (*Reference, error) {
	recs, err := fasta.ReadAll(ctx, path)
	if err != nil {
		return nil, errors.Wrap(err, "refseq: load")
	}
	names := make([]string, len(recs))
	seqs := make([][]byte, len(recs))
	for i, rec := range recs {
		names[i], seqs[i] = rec.ID, rec.Seq
	}
	alt := make(map[string]bool, len(altNames))
	for _, n := range altNames {
		alt[n] = true
	}
	ref, err := New(names, seqs, alt)
	if err != nil {
		return nil, err
	}
	for _, n := range altNames {
		if _, ok := ref.byName[n]; !ok {
			return nil, errors.Errorf("refseq: alt contig %q not in %s", n, path)
		}
	}
	logger().Debug("loaded reference", "path", path, "contigs", len(ref.Contigs), "bases", ref.LPac, "alt", len(altNames))
	return ref, nil
}

// Depos maps a global position onto the forward strand. The flag reports
// whether pos was on the reverse strand.
func (r *Reference) Depos(pos int64) (int64, bool) {
	if pos >= r.LPac {
		return 2*r.LPac - 1 - pos, true
	}
	return pos, false
}

// Pos2RID returns the contig containing forward position pos, or -1.
func (r *Reference) Pos2RID(pos int64) int {
	if pos < 0 || pos >= r.LPac {
		return -1
	}
	hits := r.tree.Get(span{start: int(pos), end: int(pos) + 1})
	if len(hits) == 0 {
		return -1
	}
	return hits[0].(span).rid
}

// RID looks a contig up by name.
func (r *Reference) RID(name string) (int, bool) {
	rid, ok := r.byName[name]
	return rid, ok
}

func (r *Reference) Name(rid int) string { return r.Contigs[rid].Name }
func (r *Reference) Len(rid int) int64   { return r.Contigs[rid].Len }
func (r *Reference) IsAlt(rid int) bool  { return r.Contigs[rid].IsAlt }

// NumAlt counts alternate contigs.
func (r *Reference) NumAlt() int {
	n := 0
	for _, c := range r.Contigs {
		if c.IsAlt {
			n++
		}
	}
	return n
}

// Fetch returns the forward codes of [beg, end) clipped to the reference.
// Positions on the reverse strand are returned reverse-complemented.
func (r *Reference) Fetch(beg, end int64) []byte {
	if end <= beg {
		return nil
	}
	if beg >= r.LPac {
		fb, _ := r.Depos(end - 1)
		fe, _ := r.Depos(beg)
		return bwt.RevComp(r.Fetch(fb, fe+1))
	}
	if end > r.LPac {
		end = r.LPac
	}
	if beg < 0 {
		beg = 0
	}
	return r.Pac[beg:end]
}
