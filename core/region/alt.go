// core/region/alt.go
package region

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// AltOptions bounds alternate-hit generation.
type AltOptions struct {
	DropRatio  float64 // minimum score fraction of the primary
	MaxHits    int     // group cap when no member is on an alternate contig
	MaxHitsAlt int     // group cap otherwise
}

// DefaultAltOptions matches bwa mem's -h 5,200 and XA drop ratio.
func DefaultAltOptions() AltOptions {
	return AltOptions{DropRatio: 0.8, MaxHits: 5, MaxHitsAlt: 200}
}

// Alignment is the concrete placement of one region.
type Alignment struct {
	RID   int
	Pos   int64 // 0-based, contig-local
	IsRev bool
	Cigar []CigarOp
	NM    int
	MapQ  int
}

// ContigNamer names contigs by id.
type ContigNamer interface {
	Name(rid int) string
}

// Converter turns a region into a concrete alignment. parent is the region
// r is nested under, or nil.
type Converter interface {
	Reg2Aln(query []byte, r *Region, parent *Region) (Alignment, error)
}

// ConverterFunc adapts a function to Converter.
type ConverterFunc func(query []byte, r *Region, parent *Region) (Alignment, error)

func (f ConverterFunc) Reg2Aln(query []byte, r *Region, parent *Region) (Alignment, error) {
	return f(query, r, parent)
}

// AltStats describes one GenAlt run.
type AltStats struct {
	Resolved int // regions with a dominant primary
	Admitted int // regions written into an alt string
	Groups   int // groups with at least one entry
}

// GenAlt builds the XA string of every group key. Regions are expected to
// have gone through MarkPrimary. The result maps a primary's index to its
// concatenated entries; indices without entries are absent, and a read where
// no region resolves to a primary yields a nil map.
func GenAlt(opt AltOptions, contigs ContigNamer, conv Converter, regs []Region, query []byte) (map[int]string, error) {
	xa, _, err := GenAltStats(opt, contigs, conv, regs, query)
	return xa, err
}

// GenAltStats is GenAlt that also reports counts.
func GenAltStats(opt AltOptions, contigs ContigNamer, conv Converter, regs []Region, query []byte) (map[int]string, AltStats, error) {
	var st AltStats
	pri := Group(regs, opt.DropRatio)
	cnt := make([]int, len(regs))
	hasAlt := make([]bool, len(regs))
	for i, r := range pri {
		if r < 0 {
			continue
		}
		cnt[r]++
		st.Resolved++
		if regs[i].IsAlt {
			hasAlt[r] = true
		}
	}
	if st.Resolved == 0 {
		return nil, st, nil
	}

	groups := make(map[int]*strings.Builder)
	var buf []byte
	for i, r := range pri {
		if r < 0 {
			continue
		}
		if cnt[r] > opt.MaxHitsAlt || (!hasAlt[r] && cnt[r] > opt.MaxHits) {
			continue
		}
		var parent *Region
		if p := regs[i].Secondary; validIndex(p, len(regs)) {
			parent = &regs[p]
		}
		t, err := conv.Reg2Aln(query, &regs[i], parent)
		if err != nil {
			return nil, st, errors.Wrapf(err, "region %d", i)
		}
		buf, err = appendEntry(buf[:0], contigs.Name(t.RID), t)
		if err != nil {
			return nil, st, errors.Wrapf(err, "region %d", i)
		}
		sb := groups[r]
		if sb == nil {
			sb = &strings.Builder{}
			groups[r] = sb
		}
		sb.Write(buf)
		st.Admitted++
	}
	if len(groups) == 0 {
		return nil, st, nil
	}
	out := make(map[int]string, len(groups))
	for r, sb := range groups {
		out[r] = sb.String()
	}
	st.Groups = len(out)
	return out, st, nil
}

func appendEntry(b []byte, name string, t Alignment) ([]byte, error) {
	b = append(b, name...)
	b = append(b, ',', "+-"[boolIndex(t.IsRev)])
	b = strconv.AppendInt(b, t.Pos+1, 10)
	b = append(b, ',')
	b, err := AppendCigar(b, t.Cigar)
	if err != nil {
		return b, err
	}
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(t.NM), 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(t.MapQ), 10)
	return append(b, ';'), nil
}

func boolIndex(v bool) int {
	if v {
		return 1
	}
	return 0
}

// AltEntry is one parsed XA entry.
type AltEntry struct {
	Contig string `json:"contig"`
	Strand string `json:"strand"` // "+" or "-"
	Pos    int64  `json:"pos"`    // 1-based
	Cigar  string `json:"cigar"`
	NM     int    `json:"nm"`
	MapQ   int    `json:"mapq"`
}

func (e AltEntry) String() string {
	return e.Contig + "," + e.Strand + strconv.FormatInt(e.Pos, 10) + "," +
		e.Cigar + "," + strconv.Itoa(e.NM) + "," + strconv.Itoa(e.MapQ) + ";"
}

// ParseAlt splits an XA string into entries.
func ParseAlt(s string) ([]AltEntry, error) {
	var out []AltEntry
	for s != "" {
		end := strings.IndexByte(s, ';')
		if end < 0 {
			return nil, errors.Errorf("unterminated alt entry %q", s)
		}
		e, err := parseEntry(s[:end])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
		s = s[end+1:]
	}
	return out, nil
}

func parseEntry(s string) (AltEntry, error) {
	var e AltEntry
	f := strings.Split(s, ",")
	if len(f) != 5 {
		return e, errors.Errorf("alt entry %q: want 5 fields, got %d", s, len(f))
	}
	if f[0] == "" {
		return e, errors.Errorf("alt entry %q: empty contig", s)
	}
	e.Contig = f[0]
	if len(f[1]) < 2 || (f[1][0] != '+' && f[1][0] != '-') {
		return e, errors.Errorf("alt entry %q: bad position %q", s, f[1])
	}
	e.Strand = f[1][:1]
	pos, err := strconv.ParseInt(f[1][1:], 10, 64)
	if err != nil || pos < 1 {
		return e, errors.Errorf("alt entry %q: bad position %q", s, f[1])
	}
	e.Pos = pos
	if _, err := ParseCigar(f[2]); err != nil {
		return e, errors.Wrapf(err, "alt entry %q", s)
	}
	e.Cigar = f[2]
	if e.NM, err = strconv.Atoi(f[3]); err != nil || e.NM < 0 {
		return e, errors.Errorf("alt entry %q: bad NM %q", s, f[3])
	}
	if e.MapQ, err = strconv.Atoi(f[4]); err != nil || e.MapQ < 0 {
		return e, errors.Errorf("alt entry %q: bad mapq %q", s, f[4])
	}
	return e, nil
}
