// internal/output/overlap.go
package output

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"altseed/pkg/api"
)

// OverlapRow is one line of mem.FormatOverlap, parsed once for JSON.
type OverlapRow struct {
	Index int
	Sub   int
	Line  string
	V     api.OverlapV1
}

// OverlapRows splits a FormatOverlap block into rows.
func OverlapRows(index int, block string) ([]OverlapRow, error) {
	block = strings.TrimSuffix(block, "\n")
	if block == "" {
		return nil, nil
	}
	lines := strings.Split(block, "\n")
	out := make([]OverlapRow, 0, len(lines))
	for i, ln := range lines {
		v, err := ParseOverlapLine(ln)
		if err != nil {
			return nil, err
		}
		out = append(out, OverlapRow{Index: index, Sub: i, Line: ln, V: v})
	}
	return out, nil
}

// ParseOverlapLine parses one FormatOverlap line (without newline).
func ParseOverlapLine(ln string) (api.OverlapV1, error) {
	var v api.OverlapV1
	f := strings.Split(ln, "\t")
	if len(f) != 9 {
		return v, errors.Errorf("overlap line %q: want 9 fields, got %d", ln, len(f))
	}
	ints := make([]int64, 0, 6)
	for _, k := range []int{1, 2, 3, 5, 6, 7} {
		n, err := strconv.ParseInt(f[k], 10, 64)
		if err != nil {
			return v, errors.Wrapf(err, "overlap line %q: field %d", ln, k+1)
		}
		ints = append(ints, n)
	}
	score, err := strconv.ParseFloat(f[8], 64)
	if err != nil {
		return v, errors.Wrapf(err, "overlap line %q: score", ln)
	}
	v.Read = f[0]
	v.ReadLen = int(ints[0])
	v.QB, v.QE = int(ints[1]), int(ints[2])
	v.Contig = f[4]
	v.ContigLen = ints[3]
	v.Beg, v.End = ints[4], ints[5]
	v.Score = score
	return v, nil
}

func (r OverlapRow) Order() (int, int) { return r.Index, r.Sub }
func (r OverlapRow) TSV() string       { return r.Line }
func (r OverlapRow) API() any          { return r.V }
