// internal/output/smem.go
package output

import (
	"strconv"

	"altseed/core/bwt"
	"altseed/pkg/api"
)

// SMEMRow is one SMEM of one read.
type SMEMRow struct {
	Read  string
	Index int // read index
	Sub   int // position among the read's SMEMs
	M     bwt.SMEM
}

func (r SMEMRow) Order() (int, int) { return r.Index, r.Sub }

func (r SMEMRow) TSV() string {
	b := make([]byte, 0, len(r.Read)+48)
	b = append(b, r.Read...)
	b = append(b, '\t')
	b = strconv.AppendInt(b, int64(r.M.Start), 10)
	b = append(b, '\t')
	b = strconv.AppendInt(b, int64(r.M.End), 10)
	b = append(b, '\t')
	b = strconv.AppendUint(b, r.M.Count(), 10)
	b = append(b, '\t')
	b = strconv.AppendUint(b, r.M.Lo, 10)
	b = append(b, '\t')
	b = strconv.AppendUint(b, r.M.Hi, 10)
	return string(b)
}

func (r SMEMRow) API() any { return ToAPISMEM(r) }

// ToAPISMEM converts a row to the stable wire schema (v1).
func ToAPISMEM(r SMEMRow) api.SMEMV1 {
	return api.SMEMV1{
		Read:   r.Read,
		QStart: r.M.Start,
		QEnd:   r.M.End,
		Count:  r.M.Count(),
		Lo:     r.M.Lo,
		Hi:     r.M.Hi,
	}
}
