// core/region/cigar.go
package region

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CigarOps is the operation alphabet, indexed by opcode.
const CigarOps = "MIDSHN"

// Opcodes.
const (
	OpMatch = iota
	OpIns
	OpDel
	OpSoftClip
	OpHardClip
	OpSkip
)

// CigarOp packs a run length and an opcode as len<<4 | op.
type CigarOp uint32

// MaxCigarLen is the longest run a CigarOp can hold.
const MaxCigarLen = 1<<28 - 1

// NewCigarOp packs a run; n must be in [0, MaxCigarLen].
func NewCigarOp(op, n int) CigarOp { return CigarOp(uint32(n)<<4 | uint32(op)&0xf) }

func (c CigarOp) Len() int { return int(c >> 4) }
func (c CigarOp) Op() int  { return int(c & 0xf) }

// ErrBadOpcode is returned for opcodes outside CigarOps.
var ErrBadOpcode = errors.New("cigar opcode out of range")

// AppendCigar appends the text form of ops to b.
func AppendCigar(b []byte, ops []CigarOp) ([]byte, error) {
	for _, c := range ops {
		if c.Op() >= len(CigarOps) {
			return b, errors.Wrapf(ErrBadOpcode, "opcode %d", c.Op())
		}
		b = strconv.AppendInt(b, int64(c.Len()), 10)
		b = append(b, CigarOps[c.Op()])
	}
	return b, nil
}

// FormatCigar renders ops, e.g. "5S45M".
func FormatCigar(ops []CigarOp) (string, error) {
	b, err := AppendCigar(nil, ops)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ParseCigar is the inverse of FormatCigar.
func ParseCigar(s string) ([]CigarOp, error) {
	var out []CigarOp
	n, digits := 0, 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			n = n*10 + int(c-'0')
			digits++
			if n > MaxCigarLen {
				return nil, errors.Errorf("bad cigar %q: run longer than %d", s, MaxCigarLen)
			}
			continue
		}
		op := strings.IndexByte(CigarOps, c)
		if op < 0 || digits == 0 {
			return nil, errors.Errorf("bad cigar %q at offset %d", s, i)
		}
		out = append(out, NewCigarOp(op, n))
		n, digits = 0, 0
	}
	if digits != 0 {
		return nil, errors.Errorf("bad cigar %q: trailing length", s)
	}
	return out, nil
}

// QueryLen is the number of query bases ops consume, clips included.
func QueryLen(ops []CigarOp) int {
	n := 0
	for _, c := range ops {
		switch c.Op() {
		case OpMatch, OpIns, OpSoftClip, OpHardClip:
			n += c.Len()
		}
	}
	return n
}

// RefLen is the number of reference bases ops consume.
func RefLen(ops []CigarOp) int {
	n := 0
	for _, c := range ops {
		switch c.Op() {
		case OpMatch, OpDel, OpSkip:
			n += c.Len()
		}
	}
	return n
}
