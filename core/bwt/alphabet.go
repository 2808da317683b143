package bwt

// Ambiguous is the code for any base outside A/C/G/T.
const Ambiguous byte = 4

var nt4 = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = Ambiguous
	}
	t['A'], t['a'] = 0, 0
	t['C'], t['c'] = 1, 1
	t['G'], t['g'] = 2, 2
	t['T'], t['t'] = 3, 3
	t['U'], t['u'] = 3, 3
	return t
}()

// Encode converts ASCII nucleotides to 2-bit codes (0..3, 4 = ambiguous)
// into a new slice.
func Encode(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, c := range seq {
		out[i] = nt4[c]
	}
	return out
}

// Code maps one base to its code. Values already in 0..4 pass through.
func Code(c byte) byte {
	if c > Ambiguous {
		return nt4[c]
	}
	return c
}

// EncodeInPlace is Encode without the allocation. Codes already in 0..4
// are left as they are, so calling it twice is harmless.
func EncodeInPlace(seq []byte) {
	for i, c := range seq {
		if c > Ambiguous {
			seq[i] = nt4[c]
		}
	}
}

// Comp returns the complement of a base code; ambiguous stays ambiguous.
func Comp(c byte) byte {
	if c > 3 {
		return c
	}
	return 3 - c
}

// RevComp returns the reverse complement of an encoded sequence.
func RevComp(codes []byte) []byte {
	n := len(codes)
	out := make([]byte, n)
	for i, c := range codes {
		out[n-1-i] = Comp(c)
	}
	return out
}
