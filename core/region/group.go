// core/region/group.go
package region

// PrimaryIndex returns the dominant primary of regs[i]: its SecondaryAll
// target k, provided k is a valid index and regs[i] kept at least dropRatio
// of k's score. Otherwise None. The link is followed once, never chained.
func PrimaryIndex(regs []Region, dropRatio float64, i int) int {
	k := regs[i].SecondaryAll
	if validIndex(k, len(regs)) && float64(regs[i].Score) >= float64(regs[k].Score)*dropRatio {
		return k
	}
	return None
}

// Group resolves PrimaryIndex for every region.
func Group(regs []Region, dropRatio float64) []int {
	out := make([]int, len(regs))
	for i := range regs {
		out[i] = PrimaryIndex(regs, dropRatio, i)
	}
	return out
}
