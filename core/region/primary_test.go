package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(qb, qe int, rb int64, score int, alt bool) Region {
	r := New(qb, qe, rb, rb+int64(qe-qb), 0, score)
	r.IsAlt = alt
	return r
}

func TestMarkPrimaryEmpty(t *testing.T) {
	assert.Zero(t, MarkPrimary(DefaultMarkOptions(), nil, 1))
}

func TestMarkPrimaryOverlap(t *testing.T) {
	regs := []Region{
		span(0, 50, 1000, 50, false),
		span(0, 50, 5000, 60, false),
	}
	n := MarkPrimary(DefaultMarkOptions(), regs, 11)
	require.Equal(t, 2, n)

	assert.Equal(t, 60, regs[0].Score)
	assert.True(t, regs[0].IsPrimary())
	assert.Equal(t, None, regs[0].SecondaryAll)
	assert.Equal(t, 50, regs[0].Sub)
	assert.Zero(t, regs[0].SubN) // gap of 10 is above the near-tie threshold

	assert.Equal(t, 0, regs[1].Secondary)
	assert.Equal(t, 0, regs[1].SecondaryAll)
}

func TestMarkPrimaryNearTie(t *testing.T) {
	regs := []Region{
		span(0, 50, 1000, 60, false),
		span(5, 50, 3000, 55, false),
		span(0, 45, 7000, 53, false),
	}
	MarkPrimary(DefaultMarkOptions(), regs, 3)
	assert.Equal(t, 55, regs[0].Sub)
	assert.Equal(t, 2, regs[0].SubN)
	assert.Equal(t, []int{None, 0, 0}, []int{regs[0].Secondary, regs[1].Secondary, regs[2].Secondary})
}

func TestMarkPrimaryDisjoint(t *testing.T) {
	regs := []Region{
		span(0, 40, 1000, 40, false),
		span(60, 100, 2000, 40, false),
		span(30, 70, 3000, 35, false), // overlaps each by 10 of 40: below mask level
	}
	MarkPrimary(DefaultMarkOptions(), regs, 5)
	for i := range regs {
		assert.True(t, regs[i].IsPrimary(), "region %d", i)
		assert.Equal(t, None, regs[i].SecondaryAll)
	}
}

func TestMarkPrimaryAltShadowsPrimaryAssembly(t *testing.T) {
	regs := []Region{
		span(60, 90, 9000, 30, false),
		span(0, 50, 1000, 55, false),
		span(0, 50, 4000, 60, true),
	}
	n := MarkPrimary(DefaultMarkOptions(), regs, 42)
	require.Equal(t, 2, n)

	// primary assembly first, then alternate contigs
	assert.Equal(t, []int{55, 30, 60}, []int{regs[0].Score, regs[1].Score, regs[2].Score})

	assert.True(t, regs[0].IsPrimary())
	assert.Equal(t, 2, regs[0].SecondaryAll)
	assert.Equal(t, 60, regs[0].AltScore)
	assert.Zero(t, regs[0].Sub)

	assert.True(t, regs[1].IsPrimary())
	assert.Equal(t, None, regs[1].SecondaryAll)

	assert.True(t, regs[2].IsPrimary())
	assert.Equal(t, None, regs[2].SecondaryAll)
	assert.Equal(t, 1, regs[2].SubN)

	xa, err := GenAlt(DefaultAltOptions(), names{"chr1"}, &fixedConv{}, regs, nil)
	require.NoError(t, err)
	require.Len(t, xa, 1)
	assert.Contains(t, xa, 2)
}

func TestMarkPrimaryHiddenAlt(t *testing.T) {
	regs := []Region{
		span(0, 50, 4000, 55, true),
		span(0, 50, 1000, 60, false),
	}
	n := MarkPrimary(DefaultMarkOptions(), regs, 1)
	require.Equal(t, 1, n)

	assert.False(t, regs[0].IsAlt)
	assert.True(t, regs[0].IsPrimary())
	assert.Equal(t, None, regs[0].SecondaryAll)
	assert.Zero(t, regs[0].Sub) // recomputed over primary-assembly hits only

	assert.True(t, regs[1].IsAlt)
	assert.Equal(t, Hidden, regs[1].Secondary)
	assert.False(t, regs[1].IsPrimary())
	assert.Equal(t, 0, regs[1].SecondaryAll)

	xa, err := GenAlt(DefaultAltOptions(), names{"chr1"}, &fixedConv{}, regs, nil)
	require.NoError(t, err)
	assert.Equal(t, "chr1,+4001,50M,1,5;", xa[0])
}

func TestMarkPrimaryAllAlt(t *testing.T) {
	regs := []Region{
		span(0, 50, 4000, 55, true),
		span(0, 50, 1000, 60, true),
	}
	n := MarkPrimary(DefaultMarkOptions(), regs, 1)
	assert.Zero(t, n)
	assert.Equal(t, 60, regs[0].Score)
	assert.Equal(t, 0, regs[1].SecondaryAll)
	assert.Equal(t, Hidden, regs[1].Secondary)
}

func TestMarkPrimaryReproducible(t *testing.T) {
	mk := func() []Region {
		var regs []Region
		for i := 0; i < 12; i++ {
			regs = append(regs, span(i%3*10, i%3*10+30, int64(i)*100, 40, i%4 == 0))
		}
		return regs
	}
	a, b := mk(), mk()
	MarkPrimary(DefaultMarkOptions(), a, 77)
	MarkPrimary(DefaultMarkOptions(), b, 77)
	assert.Equal(t, a, b)

	c := mk()
	MarkPrimary(DefaultMarkOptions(), c, 78)
	assert.NotEqual(t, a[0].Hash, c[0].Hash)
}

func TestHash64(t *testing.T) {
	seen := map[uint64]bool{}
	for i := uint64(0); i < 1000; i++ {
		h := hash64(i)
		assert.False(t, seen[h])
		seen[h] = true
	}
	assert.Equal(t, hash64(12345), hash64(12345))
}
