package signpost

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareHeadsRanking(t *testing.T) {
	// preference beats no-preference, then low start, then large
	// region, then high position
	ordered := []headMeta{
		{i: 0, sz: 1, start: 5, preference: 1},
		{i: 0, sz: 9, start: 10, preference: 1},
		{i: 9, sz: 2, start: 10, preference: 1},
		{i: 0, sz: 2, start: 10, preference: 1},
		{i: 3, sz: 4, start: 0, preference: 0},
	}

	for a := range ordered {
		for b := range ordered {
			got := compareHeads(ordered[a], ordered[b])
			switch {
			case a < b:
				assert.Equal(t, -1, got, "heads[%d] should rank before heads[%d]", a, b)
			case a > b:
				assert.Equal(t, 1, got, "heads[%d] should rank after heads[%d]", a, b)
			default:
				assert.Equal(t, 0, got)
			}
		}
	}
}

func TestCompareHeadsTotalOrder(t *testing.T) {
	heads := []headMeta{
		{i: 4, sz: 2, start: 12, preference: 0},
		{i: 1, sz: 3, start: 6, preference: 1},
		{i: 7, sz: 3, start: 6, preference: 1},
		{i: 2, sz: 1, start: 0, preference: 0},
	}
	sort.Slice(heads, func(a, b int) bool {
		return compareHeads(heads[a], heads[b]) < 0
	})

	// preferred heads first, the larger (or later) of equal-start
	// regions ahead of the smaller
	assert.Equal(t, 7, heads[0].i)
	assert.Equal(t, 1, heads[1].i)
	for _, h := range heads[2:] {
		assert.Zero(t, h.preference)
	}
}

func TestLowestStart(t *testing.T) {
	s := blankGame(3, 3)

	heads := []headMeta{
		{start: s.startOf(1)},
		{start: s.startOf(2)},
		{start: s.startOf(4)},
	}
	assert.Equal(t, 3, s.lowestStart(heads))
	assert.Equal(t, 1, s.lowestStart(nil))
}

func TestRecolouringKeepsRegionsDistinct(t *testing.T) {
	// three disjoint unnumbered chains on a 3x3 of east arrows must
	// end up with three different colours
	s, err := NewGameState(GameParams{Width: 3, Height: 3}, "ccaccacca")
	require.NoError(t, err)

	for _, move := range []string{"L0,0-1,0", "L0,1-1,1", "L0,2-1,2"} {
		var err error
		s, err = s.ExecuteMove(move)
		require.NoError(t, err)
	}

	colours := make(map[int]bool)
	for _, i := range []int{0, 3, 6} {
		c := s.colourOf(s.Nums[i])
		assert.Greater(t, c, 0)
		assert.False(t, colours[c], "duplicate colour %d", c)
		colours[c] = true
		// both cells of a chain share its colour
		assert.Equal(t, c, s.colourOf(s.Nums[i+1]))
	}
}

func TestInconsistentImmutableOffsetsMarkImpossible(t *testing.T) {
	// 1 at (0,0) and 4 at (2,0) on a 4x1 row: chaining the first three
	// cells puts 4 at offset 2, contradicting the clue. Built directly
	// on the link arrays since the move validator refuses it.
	st := blankGame(4, 1)
	st.Dirs[0], st.Dirs[1], st.Dirs[2], st.Dirs[3] = DirE, DirE, DirE, DirN
	st.Nums[0], st.Nums[2] = 1, 4
	st.Flags[0], st.Flags[2] = FlagImmutable, FlagImmutable
	st.makeLink(0, 1)
	st.makeLink(1, 2)
	st.updateNumbers()
	assert.True(t, st.Impossible)
}
