package signpost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteMoveLink(t *testing.T) {
	s, err := NewGameState(GameParams{Width: 2, Height: 2}, "1cfc4a")
	require.NoError(t, err)

	next, err := s.ExecuteMove("L0,0-1,0")
	require.NoError(t, err)
	assert.Equal(t, 1, next.Next[0])
	assert.Equal(t, 0, next.Prev[1])
	assert.Equal(t, 2, next.Nums[1], "cell linked after 1 becomes 2")

	// the receiver is untouched
	assert.Equal(t, -1, s.Next[0])
}

func TestExecuteMoveCompletes(t *testing.T) {
	s, err := NewGameState(GameParams{Width: 2, Height: 2}, "1cfc4a")
	require.NoError(t, err)

	// The final 3-4 link is auto-applied once 3 is placed pointing at
	// the immutable 4.
	for _, move := range []string{"L0,0-1,0", "L1,0-0,1"} {
		var err error
		s, err = s.ExecuteMove(move)
		require.NoError(t, err)
	}

	assert.True(t, s.Completed)
	assert.Equal(t, []int{1, 2, 3, 4}, s.Nums)
	for i := range s.N {
		assert.Zero(t, s.Flags[i]&FlagError)
	}
}

func TestExecuteMoveRejectsNonPointing(t *testing.T) {
	s, err := NewGameState(GameParams{Width: 2, Height: 2}, "1cfc4a")
	require.NoError(t, err)

	// cell (0,0) points E, not S
	_, err = s.ExecuteMove("L0,0-0,1")
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestExecuteMoveRejectsSameChain(t *testing.T) {
	// 4x1 grid, every cell pointing E.
	s, err := NewGameState(GameParams{Width: 4, Height: 1}, "1ccc4a")
	require.NoError(t, err)

	s, err = s.ExecuteMove("L0,0-1,0")
	require.NoError(t, err)
	s, err = s.ExecuteMove("L1,0-2,0")
	require.NoError(t, err)

	// 0 and 2 are already in the same chain; linking them would loop
	_, err = s.ExecuteMove("L0,0-2,0")
	assert.ErrorIs(t, err, ErrInvalidMove)
	assert.Equal(t, 1, s.Next[0], "failed move must not mutate state")
	assert.Equal(t, 2, s.Next[1])
}

func TestExecuteMoveAnchorRules(t *testing.T) {
	s, err := NewGameState(GameParams{Width: 4, Height: 1}, "1ccc4a")
	require.NoError(t, err)

	// cell (3,0) holds the immutable final number: it may not gain a
	// successor, so nothing may link _from_ it.
	_, err = s.ExecuteMove("L3,0-1,0")
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestUnlinkCell(t *testing.T) {
	s, err := NewGameState(GameParams{Width: 4, Height: 1}, "ccca")
	require.NoError(t, err)

	s, err = s.ExecuteMove("L1,0-2,0")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Next[1])
	assert.True(t, s.Nums[1] > s.N, "unanchored chain gets a colour")

	s, err = s.ExecuteMove("C1,0")
	require.NoError(t, err)
	assert.Equal(t, -1, s.Next[1])
	assert.Equal(t, -1, s.Prev[2])
	assert.Zero(t, s.Nums[1])
	assert.Zero(t, s.Nums[2])
}

func TestUnlinkRegion(t *testing.T) {
	s, err := NewGameState(GameParams{Width: 4, Height: 1}, "ccca")
	require.NoError(t, err)

	for _, move := range []string{"L0,0-1,0", "L2,0-3,0", "L1,0-2,0"} {
		var err error
		s, err = s.ExecuteMove(move)
		require.NoError(t, err)
	}
	// one merged coloured region spanning all four cells
	assert.Equal(t, 4, s.Dsf.Size(0))

	s, err = s.ExecuteMove("X2,0")
	require.NoError(t, err)
	for i := range s.N {
		assert.Equal(t, -1, s.Next[i])
		assert.Equal(t, -1, s.Prev[i])
		assert.Zero(t, s.Nums[i])
	}
}

func TestExecuteMoveUnlinkEmptyCellRejected(t *testing.T) {
	s, err := NewGameState(GameParams{Width: 4, Height: 1}, "ccca")
	require.NoError(t, err)

	_, err = s.ExecuteMove("C1,0")
	assert.ErrorIs(t, err, ErrInvalidMove)
}

func TestExecuteMoveSolution(t *testing.T) {
	s, err := NewGameState(GameParams{Width: 2, Height: 2}, "1cfc4a")
	require.NoError(t, err)

	next, err := s.ExecuteMove("S1c2f3c4a")
	require.NoError(t, err)
	assert.True(t, next.Completed)
	assert.True(t, next.UsedSolve)
	assert.Equal(t, []int{1, 2, 3, 4}, next.Nums)
}

func TestExecuteMoveGarbage(t *testing.T) {
	s, err := NewGameState(GameParams{Width: 2, Height: 2}, "1cfc4a")
	require.NoError(t, err)

	for _, move := range []string{"", "Z", "L0,0", "L9,9-0,0", "C9,9", "Sxyz"} {
		_, err := s.ExecuteMove(move)
		assert.Error(t, err, "move %q", move)
	}
}
