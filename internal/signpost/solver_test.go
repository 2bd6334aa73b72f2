package signpost

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveSimple(t *testing.T) {
	s, err := NewGameState(GameParams{Width: 2, Height: 2}, "1cfc4a")
	require.NoError(t, err)

	res := s.solveState()
	assert.Equal(t, SolveSolved, res)
	assert.Equal(t, []int{1, 2, 3, 4}, s.Nums)
}

func TestSolveReturnsSolutionMove(t *testing.T) {
	s, err := NewGameState(GameParams{Width: 2, Height: 2}, "1cfc4a")
	require.NoError(t, err)

	move, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, "S1c2f3c4a", move)

	// the solution string is itself an executable move
	next, err := s.ExecuteMove(move)
	require.NoError(t, err)
	assert.True(t, next.Completed)
}

func TestSolveImpossible(t *testing.T) {
	// Cell (0,0) holds 1 but points W, straight off the grid: nothing
	// can ever follow it.
	s, err := NewGameState(GameParams{Width: 2, Height: 2}, "1gfc4a")
	require.NoError(t, err)

	_, err = s.Solve()
	assert.ErrorIs(t, err, ErrPuzzleImpossible)
}

func TestSolveStuckIsNotImpossible(t *testing.T) {
	// Removing a necessary clue from a minimized puzzle leaves the
	// solver stuck, never claiming a contradiction: the underlying
	// solution still exists.
	r := rand.New(rand.NewPCG(11, 12))
	p := GameParams{Width: 5, Height: 5, ForceCornerStart: true}
	desc, _, err := p.NewGameDesc(r)
	require.NoError(t, err)

	s, err := NewGameState(p, desc)
	require.NoError(t, err)

	removed := false
	for i := range s.N {
		if s.Flags[i]&FlagImmutable != 0 && s.Nums[i] != 1 && s.Nums[i] != s.N {
			s.Flags[i] &^= FlagImmutable
			s.Nums[i] = 0
			removed = true
			break
		}
	}
	if !removed {
		t.Skip("puzzle needed no clues beyond the anchors")
	}

	_, err = s.Solve()
	assert.ErrorIs(t, err, ErrPuzzleUnsolvable)
}

func TestSolveIdempotent(t *testing.T) {
	s, err := NewGameState(GameParams{Width: 2, Height: 2}, "1cfc4a")
	require.NoError(t, err)

	once, err := s.ExecuteMove("H")
	require.NoError(t, err)
	twice, err := once.ExecuteMove("H")
	require.NoError(t, err)

	assert.Equal(t, once.Nums, twice.Nums)
	assert.Equal(t, once.Next, twice.Next)
	assert.Equal(t, once.Prev, twice.Prev)
	assert.Equal(t, once.Flags, twice.Flags)
}

func TestSolverDoesNotMutateReceiver(t *testing.T) {
	s, err := NewGameState(GameParams{Width: 2, Height: 2}, "1cfc4a")
	require.NoError(t, err)

	before := s.Clone()
	_, err = s.Solve()
	require.NoError(t, err)

	assert.Equal(t, before.Nums, s.Nums)
	assert.Equal(t, before.Next, s.Next)
	assert.Equal(t, before.Prev, s.Prev)
}
