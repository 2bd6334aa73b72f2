package signpost

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameDescSolvable(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{"2x3", GameParams{Width: 2, Height: 3}},
		{"3x3c", GameParams{Width: 3, Height: 3, ForceCornerStart: true}},
		{"4x4c", GameParams{Width: 4, Height: 4, ForceCornerStart: true}},
		{"4x4", GameParams{Width: 4, Height: 4}},
		{"5x5c", GameParams{Width: 5, Height: 5, ForceCornerStart: true}},
		{"7x4", GameParams{Width: 7, Height: 4}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			for range 10 {
				desc, solved, err := test.params.NewGameDesc(r)
				require.NoError(t, err)
				require.NoError(t, ValidateDesc(test.params, desc))

				s, err := NewGameState(test.params, desc)
				require.NoError(t, err)

				res := s.Clone().solveState()
				require.Equal(t, SolveSolved, res,
					"generated description must be deducible:\n%s", s.TextFormat())

				// the emitted solution string applies cleanly
				done, err := s.ExecuteMove(solved)
				require.NoError(t, err)
				require.True(t, done.Completed)
				seen := make(map[int]bool)
				for i := range done.N {
					require.True(t, done.isRealNum(done.Nums[i]))
					require.False(t, seen[done.Nums[i]])
					seen[done.Nums[i]] = true
					require.Zero(t, done.Flags[i]&FlagError)
				}
			}
		})
	}
}

func TestGeneratedAnchorsImmutable(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	p := GameParams{Width: 4, Height: 4, ForceCornerStart: true}

	desc, _, err := p.NewGameDesc(r)
	require.NoError(t, err)

	s, err := NewGameState(p, desc)
	require.NoError(t, err)

	// corner-anchored: 1 top-left, N bottom-right, both immutable
	assert.Equal(t, 1, s.Nums[0])
	assert.Equal(t, s.N, s.Nums[s.N-1])
	assert.NotZero(t, s.Flags[0]&FlagImmutable)
	assert.NotZero(t, s.Flags[s.N-1]&FlagImmutable)
}

func TestGeneratedDescRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	p := GameParams{Width: 4, Height: 4, ForceCornerStart: true}

	desc, _, err := p.NewGameDesc(r)
	require.NoError(t, err)

	s, err := NewGameState(p, desc)
	require.NoError(t, err)
	assert.Equal(t, desc, s.Desc())

	// solving must not disturb clue placements
	solved, err := s.ExecuteMove("H")
	require.NoError(t, err)
	for i := range s.N {
		assert.Equal(t, s.Dirs[i], solved.Dirs[i])
		if s.Flags[i]&FlagImmutable != 0 {
			assert.NotZero(t, solved.Flags[i]&FlagImmutable)
			assert.Equal(t, s.Nums[i], solved.Nums[i])
		}
	}
}

func TestNewGameDescRejectsBadParams(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))

	_, _, err := GameParams{Width: 1, Height: 1}.NewGameDesc(r)
	assert.ErrorIs(t, err, ErrGridDegenerate)

	_, _, err = GameParams{Width: 0, Height: 3}.NewGameDesc(r)
	assert.ErrorIs(t, err, ErrWidthTooSmall)
}

func TestNewGameFill(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))
	s := blankGame(4, 4)

	for !s.newGameFill(r, 0, s.N-1) {
		s.blankInto()
	}

	// a complete numbered path: every number once, every consecutive
	// pair queen-connected via the stored direction
	index := make([]int, s.N+1)
	for i := range index {
		index[i] = -1
	}
	for i := range s.N {
		require.True(t, s.isRealNum(s.Nums[i]))
		require.Equal(t, -1, index[s.Nums[i]], "duplicate number %d", s.Nums[i])
		index[s.Nums[i]] = i
	}
	for k := 1; k < s.N; k++ {
		require.True(t, s.isPointingI(index[k], index[k+1]),
			"%d at cell %d does not point at %d", k, index[k], k+1)
	}
}
