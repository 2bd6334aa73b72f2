// source: https://git.tartarus.org/simon/puzzles.git/signpost.c

package signpost

import "errors"

type SolveResult int

const (
	SolveImpossible SolveResult = iota - 1 // a contradiction was found
	SolveStuck                             // no contradiction, no progress
	SolveSolved
)

func (r SolveResult) String() string {
	switch r {
	case SolveImpossible:
		return "impossible"
	case SolveStuck:
		return "stuck"
	case SolveSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// solveSingle runs one pass of the two forced-move rules, reading from
// s and making links in work. The from array records, for each cell,
// which single cell can link into it (-1 none found, -2 more than
// one). Returns the number of links made, or -1 on contradiction.
func (s *GameState) solveSingle(work *GameState, from []int) int {
	w := s.Width
	nlinks := 0

	for i := range from {
		from[i] = -1
	}

	/* poss is 'can I link to anything' with the same meanings. */

	for i := range s.N {
		if s.Next[i] != -1 {
			continue
		}
		if s.Nums[i] == s.N {
			continue /* no next from last no. */
		}

		d := s.Dirs[i]
		poss := -1
		sx, sy := i%w, i/w
		x, y := sx, sy
		for {
			x += dxs[d]
			y += dys[d]
			if !s.inGrid(x, y) {
				break
			}
			if !s.isValidMove(true, sx, sy, x, y) {
				continue
			}

			/* can't link to somewhere with a back-link we would have to
			 * break (the solver just doesn't work like this). */
			j := y*w + x
			if s.Prev[j] != -1 {
				continue
			}

			if s.isRealNum(s.Nums[i]) && s.isRealNum(s.Nums[j]) &&
				s.Nums[j] == s.Nums[i]+1 {
				/* forcing link through existing consecutive numbers */
				poss = j
				from[j] = i
				break
			}

			/* if there's been a valid move already, we have to move on;
			 * we can't make any deductions here. */
			if poss == -1 {
				poss = j
			} else {
				poss = -2
			}

			/* Modify the from array as described above (which is enumerating
			 * what points to 'j' in a similar way). */
			if from[j] == -1 {
				from[j] = i
			} else {
				from[j] = -2
			}
		}
		if poss == -2 {
			/* multiple possible next squares; no deduction this pass */
		} else if poss == -1 {
			work.Impossible = true
			return -1
		} else {
			work.makeLink(i, poss)
			nlinks++
		}
	}

	for i := range s.N {
		if s.Prev[i] != -1 {
			continue
		}
		if s.Nums[i] == 1 {
			continue /* no prev from 1st no. */
		}

		if from[i] == -1 {
			work.Impossible = true
			return -1
		} else if from[i] == -2 {
			/* multiple possible prev squares; no deduction this pass */
		} else {
			work.makeLink(from[i], i)
			nlinks++
		}
	}

	return nlinks
}

// solveState repeatedly applies the forced-move rules until a pass
// makes no new links, recomputing numbering between passes.
func (s *GameState) solveState() SolveResult {
	work := s.Clone()
	from := make([]int, s.N)

	for {
		s.updateNumbers()

		if s.solveSingle(work, from) != 0 {
			s.copyFrom(work)
			if s.Impossible {
				break
			}
			continue
		}
		break
	}

	s.updateNumbers()
	if s.Impossible {
		return SolveImpossible
	}
	if s.checkCompletion(false) {
		return SolveSolved
	}
	return SolveStuck
}

var (
	ErrPuzzleImpossible = errors.New("puzzle is impossible")
	ErrPuzzleUnsolvable = errors.New("unable to solve puzzle")
)

// Solve runs the deduction solver against a copy of the state and
// returns the solution as an 'S'-prefixed description suitable for
// ExecuteMove. The two failure modes are distinct: ErrPuzzleImpossible
// means a logical contradiction, ErrPuzzleUnsolvable means the
// implemented deduction rules made no further progress.
func (s *GameState) Solve() (string, error) {
	tosolve := s.Clone()
	switch tosolve.solveState() {
	case SolveSolved:
		return tosolve.generateDesc(true), nil
	case SolveImpossible:
		return "", ErrPuzzleImpossible
	default:
		return "", ErrPuzzleUnsolvable
	}
}
