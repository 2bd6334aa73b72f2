// source: https://git.tartarus.org/simon/puzzles.git/signpost.c

package signpost

import (
	"errors"
	"math/rand/v2"
)

/* Generator steps:
 * generate a random Hamiltonian path (two-ended growth). Numbers 1
 * and N get the immutable flag immediately; that full numbering is
 * squirrelled away as the solved state.
 *
 * Try and solve the stripped board. If the solver gets stuck, fix
 * extra numbers (in a shuffled order) until it succeeds, then remove
 * every clue that is not needed to keep it soluble. If no clue set
 * works for this path, regenerate the path from scratch.
 */

// cellAdj fills ai (indices) and ad (directions) with all un-numbered
// cells reachable from i by a straight compass ray, returning the
// count.
func (s *GameState) cellAdj(i int, ai []int, ad []Direction) int {
	w, h := s.Width, s.Height
	sx, sy := i%w, i/w

	n := 0
	for a := range DirMax {
		x, y := sx, sy
		dx, dy := dxs[a], dys[a]
		for {
			x += dx
			y += dy
			if x < 0 || y < 0 || x >= w || y >= h {
				break
			}
			newi := y*w + x
			if s.Nums[newi] == 0 {
				ai[n] = newi
				ad[n] = a
				n++
			}
		}
	}
	return n
}

// newGameFill grows a numbered path from both ends until every cell is
// covered, then points the head end at the tail. Returns false if an
// end stalls or the final ends are not co-linear.
func (s *GameState) newGameFill(r *rand.Rand, headi, taili int) bool {
	aidx := make([]int, s.N)
	adir := make([]Direction, s.N)

	for i := range s.N {
		s.Nums[i] = 0
	}

	s.Nums[headi] = 1
	s.Nums[taili] = s.N
	s.Dirs[taili] = 0
	nfilled := 2

	for nfilled < s.N {
		/* Try and expand _from_ headi; keep going if there's only one
		 * place to go to. */
		an := s.cellAdj(headi, aidx, adir)
		for {
			if an == 0 {
				return false
			}
			j := r.IntN(an)
			s.Dirs[headi] = adir[j]
			s.Nums[aidx[j]] = s.Nums[headi] + 1
			nfilled++
			headi = aidx[j]
			an = s.cellAdj(headi, aidx, adir)
			if an != 1 {
				break
			}
		}

		if nfilled == s.N {
			break
		}

		/* Try and expand _to_ taili; keep going if there's only one
		 * place to go to. */
		an = s.cellAdj(taili, aidx, adir)
		for {
			if an == 0 {
				return false
			}
			j := r.IntN(an)
			s.Dirs[aidx[j]] = adir[j].Opposite()
			s.Nums[aidx[j]] = s.Nums[taili] - 1
			nfilled++
			taili = aidx[j]
			an = s.cellAdj(taili, aidx, adir)
			if an != 1 {
				break
			}
		}
	}

	/* If we get here we have headi and taili set but unconnected
	 * by direction: we need to set headi's direction so as to point
	 * at taili. It could happen that our last two weren't in line;
	 * if that's the case, we have to start again. */
	d := s.whichDirI(headi, taili)
	if d == -1 {
		return false
	}
	s.Dirs[headi] = d
	return true
}

// stripNums erases all non-immutable numbers and every link, leaving a
// blank board with only the fixed clues.
func (s *GameState) stripNums() {
	for i := range s.N {
		if s.Flags[i]&FlagImmutable == 0 {
			s.Nums[i] = 0
		}
		s.Next[i] = -1
		s.Prev[i] = -1
	}
	for i := range s.NumIndex {
		s.NumIndex[i] = -1
	}
	s.Dsf.Reset()
}

// checkNums reports whether copy agrees with orig on every cell number
// (or just the immutable ones).
func checkNums(orig, copy *GameState, onlyImmutable bool) bool {
	ret := true
	for i := range copy.N {
		if onlyImmutable && copy.Flags[i]&FlagImmutable == 0 {
			continue
		}
		if copy.Nums[i] != orig.Nums[i] {
			ret = false
		}
	}
	return ret
}

// newGameStrip expects a fully-numbered state and reduces FLAG_IMMUTABLE
// to a locally-minimal clue set that the solver can still solve from;
// returns false if no such set exists for this path.
func (s *GameState) newGameStrip(r *rand.Rand) bool {
	copy := s.Clone()
	copy.stripNums()

	if copy.solveState() == SolveSolved {
		return true
	}

	scratch := make([]int, s.N)
	for i := range scratch {
		scratch[i] = i
	}
	r.Shuffle(len(scratch), func(i, j int) {
		scratch[i], scratch[j] = scratch[j], scratch[i]
	})

	solved := false
	/* Growth: fix numbers in empty squares until the solver succeeds.
	 * NB we run the entire solver each time, which strips the grid
	 * beforehand. */
	for _, j := range scratch {
		if copy.Nums[j] > 0 && copy.Nums[j] <= s.N {
			continue /* already solved to a real number here. */
		}
		copy.Nums[j] = s.Nums[j]
		copy.Flags[j] |= FlagImmutable
		s.Flags[j] |= FlagImmutable
		copy.stripNums()
		if copy.solveState() == SolveSolved {
			solved = true
			break
		}
	}
	if !solved {
		return false
	}

	/* Shrink: since we added basically at random, try now to remove
	 * numbers and see if we can still solve it; if we can (still),
	 * really remove the number. Make sure we don't remove the anchor
	 * numbers 1 and N. */
	for _, j := range scratch {
		if s.Flags[j]&FlagImmutable != 0 &&
			s.Nums[j] != 1 && s.Nums[j] != s.N {
			s.Flags[j] &^= FlagImmutable
			copy.copyFrom(s)
			copy.stripNums()
			if copy.solveState() != SolveSolved {
				copy.Nums[j] = s.Nums[j]
				s.Flags[j] |= FlagImmutable
			}
		}
	}

	return true
}

// The reference implementation retries generation forever; a cap turns
// a pathological parameter set into a hard error instead of a hang.
const maxGenerateAttempts = 10000

var ErrGenerateFailed = errors.New("unable to generate a puzzle for these parameters")

// NewGameDesc runs the full construction pipeline: random path fill,
// clue minimization, solver certification. Returns the puzzle
// description and the fully-solved description.
func (p GameParams) NewGameDesc(r *rand.Rand) (desc, solved string, err error) {
	if err := p.Validate(true); err != nil {
		return "", "", err
	}

	s := blankGame(p.Width, p.Height)

	for range maxGenerateAttempts {
		s.blankInto()

		/* keep trying until we fill successfully. */
		for {
			var headi, taili int
			if p.ForceCornerStart {
				headi = 0
				taili = s.N - 1
			} else {
				for headi == taili {
					headi = r.IntN(s.N)
					taili = r.IntN(s.N)
				}
			}
			if s.newGameFill(r, headi, taili) {
				s.Flags[headi] |= FlagImmutable
				s.Flags[taili] |= FlagImmutable
				break
			}
			s.blankInto()
		}

		/* This will have filled in directions and _all_ numbers.
		 * Store the game definition for this, as the solved-state. */
		solved = s.generateDesc(true)

		if !s.newGameStrip(r) {
			continue
		}

		s.stripNums()
		tosolve := s.Clone()
		if tosolve.solveState() != SolveSolved {
			return "", "", ErrDescUnsolvable
		}
		return s.generateDesc(false), solved, nil
	}

	return "", "", ErrGenerateFailed
}
