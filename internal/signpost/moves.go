// source: https://git.tartarus.org/simon/puzzles.git/signpost.c

package signpost

import (
	"errors"
	"fmt"
)

// moveCouldFit: taking the number num, work out the gap between it and
// the next placed number up or down (depending on d), and report
// whether the region at (x,y) will fit in that gap.
func (s *GameState) moveCouldFit(num, d, x, y int) bool {
	i := y*s.Width + x

	/* The 'gap' is the number of missing numbers in the grid between
	 * our number and the next one in the sequence (up or down), or
	 * the end of the sequence (if we happen not to have 1/n present) */
	gap := 0
	for n := num + d; s.isRealNum(n) && s.NumIndex[n] == -1; n += d {
		gap++
	}

	if gap == 0 {
		/* no gap, so the only allowable move is that that directly
		 * links the two numbers. */
		return s.Nums[i] != num+d
	}
	if s.Prev[i] == -1 && s.Next[i] == -1 {
		return true /* single unconnected square, always OK */
	}
	return s.Dsf.Size(i) <= gap
}

// isValidMove checks whether (fromx,fromy) may be linked to (tox,toy).
// With clever set, additionally rejects links that could never fit the
// numbering gap (used by the solver).
func (s *GameState) isValidMove(clever bool, fromx, fromy, tox, toy int) bool {
	w := s.Width
	from, to := fromy*w+fromx, toy*w+tox

	if !s.inGrid(fromx, fromy) || !s.inGrid(tox, toy) {
		return false
	}

	/* can only move where we point */
	if !s.isPointing(fromx, fromy, tox, toy) {
		return false
	}

	nfrom, nto := s.Nums[from], s.Nums[to]

	/* can't move _from_ the preset final number, or _to_ the preset 1. */
	if (nfrom == s.N && s.Flags[from]&FlagImmutable != 0) ||
		(nto == 1 && s.Flags[to]&FlagImmutable != 0) {
		return false
	}

	/* can't create a new connection between cells in the same region
	 * as that would create a loop. */
	if s.Dsf.Connected(from, to) {
		return false
	}

	/* if both cells are actual numbers, can't drag if we're not
	 * one digit apart. */
	if s.isRealNum(nfrom) && s.isRealNum(nto) {
		if nfrom != nto-1 {
			return false
		}
	} else if clever && s.isRealNum(nfrom) {
		if !s.moveCouldFit(nfrom, +1, tox, toy) {
			return false
		}
	} else if clever && s.isRealNum(nto) {
		if !s.moveCouldFit(nto, -1, fromx, fromy) {
			return false
		}
	}

	return true
}

var ErrInvalidMove = errors.New("invalid move")

// ExecuteMove applies one textual move to a copy of the state and
// returns the copy; the receiver is never mutated, so a failed move
// leaves the caller holding the prior state.
//
// Move grammar:
//
//	L<x1>,<y1>-<x2>,<y2>  link two cells
//	C<x>,<y>              unlink one cell from its chain
//	X<x>,<y>              unlink the whole same-coloured region
//	S<desc>               replace all links with a full solution
//	H                     run the deduction solver in place
func (s *GameState) ExecuteMove(move string) (*GameState, error) {
	var ret *GameState
	var sx, sy, ex, ey int
	var c byte

	if len(move) > 0 && move[0] == 'S' {
		p := GameParams{Width: s.Width, Height: s.Height}
		if err := ValidateDesc(p, move[1:]); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidMove, err)
		}
		tmp, err := NewGameState(p, move[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidMove, err)
		}
		ret = s.Clone()
		copy(ret.Prev, tmp.Prev)
		copy(ret.Next, tmp.Next)
		ret.UsedSolve = true
	} else if n, _ := fmt.Sscanf(move, "L%d,%d-%d,%d", &sx, &sy, &ex, &ey); n == 4 {
		if !s.isValidMove(false, sx, sy, ex, ey) {
			return nil, ErrInvalidMove
		}
		ret = s.Clone()
		ret.makeLink(sy*s.Width+sx, ey*s.Width+ex)
	} else if n, _ := fmt.Sscanf(move, "%c%d,%d", &c, &sx, &sy); n == 3 {
		if c != 'C' && c != 'X' {
			return nil, ErrInvalidMove
		}
		if !s.inGrid(sx, sy) {
			return nil, ErrInvalidMove
		}
		si := sy*s.Width + sx
		if s.Prev[si] == -1 && s.Next[si] == -1 {
			return nil, ErrInvalidMove
		}

		ret = s.Clone()

		sset := s.colourOf(s.Nums[si])
		if c == 'C' || sset == 0 {
			/* Unlink the single cell we dragged from the board. */
			ret.unlinkCell(si)
		} else {
			/* Unlink all cells in the same set as the one we dragged
			 * from the board. */
			for i := range s.N {
				if s.Nums[i] == 0 {
					continue
				}
				if s.colourOf(s.Nums[i]) != sset {
					continue
				}
				ret.unlinkCell(i)
			}
		}
	} else if move == "H" {
		ret = s.Clone()
		ret.solveState()
		ret.UsedSolve = true
	} else {
		return nil, ErrInvalidMove
	}

	ret.updateNumbers()
	if ret.checkCompletion(true) {
		ret.Completed = true
	}
	return ret, nil
}
