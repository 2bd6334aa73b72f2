// source: https://git.tartarus.org/simon/puzzles.git/signpost.c

package signpost

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"strings"

	"github.com/vancomm/signpost-server/internal/dsf"
)

// Direction is one of the 8 compass directions an arrow can point in.
type Direction int

const (
	DirN Direction = iota
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW
	DirMax
)

var dirStrings = [DirMax]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

var (
	dxs = [DirMax]int{0, 1, 1, 1, 0, -1, -1, -1}
	dys = [DirMax]int{-1, -1, 0, 1, 1, 1, 0, -1}
)

func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

func (d Direction) String() string {
	if d < 0 || d >= DirMax {
		return "?"
	}
	return dirStrings[d]
}

type CellFlags uint32

const (
	FlagImmutable CellFlags = 1 << iota
	FlagError
)

// GameState holds one signpost board: a direction arrow per cell, a
// (possibly provisional) number per cell, and the next/prev link
// forest the player is building. Nums values above N encode region
// colours rather than real puzzle numbers; see colourOf/startOf.
type GameState struct {
	Width, Height, N int

	Completed, UsedSolve, Impossible bool

	Dirs     []Direction
	Nums     []int
	Flags    []CellFlags
	Next     []int // cell index of successor, -1 absent
	Prev     []int // cell index of predecessor, -1 absent
	Dsf      *dsf.DSF
	NumIndex []int // for each real number, its cell index (-1 absent); size N+1
}

func blankGame(w, h int) *GameState {
	s := &GameState{
		Width:    w,
		Height:   h,
		N:        w * h,
		Dirs:     make([]Direction, w*h),
		Nums:     make([]int, w*h),
		Flags:    make([]CellFlags, w*h),
		Next:     make([]int, w*h),
		Prev:     make([]int, w*h),
		Dsf:      dsf.New(w * h),
		NumIndex: make([]int, w*h+1),
	}
	s.blankInto()
	return s
}

func (s *GameState) blankInto() {
	for i := range s.N {
		s.Dirs[i] = 0
		s.Nums[i] = 0
		s.Flags[i] = 0
		s.Next[i] = -1
		s.Prev[i] = -1
	}
	s.Dsf.Reset()
	for i := range s.NumIndex {
		s.NumIndex[i] = -1
	}
}

// Clone is a full deep copy; mutating the copy never affects the
// original.
func (s *GameState) Clone() *GameState {
	c := blankGame(s.Width, s.Height)
	c.copyFrom(s)
	return c
}

func (s *GameState) copyFrom(from *GameState) {
	s.Completed = from.Completed
	s.UsedSolve = from.UsedSolve
	s.Impossible = from.Impossible
	copy(s.Dirs, from.Dirs)
	copy(s.Nums, from.Nums)
	copy(s.Flags, from.Flags)
	copy(s.Next, from.Next)
	copy(s.Prev, from.Prev)
	copy(s.Dsf.Parent, from.Dsf.Parent)
	copy(s.Dsf.Sizes, from.Dsf.Sizes)
	copy(s.NumIndex, from.NumIndex)
}

func DecodeGameState(buf []byte) (*GameState, error) {
	var s GameState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (s GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(s)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *GameState) inGrid(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

func (s *GameState) isRealNum(num int) bool {
	return num > 0 && num <= s.N
}

// whichDir returns the compass direction from (fromx,fromy) towards
// (tox,toy), or -1 if they are not queen-connected.
func whichDir(fromx, fromy, tox, toy int) Direction {
	dx := tox - fromx
	dy := toy - fromy

	if dx != 0 && dy != 0 && absInt(dx) != absInt(dy) {
		return -1
	}

	if dx != 0 {
		dx = dx / absInt(dx)
	}
	if dy != 0 {
		dy = dy / absInt(dy)
	}

	for d := range DirMax {
		if dx == dxs[d] && dy == dys[d] {
			return d
		}
	}
	return -1
}

func (s *GameState) whichDirI(fromi, toi int) Direction {
	w := s.Width
	return whichDir(fromi%w, fromi/w, toi%w, toi/w)
}

// isPointing reports whether the arrow at (fromx,fromy) points at
// (tox,toy), i.e. the target lies on the straight ray of the stored
// direction.
func (s *GameState) isPointing(fromx, fromy, tox, toy int) bool {
	w := s.Width
	dir := s.Dirs[fromy*w+fromx]

	/* (by convention) squares do not point to themselves. */
	if fromx == tox && fromy == toy {
		return false
	}

	/* the final number points to nothing. */
	if s.Nums[fromy*w+fromx] == s.N {
		return false
	}

	for {
		if !s.inGrid(fromx, fromy) {
			return false
		}
		if fromx == tox && fromy == toy {
			return true
		}
		fromx += dxs[dir]
		fromy += dys[dir]
	}
}

func (s *GameState) isPointingI(fromi, toi int) bool {
	w := s.Width
	return s.isPointing(fromi%w, fromi/w, toi%w, toi/w)
}

func (s *GameState) makeLink(from, to int) {
	if s.Next[from] != -1 {
		s.Prev[s.Next[from]] = -1
	}
	s.Next[from] = to

	if s.Prev[to] != -1 {
		s.Next[s.Prev[to]] = -1
	}
	s.Prev[to] = from
}

func (s *GameState) unlinkCell(si int) {
	if s.Prev[si] != -1 {
		s.Next[s.Prev[si]] = -1
		s.Prev[si] = -1
	}
	if s.Next[si] != -1 {
		s.Prev[s.Next[si]] = -1
		s.Next[si] = -1
	}
}

// TextFormat renders the board for logs and test output; only usable
// while numbers fit in two digits.
func (s *GameState) TextFormat() string {
	if s.N >= 100 {
		return fmt.Sprintf("[no text format for %dx%d]", s.Width, s.Height)
	}
	var b strings.Builder
	for y := range s.Height {
		for x := range s.Width {
			i := y*s.Width + x
			fmt.Fprintf(&b, "%-2s", s.Dirs[i].String())
			if s.Flags[i]&FlagImmutable != 0 {
				b.WriteByte('I')
			} else {
				b.WriteByte(' ')
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
		for x := range s.Width {
			i := y*s.Width + x
			num := s.Nums[i]
			if num == 0 {
				b.WriteString("    ")
			} else {
				n := num % (s.N + 1)
				set := num / (s.N + 1)
				if set != 0 {
					b.WriteByte(byte(set-1) + 'a')
				} else {
					b.WriteByte(' ')
				}
				fmt.Fprintf(&b, "%-2d ", n)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
