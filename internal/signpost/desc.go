// source: https://git.tartarus.org/simon/puzzles.git/signpost.c

package signpost

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrDescTooLong    = errors.New("game description longer than expected")
	ErrDescTooShort   = errors.New("game description shorter than expected")
	ErrDescNumTooBig  = errors.New("game description contains a number too large")
	ErrDescBadChar    = errors.New("game description contains unexpected characters")
	ErrDescUnsolvable = errors.New("game description is not uniquely solvable")
)

// unpickDesc decodes a description string (n tokens in row-major
// order, each an optional clue number followed by a direction letter
// a..h) into a fresh state. Any clue number is marked immutable.
func unpickDesc(p GameParams, desc string) (*GameState, error) {
	s := blankGame(p.Width, p.Height)

	num, i := 0, 0
	for _, c := range []byte(desc) {
		if i >= s.N {
			return nil, ErrDescTooLong
		}
		switch {
		case c >= '0' && c <= '9':
			num = num*10 + int(c-'0')
			if num > s.N {
				return nil, ErrDescNumTooBig
			}
		case c >= 'a' && c < 'a'+byte(DirMax):
			s.Nums[i] = num
			if num != 0 {
				s.Flags[i] = FlagImmutable
			}
			num = 0
			s.Dirs[i] = Direction(c - 'a')
			i++
		default:
			return nil, ErrDescBadChar
		}
	}
	if i < s.N {
		return nil, ErrDescTooShort
	}
	return s, nil
}

// ValidateDesc checks a description against the given params without
// building a playable state.
func ValidateDesc(p GameParams, desc string) error {
	_, err := unpickDesc(p, desc)
	return err
}

// NewGameState builds a playable state from a description, deriving
// the initial numbering and auto-applying any links already implied
// by consecutive clues.
func NewGameState(p GameParams, desc string) (*GameState, error) {
	s, err := unpickDesc(p, desc)
	if err != nil {
		return nil, err
	}
	s.updateNumbers()
	s.checkCompletion(true) /* update any auto-links */
	return s, nil
}

// generateDesc encodes the immutable clue numbers plus all directions.
// With solve set, the string is prefixed with the 'S' solution marker
// and every (real) number is included.
func (s *GameState) generateDesc(solve bool) string {
	var b strings.Builder
	if solve {
		b.WriteByte('S')
	}
	for i := range s.N {
		if s.Nums[i] != 0 {
			b.WriteString(strconv.Itoa(s.Nums[i]))
		}
		b.WriteByte(byte(s.Dirs[i]) + 'a')
	}
	return b.String()
}

// Desc encodes the current state's clue numbers and directions.
func (s *GameState) Desc() string {
	return s.generateDesc(false)
}
