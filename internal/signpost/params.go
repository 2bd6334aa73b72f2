// source: https://git.tartarus.org/simon/puzzles.git/signpost.c

package signpost

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type GameParams struct {
	Width, Height    int
	ForceCornerStart bool
}

func DefaultParams() GameParams {
	return GameParams{Width: 4, Height: 4, ForceCornerStart: true}
}

// String encodes params in the "WxH" / "WxHc" form, e.g. "4x4c".
func (p GameParams) String() string {
	s := fmt.Sprintf("%dx%d", p.Width, p.Height)
	if p.ForceCornerStart {
		s += "c"
	}
	return s
}

// ParseParams decodes a "WxH" / "WxHc" params string. A bare number
// means a square grid.
func ParseParams(s string) (GameParams, error) {
	var p GameParams

	ws, hs, found := strings.Cut(s, "x")
	if !found {
		hs = ws
	}
	corner := false
	if h, ok := strings.CutSuffix(hs, "c"); ok {
		hs = h
		corner = true
	}
	if !found {
		ws = hs
	}

	w, err := strconv.Atoi(ws)
	if err != nil {
		return p, fmt.Errorf("invalid params %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return p, fmt.Errorf("invalid params %q: %w", s, err)
	}

	p = GameParams{Width: w, Height: h, ForceCornerStart: corner}
	return p, nil
}

var (
	ErrWidthTooSmall  = errors.New("width must be at least one")
	ErrHeightTooSmall = errors.New("height must be at least one")
	ErrGridTooLarge   = errors.New("width times height must not be unreasonably large")
	ErrGridDegenerate = errors.New("width and height cannot both be one")
)

// Validate rejects unusable dimensions. With full set it also rejects
// the 1x1 grid, which can be played (the historical "1a" description
// decodes fine) but never generated.
func (p GameParams) Validate(full bool) error {
	if p.Width < 1 {
		return ErrWidthTooSmall
	}
	if p.Height < 1 {
		return ErrHeightTooSmall
	}
	if p.Width > math.MaxInt/p.Height {
		return ErrGridTooLarge
	}
	if full && p.Width == 1 && p.Height == 1 {
		return ErrGridDegenerate
	}
	return nil
}
