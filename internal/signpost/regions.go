// source: https://git.tartarus.org/simon/puzzles.git/signpost.c

package signpost

import "sort"

/* Assuming numbers are always up-to-date, there are only four possibilities
 * for regions changing after a single valid move:
 *
 * 1) two differently-coloured regions being combined (the resulting colouring
 *     should be based on the larger of the two regions)
 * 2) a numbered region having a single number added to the start (the
 *     region's colour will remain, and the numbers will shift by 1)
 * 3) a numbered region having a single number added to the end (the
 *     region's colour and numbering remains as-is)
 * 4) two unnumbered squares being joined (will pick the smallest unused set
 *     of colours to use for the new region).
 *
 * Most of the complications are in ensuring we don't accidentally set two
 * regions with the same colour (e.g. if a region was split). If this happens
 * we always try and give the largest original portion the original colour.
 */

// colourOf extracts the region colour from a stored cell number; real
// puzzle numbers are colour 0.
func (s *GameState) colourOf(num int) int {
	return num / (s.N + 1)
}

// startOf is the first stored number of a region with the given colour.
func (s *GameState) startOf(colour int) int {
	return colour * (s.N + 1)
}

type headMeta struct {
	i          int  // position
	sz         int  // size of region
	start      int  // region start number preferred, or 0 if no preference
	preference int  // 0 if we have no preference (and should just pick one)
	why        string
}

// headNumber works out the preferred numbering for the chain headed at
// cell i. Immutable numbers anywhere in the chain dictate the start
// (and must agree); otherwise the surrounding coloured regions are
// consulted.
func (s *GameState) headNumber(i int) headMeta {
	head := headMeta{
		i:  i,
		sz: s.Dsf.Size(i),
	}

	/* Search through this chain looking for real numbers, checking that
	 * they match up (if there are more than one). */
	off := 0
	for j := i; j != -1; j = s.Next[j] {
		if s.Flags[j]&FlagImmutable != 0 {
			ss := s.Nums[j] - off
			if head.preference == 0 {
				head.start = ss
				head.preference = 1
				head.why = "contains cell with immutable number"
			} else if head.start != ss {
				s.Impossible = true
			}
		}
		off++
	}
	if head.preference != 0 {
		return head
	}

	if s.Nums[i] == 0 && s.Nums[s.Next[i]] > s.N {
		/* (probably) empty cell onto the head of a coloured region:
		 * make sure we start at a 0 offset. */
		head.start = s.startOf(s.colourOf(s.Nums[s.Next[i]]))
		head.preference = 1
		head.why = "adding blank cell to head of numbered region"
	} else if s.Nums[i] <= s.N {
		/* if we're 0 we're probably just blank -- but even if we're a
		 * (real) numbered region, we don't have an immutable number
		 * in it (any more) otherwise it'd have been caught above, so
		 * reassign the colour. */
		head.start = 0
		head.preference = 0
		head.why = "lowest available colour group"
	} else {
		c := s.colourOf(s.Nums[i])
		n := 1
		sz := s.Dsf.Size(i)
		for j := i; s.Next[j] != -1; {
			j = s.Next[j]
			if s.Nums[j] == 0 && s.Next[j] == -1 {
				head.start = s.startOf(c)
				head.preference = 1
				head.why = "adding blank cell to end of numbered region"
				return head
			}
			if s.colourOf(s.Nums[j]) == c {
				n++
			} else {
				startAlternate := s.startOf(s.colourOf(s.Nums[j]))
				if n < sz-n {
					head.start = startAlternate
					head.preference = 1
					head.why = "joining two coloured regions, swapping to larger colour"
				} else {
					head.start = s.startOf(c)
					head.preference = 1
					head.why = "joining two coloured regions, taking largest"
				}
				return head
			}
		}
		/* If we got here then we may have split a region into
		 * two; make sure we don't assign a colour we've already used. */
		if c == 0 {
			head.start = 0
			head.preference = 0
		} else {
			head.start = s.startOf(c)
			head.preference = 1
		}
		head.why = "got to end of coloured region"
	}

	return head
}

// connectNumbers rebuilds the connectivity forest from the next/prev
// links, marking the state impossible if a chain forms a loop.
func (s *GameState) connectNumbers() {
	s.Dsf.Reset()
	for i := range s.N {
		if s.Next[i] != -1 {
			if s.Dsf.Connected(i, s.Next[i]) {
				s.Impossible = true
			}
			s.Dsf.Merge(i, s.Next[i])
		}
	}
}

// compareHeads is the total order used to rank chain heads before
// recolouring: preferred colours first, then low colours, then large
// regions, then position.
func compareHeads(a, b headMeta) int {
	if a.preference != 0 && b.preference == 0 {
		return -1
	}
	if b.preference != 0 && a.preference == 0 {
		return 1
	}
	if a.start < b.start {
		return -1
	}
	if a.start > b.start {
		return 1
	}
	if a.sz > b.sz {
		return -1
	}
	if a.sz < b.sz {
		return 1
	}
	if a.i > b.i {
		return -1
	}
	if a.i < b.i {
		return 1
	}
	return 0
}

// lowestStart returns the lowest colour not used by any head in the
// current region list. A pure function of the list, so repeated
// collisions in one pass cannot interact.
func (s *GameState) lowestStart(heads []headMeta) int {
	/* NB start at 1: colour 0 is real numbers */
	for c := 1; c < s.N; c++ {
		used := false
		for n := range heads {
			if s.colourOf(heads[n].start) == c {
				used = true
				break
			}
		}
		if !used {
			return c
		}
	}
	panic("no available colours")
}

// updateNumbers recomputes every non-immutable cell number and the
// reverse number index from the current link forest.
func (s *GameState) updateNumbers() {
	for n := range s.NumIndex {
		s.NumIndex[n] = -1
	}

	for i := range s.N {
		if s.Flags[i]&FlagImmutable != 0 {
			s.NumIndex[s.Nums[i]] = i
		} else if s.Prev[i] == -1 && s.Next[i] == -1 {
			s.Nums[i] = 0
		}
	}
	s.connectNumbers()

	/* Construct an array of the heads of all current regions, together
	 * with their preferred colours. */
	var heads []headMeta
	for i := range s.N {
		/* Look for a cell that is the start of a chain
		 * (has a next but no prev). */
		if s.Prev[i] != -1 || s.Next[i] == -1 {
			continue
		}
		heads = append(heads, s.headNumber(i))
	}

	sort.Slice(heads, func(a, b int) bool {
		return compareHeads(heads[a], heads[b]) < 0
	})

	/* Remove duplicate-coloured regions. */
	for n := len(heads) - 1; n >= 0; n-- { /* order is important! */
		if n != 0 && heads[n].start == heads[n-1].start {
			/* We have a duplicate-coloured region: since we're
			 * sorted in size order and this is not the first
			 * of its colour it's not the largest: recolour it. */
			heads[n].start = s.startOf(s.lowestStart(heads))
			heads[n].preference = -1 /* '-1' means 'was duplicate' */
		} else if heads[n].preference == 0 {
			heads[n].start = s.startOf(s.lowestStart(heads))
		}
	}

	for n := range heads {
		nnum := heads[n].start
		for j := heads[n].i; j != -1; j = s.Next[j] {
			if s.Flags[j]&FlagImmutable == 0 {
				if nnum > 0 && nnum <= s.N {
					s.NumIndex[nnum] = j
				}
				s.Nums[j] = nnum
			}
			nnum++
		}
	}
}
