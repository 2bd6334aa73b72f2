// source: https://git.tartarus.org/simon/puzzles.git/signpost.c

package signpost

// checkCompletion reports whether the board is a complete, error-free
// solution. With markErrors set it also maintains the FlagError bits
// and auto-applies the link between consecutive placed numbers; solver
// trial runs must pass markErrors=false to stay side-effect free.
func (s *GameState) checkCompletion(markErrors bool) bool {
	errFound := false

	if markErrors {
		for j := range s.N {
			s.Flags[j] &^= FlagError
		}
	}

	/* Search for repeated numbers. */
	for j := range s.N {
		if s.Nums[j] > 0 && s.Nums[j] <= s.N {
			for k := j + 1; k < s.N; k++ {
				if s.Nums[k] == s.Nums[j] {
					if markErrors {
						s.Flags[j] |= FlagError
						s.Flags[k] |= FlagError
					}
					errFound = true
				}
			}
		}
	}

	/* Search and mark numbers n not pointing to n+1; if any numbers
	 * are missing we know we've not completed. */
	complete := true
	for n := 1; n < s.N; n++ {
		if s.NumIndex[n] == -1 || s.NumIndex[n+1] == -1 {
			complete = false
		} else if !s.isPointingI(s.NumIndex[n], s.NumIndex[n+1]) {
			if markErrors {
				s.Flags[s.NumIndex[n]] |= FlagError
				s.Flags[s.NumIndex[n+1]] |= FlagError
			}
			errFound = true
		} else if markErrors {
			/* make sure the link is explicitly made here; for instance, this
			 * is nice if the user drags from 2 out (making 3) and a 4 is also
			 * visible; this ensures that the link from 3 to 4 is also made. */
			s.makeLink(s.NumIndex[n], s.NumIndex[n+1])
		}
	}

	/* Search and mark numbers less than 0, or 0 with links. */
	for j := range s.N {
		if s.Nums[j] < 0 ||
			(s.Nums[j] == 0 && (s.Next[j] != -1 || s.Prev[j] != -1)) {
			errFound = true
			if markErrors {
				s.Flags[j] |= FlagError
			}
		}
	}

	if errFound {
		return false
	}
	return complete
}

// CheckProgress re-marks error flags and reports completion without
// otherwise mutating the game.
func (s *GameState) CheckProgress() bool {
	return s.checkCompletion(true)
}
