package schedule

// playedWithin reports whether team appears, home or away, in any of the
// gap fixtures immediately before pos.
func (s *Store) playedWithin(team Team, pos, gap int) bool {
	return s.lastSeen(team, pos, gap) > 0
}

// windowFilled reports whether the gap fixtures immediately before pos are
// all filled. Positions before the start of the season count as filled.
func (s *Store) windowFilled(pos, gap int) bool {
	for k := 1; k <= gap && pos-k >= 0; k++ {
		if !s.fixtures[pos-k].filled {
			return false
		}
	}
	return true
}

// lastSeen returns how many fixtures back from pos team last played, looking
// at most gap fixtures back. Zero means not within the window.
func (s *Store) lastSeen(team Team, pos, gap int) int {
	for k := 1; k <= gap && pos-k >= 0; k++ {
		f := s.fixtures[pos-k]
		if f.filled && f.Involves(team) {
			return k
		}
	}
	return 0
}

// gapFor is the rest window enforced before a fixture played on day d.
// Monday fixtures keep a wider window.
func gapFor(d Day) int {
	if d == Monday {
		return 2
	}
	return 1
}
