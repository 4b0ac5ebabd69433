package schedule

// circleMethod fills s with a double round-robin. Team 1 stays fixed while
// the rest rotate one place per round; the second half mirrors the first
// with home and away swapped.
func circleMethod(s *Store) {
	n := s.teams
	half := n / 2

	arr := make([]Team, n)
	for i := range arr {
		arr[i] = Team(i + 1)
	}

	pos := 0
	for round := 0; round < n-1; round++ {
		if round > 0 {
			rotate(arr)
		}
		for i := 0; i < half; i++ {
			s.place(pos, Pairing{Home: arr[i], Away: arr[n-1-i]})
			pos++
		}
	}

	single := pos
	for i := 0; i < single; i++ {
		p := s.fixtures[i].Pairing
		s.place(pos, Pairing{Home: p.Away, Away: p.Home})
		pos++
	}
}

// rotate holds arr[0] in place and shifts the rest one position right,
// wrapping the last element around to index 1.
func rotate(arr []Team) {
	n := len(arr)
	if n < 3 {
		return
	}
	last := arr[n-1]
	copy(arr[2:], arr[1:n-1])
	arr[1] = last
}
