package schedule

import "fmt"

const eightTeams = 8

// defaultSearchBudget caps how many placements the eight-team search may try
// before giving up. Every opening in the table completes in a few hundred.
const defaultSearchBudget = 1 << 16

// openings holds the fixed first four fixtures for each starting day,
// indexed by Day-1.
var openings = [7][4]Pairing{
	{{1, 2}, {3, 4}, {5, 6}, {7, 8}},
	{{1, 2}, {3, 4}, {1, 5}, {2, 3}},
	{{1, 6}, {2, 4}, {1, 5}, {2, 3}},
	{{1, 2}, {3, 4}, {1, 5}, {2, 3}},
	{{1, 2}, {8, 7}, {3, 4}, {2, 1}},
	{{1, 7}, {5, 6}, {8, 3}, {2, 1}},
	{{1, 8}, {2, 4}, {1, 5}, {3, 4}},
}

// eightTeamAssigner places the 56 ordered pairings of an eight-team league so
// that no team plays in consecutive fixtures.
type eightTeamAssigner struct {
	store  *Store
	pool   []Pairing
	steps  int
	budget int
}

func newEightTeamAssigner(s *Store, budget int) *eightTeamAssigner {
	pool := make([]Pairing, 0, s.Len())
	for i := 1; i <= s.teams; i++ {
		for j := 1; j <= s.teams; j++ {
			if i != j {
				pool = append(pool, Pairing{Home: Team(i), Away: Team(j)})
			}
		}
	}
	return &eightTeamAssigner{store: s, pool: pool, budget: budget}
}

// seed places the opening fixtures for start and drops them from the pool.
func (a *eightTeamAssigner) seed(start Day) {
	for i, p := range openings[start-1] {
		a.store.place(i, p)
		a.markScheduled(p)
	}
}

func (a *eightTeamAssigner) markScheduled(p Pairing) {
	for i, q := range a.pool {
		if q == p {
			a.take(i)
			return
		}
	}
}

func (a *eightTeamAssigner) take(i int) {
	a.pool = append(a.pool[:i], a.pool[i+1:]...)
}

func (a *eightTeamAssigner) restore(i int, p Pairing) {
	a.pool = append(a.pool, Pairing{})
	copy(a.pool[i+1:], a.pool[i:])
	a.pool[i] = p
}

// run fills every fixture after the openings. Pairings are tried in pool
// order; when the next fixture cannot take any pending pairing, the most
// recent placement is undone and the next candidate tried in its place.
func (a *eightTeamAssigner) run() error {
	ok, err := a.fill()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %d pairings left unplaced", ErrNonProgress, len(a.pool))
	}
	return nil
}

func (a *eightTeamAssigner) fill() (bool, error) {
	if len(a.pool) == 0 {
		return true, nil
	}

	pos := a.nextOpen()
	if pos < 0 {
		return false, nil
	}
	gap := gapFor(a.store.fixtures[pos].Day)

	for i := 0; i < len(a.pool); i++ {
		p := a.pool[i]
		if !a.canAssign(p, pos, gap) {
			continue
		}

		a.steps++
		if a.steps > a.budget {
			return false, fmt.Errorf("%w: search budget of %d placements exhausted at fixture %d",
				ErrNonProgress, a.budget, pos+1)
		}

		a.store.place(pos, p)
		a.take(i)
		if a.feasible(pos+1, gap) {
			done, err := a.fill()
			if err != nil {
				return false, err
			}
			if done {
				return true, nil
			}
		}
		a.restore(i, p)
		a.store.clear(pos)
	}

	return false, nil
}

// nextOpen returns the first empty fixture after the openings whose
// preceding window is already filled, or -1.
func (a *eightTeamAssigner) nextOpen() int {
	for j := a.store.teams / 2; j < a.store.Len(); j++ {
		f := a.store.fixtures[j]
		if !f.filled && a.store.windowFilled(j, gapFor(f.Day)) {
			return j
		}
	}
	return -1
}

func (a *eightTeamAssigner) canAssign(p Pairing, pos, gap int) bool {
	return !a.store.playedWithin(p.Home, pos, gap) &&
		!a.store.playedWithin(p.Away, pos, gap) &&
		a.store.windowFilled(pos, gap)
}

// feasible reports whether every team can still fit its pending fixtures
// into the remaining positions starting at pos, keeping gap fixtures of rest
// between appearances.
func (a *eightTeamAssigner) feasible(pos, gap int) bool {
	remaining := a.store.Len() - pos

	pending := make(map[Team]int)
	for _, p := range a.pool {
		pending[p.Home]++
		pending[p.Away]++
	}

	for team, count := range pending {
		first := 1
		if k := a.store.lastSeen(team, pos, gap); k > 0 {
			first = gap - k + 2
		}
		if first+(count-1)*(gap+1) > remaining {
			return false
		}
	}
	return true
}

// assignEightTeams fills s, which must hold an eight-team league, starting
// from the openings for start.
func assignEightTeams(s *Store, start Day, budget int) error {
	a := newEightTeamAssigner(s, budget)
	a.seed(start)
	return a.run()
}
