package schedule

import "fmt"

// Team identifies a team by its 1-based position in the league.
type Team int

// Day is a day of the week, 1 (Monday) through 7 (Sunday). Zero means unassigned.
type Day int

const (
	Unassigned Day = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Valid reports whether d is Monday through Sunday.
func (d Day) Valid() bool {
	return d >= Monday && d <= Sunday
}

// Weekend reports whether d is Saturday or Sunday.
func (d Day) Weekend() bool {
	return d == Saturday || d == Sunday
}

func (d Day) String() string {
	if !d.Valid() {
		return "Unassigned"
	}
	return dayNames[d]
}

// ParseDay accepts a full day name ("Thursday") and returns the matching Day.
func ParseDay(name string) (Day, error) {
	for d := Monday; d <= Sunday; d++ {
		if dayNames[d] == name {
			return d, nil
		}
	}
	return Unassigned, fmt.Errorf("unknown day %q", name)
}

// Slot is the time of day a fixture is played.
type Slot int

const (
	NoSlot Slot = iota
	Afternoon
	Evening
)

// Label returns the start time shown to users.
func (s Slot) Label() string {
	switch s {
	case Afternoon:
		return "3:30 pm"
	case Evening:
		return "7:30 pm"
	default:
		return ""
	}
}

// ParseSlot maps a start-time label back to its Slot.
func ParseSlot(label string) (Slot, error) {
	switch label {
	case "3:30 pm":
		return Afternoon, nil
	case "7:30 pm":
		return Evening, nil
	default:
		return NoSlot, fmt.Errorf("unknown time %q", label)
	}
}

// Pairing is an ordered (home, away) matchup.
type Pairing struct {
	Home Team
	Away Team
}

// Involves reports whether t plays in the pairing.
func (p Pairing) Involves(t Team) bool {
	return p.Home == t || p.Away == t
}

// Fixture is one position in the season's ordered match sequence.
type Fixture struct {
	Pairing
	Day  Day
	Time Slot

	filled bool
}

// Filled reports whether a pairing has been placed in the fixture.
func (f Fixture) Filled() bool {
	return f.filled
}

// Store holds the ordered fixture sequence for a league of n teams.
// Position in the sequence is chronological order.
type Store struct {
	teams    int
	fixtures []Fixture
}

func newStore(teams int) *Store {
	return &Store{
		teams:    teams,
		fixtures: make([]Fixture, teams*(teams-1)),
	}
}

// Teams returns the number of teams in the league.
func (s *Store) Teams() int {
	return s.teams
}

// Len returns the number of fixtures, n×(n−1).
func (s *Store) Len() int {
	return len(s.fixtures)
}

// Fixture returns the fixture at position i.
func (s *Store) Fixture(i int) Fixture {
	return s.fixtures[i]
}

// Fixtures returns a copy of the whole sequence.
func (s *Store) Fixtures() []Fixture {
	out := make([]Fixture, len(s.fixtures))
	copy(out, s.fixtures)
	return out
}

func (s *Store) place(i int, p Pairing) {
	s.fixtures[i].Pairing = p
	s.fixtures[i].filled = true
}

func (s *Store) clear(i int) {
	s.fixtures[i].Pairing = Pairing{}
	s.fixtures[i].filled = false
}

// days returns the assigned days in fixture order.
func (s *Store) days() []Day {
	days := make([]Day, len(s.fixtures))
	for i, f := range s.fixtures {
		days[i] = f.Day
	}
	return days
}
