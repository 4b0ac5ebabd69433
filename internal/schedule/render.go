package schedule

import "fmt"

// Row is a fixture resolved to display names.
type Row struct {
	Match int // 1-based
	Day   string
	Time  string
	Home  string
	Away  string
	Venue string
}

func (r Row) String() string {
	return fmt.Sprintf("Match %d | Day: %s | Time: %s | Match: (%s vs %s) | Venue: %s",
		r.Match, r.Day, r.Time, r.Home, r.Away, r.Venue)
}

// Render resolves every fixture in s against the team and venue names.
// Venues are used in rotation; with none given each fixture is played at a
// numbered stadium.
func Render(s *Store, teams []string, venues []string) ([]Row, error) {
	if len(teams) != s.teams {
		return nil, fmt.Errorf("got %d team names for a %d-team schedule", len(teams), s.teams)
	}

	rows := make([]Row, len(s.fixtures))
	for i, f := range s.fixtures {
		if !f.filled {
			return nil, fmt.Errorf("fixture %d has no pairing", i+1)
		}
		rows[i] = Row{
			Match: i + 1,
			Day:   f.Day.String(),
			Time:  f.Time.Label(),
			Home:  teams[f.Home-1],
			Away:  teams[f.Away-1],
			Venue: venueFor(i, s.teams, venues),
		}
	}
	return rows, nil
}

func venueFor(i, teams int, venues []string) string {
	if len(venues) == 0 {
		return fmt.Sprintf("Stadium %d", i%teams+1)
	}
	return venues[i%len(venues)]
}
