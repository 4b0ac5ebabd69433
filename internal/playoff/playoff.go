package playoff

import (
	"fmt"

	"github.com/derekprior/fixturegen/internal/config"
)

// Match is one playoff fixture. Home and Away are empty until the matches
// feeding them have been decided.
type Match struct {
	Stage  string
	Home   string
	Away   string
	Venue  string
	Winner string
}

// Ready reports whether both participants are known.
func (m *Match) Ready() bool {
	return m.Home != "" && m.Away != ""
}

// Loser returns the participant who did not win, or "" if undecided.
func (m *Match) Loser() string {
	switch m.Winner {
	case "":
		return ""
	case m.Home:
		return m.Away
	default:
		return m.Home
	}
}

func (m *Match) String() string {
	home, away := m.Home, m.Away
	if home == "" {
		home = "TBD"
	}
	if away == "" {
		away = "TBD"
	}
	s := fmt.Sprintf("%s: %s vs %s at %s 7:30 pm", Title(m.Stage), home, away, m.Venue)
	if m.Winner != "" {
		s += fmt.Sprintf(". Winner: %s", m.Winner)
	}
	return s
}

// Bracket is the four-match playoff: the top two meet in Qualifier 1, third
// and fourth in the Eliminator, Qualifier 1's loser plays the Eliminator's
// winner in Qualifier 2, and the Final is Qualifier 1's winner against
// Qualifier 2's winner.
type Bracket struct {
	matches map[string]*Match
}

// New seeds a bracket from the top four standings in order.
func New(standings [4]string, venues map[string]string) *Bracket {
	b := &Bracket{matches: make(map[string]*Match)}
	for _, s := range config.Stages {
		b.matches[s] = &Match{Stage: s, Venue: venues[s]}
	}
	b.matches[config.Qualifier1].Home = standings[0]
	b.matches[config.Qualifier1].Away = standings[1]
	b.matches[config.Eliminator].Home = standings[2]
	b.matches[config.Eliminator].Away = standings[3]
	return b
}

// FromConfig builds the configured bracket and records any results already
// known, in stage order.
func FromConfig(p *config.Playoffs) (*Bracket, error) {
	var standings [4]string
	copy(standings[:], p.Standings)
	b := New(standings, p.Venues)

	for _, s := range config.Stages {
		winner, ok := p.Results[s]
		if !ok {
			continue
		}
		if err := b.Record(s, winner); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Record sets the winner of a stage and advances teams into later matches.
// A stage can only be decided once.
func (b *Bracket) Record(stage, winner string) error {
	m, ok := b.matches[stage]
	if !ok {
		return fmt.Errorf("unknown stage %q", stage)
	}
	if m.Winner != "" {
		return fmt.Errorf("%s was already won by %s", Title(stage), m.Winner)
	}
	if !m.Ready() {
		return fmt.Errorf("%s cannot be decided before its participants are known", Title(stage))
	}
	if winner != m.Home && winner != m.Away {
		return fmt.Errorf("%s winner %q did not play in it (%s vs %s)", Title(stage), winner, m.Home, m.Away)
	}
	m.Winner = winner

	switch stage {
	case config.Qualifier1:
		b.matches[config.Final].Home = winner
		b.matches[config.Qualifier2].Home = m.Loser()
	case config.Eliminator:
		b.matches[config.Qualifier2].Away = winner
	case config.Qualifier2:
		b.matches[config.Final].Away = winner
	}
	return nil
}

// Matches returns the bracket in playing order.
func (b *Bracket) Matches() []*Match {
	out := make([]*Match, 0, len(config.Stages))
	for _, s := range config.Stages {
		out = append(out, b.matches[s])
	}
	return out
}

// Champion returns the Final's winner, or "" if it has not been played.
func (b *Bracket) Champion() string {
	return b.matches[config.Final].Winner
}

// Title returns the display name for a stage.
func Title(stage string) string {
	switch stage {
	case config.Qualifier1:
		return "Qualifier 1"
	case config.Eliminator:
		return "Eliminator"
	case config.Qualifier2:
		return "Qualifier 2"
	case config.Final:
		return "Final"
	default:
		return stage
	}
}
