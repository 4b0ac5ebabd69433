package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTeamCount is returned for leagues that cannot play a double
	// round-robin: fewer than two teams or an odd count.
	ErrInvalidTeamCount = errors.New("invalid team count")
	// ErrInvalidStartDay is returned when the first fixture's day is not
	// Monday through Sunday.
	ErrInvalidStartDay = errors.New("invalid start day")
	// ErrNonProgress is returned when the eight-team search cannot place the
	// remaining pairings.
	ErrNonProgress = errors.New("no pairing can be placed")
)

// Strategy is the pairing generator chosen for a league size.
type Strategy int

const (
	// CircleMethod is the general double round-robin for any even team count.
	CircleMethod Strategy = iota
	// EightTeam seeds fixed openings and spaces every team's fixtures.
	EightTeam
)

func (s Strategy) String() string {
	switch s {
	case CircleMethod:
		return "circle_method"
	case EightTeam:
		return "eight_team"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// StrategyFor returns the strategy used to pair a league of n teams.
func StrategyFor(n int) (Strategy, error) {
	if n < 2 || n%2 != 0 {
		return 0, fmt.Errorf("%w: %d (need an even number of at least 2)", ErrInvalidTeamCount, n)
	}
	if n == eightTeams {
		return EightTeam, nil
	}
	return CircleMethod, nil
}

// DefaultPolicies returns the day and time policies used for a league of n
// teams when none are configured.
func DefaultPolicies(n int) (DayPolicy, TimePolicy) {
	if n < eightTeams {
		return SkipOne, AllEvening
	}
	return Compact, WeekdayEveningOnly
}

// Options controls a single generation run.
type Options struct {
	Teams      int
	StartDay   Day
	DayPolicy  DayPolicy
	TimePolicy TimePolicy

	// SearchBudget limits placements tried by the eight-team strategy.
	// Zero uses the default.
	SearchBudget int
}

// Generate pairs every team against every other home and away, then assigns
// each fixture a day and a time.
func Generate(opts Options) (*Store, error) {
	strategy, err := StrategyFor(opts.Teams)
	if err != nil {
		return nil, err
	}
	if !opts.StartDay.Valid() {
		if strategy == EightTeam {
			return nil, fmt.Errorf("%w: %w: %d", ErrInvalidTeamCount, ErrInvalidStartDay, int(opts.StartDay))
		}
		return nil, fmt.Errorf("%w: %d", ErrInvalidStartDay, int(opts.StartDay))
	}

	s := newStore(opts.Teams)
	switch strategy {
	case EightTeam:
		budget := opts.SearchBudget
		if budget <= 0 {
			budget = defaultSearchBudget
		}
		if err := assignEightTeams(s, opts.StartDay, budget); err != nil {
			return nil, fmt.Errorf("pairing %d teams from %s: %w", opts.Teams, opts.StartDay, err)
		}
	default:
		circleMethod(s)
	}

	assignDays(s, opts.StartDay, opts.DayPolicy)
	assignTimes(s, opts.TimePolicy)
	return s, nil
}
