package schedule

import "fmt"

// DayPolicy decides how consecutive fixtures advance through the week.
type DayPolicy int

const (
	// Compact plays Monday to Friday on consecutive days, then steps
	// forward a day and straight back again, so the fixtures on either side
	// of a weekend step share a day.
	Compact DayPolicy = iota
	// SkipOne leaves a rest day between fixtures.
	SkipOne
	// Sequential plays one fixture per calendar day.
	Sequential
	// WeekendDoubleHeader plays weekdays on consecutive days and two
	// fixtures on each of Saturday and Sunday.
	WeekendDoubleHeader
)

var dayPolicyNames = map[DayPolicy]string{
	Compact:             "compact",
	SkipOne:             "skip_one",
	Sequential:          "sequential",
	WeekendDoubleHeader: "weekend_double_header",
}

func (p DayPolicy) String() string {
	if name, ok := dayPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("DayPolicy(%d)", int(p))
}

// ParseDayPolicy returns the policy with the given config name.
func ParseDayPolicy(name string) (DayPolicy, error) {
	for p, n := range dayPolicyNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown day policy: %q", name)
}

// dayRotation returns the day of each of total fixtures starting on start.
func dayRotation(total int, start Day, policy DayPolicy) []Day {
	days := make([]Day, total)
	if total == 0 {
		return days
	}
	days[0] = start

	switch policy {
	case SkipOne:
		for i := 1; i < total; i++ {
			days[i] = Day((int(days[i-1])+1)%7 + 1)
		}
	case Sequential:
		for i := 1; i < total; i++ {
			days[i] = nextDay(days[i-1])
		}
	case WeekendDoubleHeader:
		packWeekdays(days, true)
	default:
		packWeekdays(days, false)
	}
	return days
}

// packWeekdays advances one day at a time from Monday to Friday. From Friday
// or Saturday it steps forward a day and fills the following fixture too:
// with the same day when doubleUp is set, otherwise with the day it stepped
// from. Sunday resets to Monday.
func packWeekdays(days []Day, doubleUp bool) {
	last := len(days) - 1
	for i := 1; i <= last; {
		prev := days[i-1]
		switch {
		case prev < Friday:
			days[i] = prev + 1
			i++
		case i == last:
			days[i] = nextDay(prev)
			i++
		case prev < Sunday:
			days[i] = prev + 1
			if doubleUp {
				days[i+1] = days[i]
			} else {
				days[i+1] = prev
			}
			i += 2
		default:
			days[i] = Monday
			i++
		}
	}
}

func nextDay(d Day) Day {
	return Day(int(d)%7 + 1)
}

func assignDays(s *Store, start Day, policy DayPolicy) {
	for i, d := range dayRotation(s.Len(), start, policy) {
		s.fixtures[i].Day = d
	}
}
