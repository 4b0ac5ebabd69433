package schedule

import "fmt"

// TimePolicy decides the start time of each fixture.
type TimePolicy int

const (
	// WeekdayEveningOnly plays weekdays in the evening and splits weekend
	// double-headers into an afternoon and an evening fixture.
	WeekdayEveningOnly TimePolicy = iota
	// AllEvening plays every fixture in the evening.
	AllEvening
)

var timePolicyNames = map[TimePolicy]string{
	WeekdayEveningOnly: "weekday_evening_only",
	AllEvening:         "all_evening",
}

func (p TimePolicy) String() string {
	if name, ok := timePolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("TimePolicy(%d)", int(p))
}

// ParseTimePolicy returns the policy with the given config name.
func ParseTimePolicy(name string) (TimePolicy, error) {
	for p, n := range timePolicyNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown time policy: %q", name)
}

func timeSlots(days []Day, policy TimePolicy) []Slot {
	slots := make([]Slot, len(days))
	last := len(days) - 1
	for i, d := range days {
		switch {
		case policy == AllEvening, i == last, !d.Weekend():
			slots[i] = Evening
		case i > 0 && slots[i-1] == Afternoon:
			slots[i] = Evening
		default:
			slots[i] = Afternoon
		}
	}
	return slots
}

func assignTimes(s *Store, policy TimePolicy) {
	for i, t := range timeSlots(s.days(), policy) {
		s.fixtures[i].Time = t
	}
}
