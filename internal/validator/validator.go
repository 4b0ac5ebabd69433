package validator

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/derekprior/fixturegen/internal/config"
	"github.com/derekprior/fixturegen/internal/excel"
	"github.com/derekprior/fixturegen/internal/schedule"
)

// Violation represents a rule or guideline broken by a schedule.
type Violation struct {
	Row     int
	Type    string // "error" or "warning"
	Message string
}

// Validate reads a schedule workbook and checks it against the config.
func Validate(cfg *config.Config, path string) ([]Violation, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	fixtures, violations, err := readFixtures(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}

	return append(violations, Check(cfg, fixtures)...), nil
}

// Check runs every rule and guideline over fixtures already in match order.
func Check(cfg *config.Config, fixtures []Fixture) []Violation {
	var violations []Violation

	// Rules
	violations = append(violations, checkSelfPlay(fixtures)...)
	violations = append(violations, checkPairings(cfg, fixtures)...)

	// Guidelines
	violations = append(violations, checkRest(fixtures)...)
	violations = append(violations, checkDayLoad(fixtures)...)
	violations = append(violations, checkDoubleHeaderTimes(fixtures)...)

	return violations
}

// Fixture is one schedule row read back from a workbook.
type Fixture struct {
	Row   int
	Match int
	Day   schedule.Day
	Time  schedule.Slot
	Home  string
	Away  string
	Venue string
}

func readFixtures(f *excelize.File, cfg *config.Config) ([]Fixture, []Violation, error) {
	rows, err := f.GetRows(excel.ScheduleSheet)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", excel.ScheduleSheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s is empty", excel.ScheduleSheet)
	}

	var fixtures []Fixture
	var violations []Violation
	for i, row := range rows {
		if i == 0 || len(row) == 0 || row[0] == "" {
			continue
		}
		rowNum := i + 1
		if len(row) < 5 {
			violations = append(violations, Violation{
				Row:     rowNum,
				Type:    "error",
				Message: fmt.Sprintf("row %d is missing columns", rowNum),
			})
			continue
		}

		match, err := strconv.Atoi(row[0])
		if err != nil {
			violations = append(violations, Violation{
				Row:     rowNum,
				Type:    "error",
				Message: fmt.Sprintf("row %d: match number %q is not a number", rowNum, row[0]),
			})
			continue
		}
		fx := Fixture{Row: rowNum, Match: match, Home: row[3], Away: row[4]}
		if len(row) > 5 {
			fx.Venue = row[5]
		}

		if fx.Day, err = schedule.ParseDay(row[1]); err != nil {
			violations = append(violations, Violation{Row: rowNum, Type: "error",
				Message: fmt.Sprintf("match %d: %v", match, err)})
		}
		if fx.Time, err = schedule.ParseSlot(row[2]); err != nil {
			violations = append(violations, Violation{Row: rowNum, Type: "error",
				Message: fmt.Sprintf("match %d: %v", match, err)})
		}
		for _, team := range []string{fx.Home, fx.Away} {
			if !cfg.HasTeam(team) {
				violations = append(violations, Violation{Row: rowNum, Type: "error",
					Message: fmt.Sprintf("match %d: unknown team %q", match, team)})
			}
		}

		fixtures = append(fixtures, fx)
	}

	sort.SliceStable(fixtures, func(i, j int) bool {
		return fixtures[i].Match < fixtures[j].Match
	})
	return fixtures, violations, nil
}

func checkSelfPlay(fixtures []Fixture) []Violation {
	var violations []Violation
	for _, fx := range fixtures {
		if fx.Home == fx.Away {
			violations = append(violations, Violation{
				Row:     fx.Row,
				Type:    "error",
				Message: fmt.Sprintf("match %d: %s plays itself", fx.Match, fx.Home),
			})
		}
	}
	return violations
}

// checkPairings requires every team to host every other team exactly once.
func checkPairings(cfg *config.Config, fixtures []Fixture) []Violation {
	type pairing struct{ home, away string }
	rows := make(map[pairing][]int)
	for _, fx := range fixtures {
		p := pairing{fx.Home, fx.Away}
		rows[p] = append(rows[p], fx.Match)
	}

	var violations []Violation
	for _, home := range cfg.Teams {
		for _, away := range cfg.Teams {
			if home == away {
				continue
			}
			matches := rows[pairing{home, away}]
			switch {
			case len(matches) == 0:
				violations = append(violations, Violation{
					Type:    "error",
					Message: fmt.Sprintf("%s never hosts %s", home, away),
				})
			case len(matches) > 1:
				violations = append(violations, Violation{
					Type:    "error",
					Message: fmt.Sprintf("%s hosts %s %d times (matches %v)", home, away, len(matches), matches),
				})
			}
		}
	}
	return violations
}

// checkRest warns when a team plays in two consecutive fixtures.
func checkRest(fixtures []Fixture) []Violation {
	var violations []Violation
	for i := 1; i < len(fixtures); i++ {
		prev, cur := fixtures[i-1], fixtures[i]
		for _, team := range []string{cur.Home, cur.Away} {
			if team == prev.Home || team == prev.Away {
				violations = append(violations, Violation{
					Row:  cur.Row,
					Type: "warning",
					Message: fmt.Sprintf("%s plays back-to-back in matches %d and %d",
						team, prev.Match, cur.Match),
				})
			}
		}
	}
	return violations
}

// checkDayLoad warns when more than two consecutive fixtures fall on the
// same day.
func checkDayLoad(fixtures []Fixture) []Violation {
	var violations []Violation
	run := 1
	for i := 1; i < len(fixtures); i++ {
		if fixtures[i].Day != fixtures[i-1].Day {
			run = 1
			continue
		}
		run++
		if run == 3 {
			violations = append(violations, Violation{
				Row:  fixtures[i].Row,
				Type: "warning",
				Message: fmt.Sprintf("%d or more consecutive matches on %s starting at match %d",
					run, fixtures[i].Day, fixtures[i-2].Match),
			})
		}
	}
	return violations
}

// checkDoubleHeaderTimes warns when two fixtures sharing a weekend day are
// not an afternoon match followed by an evening one.
func checkDoubleHeaderTimes(fixtures []Fixture) []Violation {
	var violations []Violation
	for i := 1; i < len(fixtures); i++ {
		prev, cur := fixtures[i-1], fixtures[i]
		if cur.Day != prev.Day || !cur.Day.Weekend() {
			continue
		}
		if i >= 2 && fixtures[i-2].Day == cur.Day {
			continue
		}
		if prev.Time != schedule.Afternoon || cur.Time != schedule.Evening {
			violations = append(violations, Violation{
				Row:  cur.Row,
				Type: "warning",
				Message: fmt.Sprintf("%s double-header in matches %d and %d is %s then %s",
					cur.Day, prev.Match, cur.Match, prev.Time.Label(), cur.Time.Label()),
			})
		}
	}
	return violations
}
