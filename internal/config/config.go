package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/derekprior/fixturegen/internal/schedule"
)

// StartDay is a schedule.Day that parses from either a day name
// ("Thursday") or its number (4).
type StartDay struct {
	Day schedule.Day
}

func (d *StartDay) UnmarshalYAML(value *yaml.Node) error {
	if n, err := strconv.Atoi(value.Value); err == nil {
		if !schedule.Day(n).Valid() {
			return fmt.Errorf("invalid start day %d: must be 1 (Monday) through 7 (Sunday)", n)
		}
		d.Day = schedule.Day(n)
		return nil
	}
	day, err := schedule.ParseDay(value.Value)
	if err != nil {
		return fmt.Errorf("invalid start day: %w", err)
	}
	d.Day = day
	return nil
}

// Stage names a playoff match in config.
const (
	Qualifier1 = "qualifier_1"
	Eliminator = "eliminator"
	Qualifier2 = "qualifier_2"
	Final      = "final"
)

// Stages lists the playoff matches in the order they are played.
var Stages = []string{Qualifier1, Eliminator, Qualifier2, Final}

// MaxTeamNameLength is the longest team name that fits a worksheet name.
const MaxTeamNameLength = 31

// ReservedSheetNames are the workbook sheets that are not team sheets.
// Worksheet names compare without regard to case.
var ReservedSheetNames = []string{"Schedule", "Playoffs", "Sheet1"}

// CheckTeamSheetName rejects team names that cannot name their own sheet
// in the schedule workbook.
func CheckTeamSheetName(team string) error {
	if n := utf8.RuneCountInString(team); n > MaxTeamNameLength {
		return fmt.Errorf("team %q is %d characters; at most %d fit a sheet name", team, n, MaxTeamNameLength)
	}
	if i := strings.IndexAny(team, `[]:*?/\`); i >= 0 {
		return fmt.Errorf("team %q contains %q, which a sheet name cannot", team, team[i])
	}
	if strings.HasPrefix(team, "'") || strings.HasSuffix(team, "'") {
		return fmt.Errorf("team %q cannot start or end with an apostrophe", team)
	}
	for _, r := range ReservedSheetNames {
		if strings.EqualFold(team, r) {
			return fmt.Errorf("team %q clashes with the %s sheet", team, r)
		}
	}
	return nil
}

type Playoffs struct {
	Standings []string          `yaml:"standings"`
	Venues    map[string]string `yaml:"venues"`
	Results   map[string]string `yaml:"results"`
}

type Config struct {
	Name       string    `yaml:"name"`
	Teams      []string  `yaml:"teams"`
	Venues     []string  `yaml:"venues"`
	StartDay   StartDay  `yaml:"start_day"`
	DayPolicy  string    `yaml:"day_policy"`
	TimePolicy string    `yaml:"time_policy"`
	Playoffs   *Playoffs `yaml:"playoffs"`
}

// Policies returns the configured day and time policies, falling back to
// the defaults for the league size.
func (c *Config) Policies() (schedule.DayPolicy, schedule.TimePolicy, error) {
	day, tm := schedule.DefaultPolicies(len(c.Teams))
	if c.DayPolicy != "" {
		p, err := schedule.ParseDayPolicy(c.DayPolicy)
		if err != nil {
			return 0, 0, err
		}
		day = p
	}
	if c.TimePolicy != "" {
		p, err := schedule.ParseTimePolicy(c.TimePolicy)
		if err != nil {
			return 0, 0, err
		}
		tm = p
	}
	return day, tm, nil
}

// Options builds the generation options for this league.
func (c *Config) Options() (schedule.Options, error) {
	day, tm, err := c.Policies()
	if err != nil {
		return schedule.Options{}, err
	}
	return schedule.Options{
		Teams:      len(c.Teams),
		StartDay:   c.StartDay.Day,
		DayPolicy:  day,
		TimePolicy: tm,
	}, nil
}

// HasTeam reports whether name is one of the league's teams.
func (c *Config) HasTeam(name string) bool {
	for _, t := range c.Teams {
		if t == name {
			return true
		}
	}
	return false
}

// LoadFromBytes parses YAML bytes into a Config and validates it.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromFile reads and parses a YAML config file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

func (c *Config) validate() error {
	if _, err := schedule.StrategyFor(len(c.Teams)); err != nil {
		return fmt.Errorf("teams: %w", err)
	}

	seen := make(map[string]bool)
	for _, team := range c.Teams {
		if team == "" {
			return fmt.Errorf("team names cannot be empty")
		}
		if err := CheckTeamSheetName(team); err != nil {
			return fmt.Errorf("teams: %w", err)
		}
		key := strings.ToLower(team)
		if seen[key] {
			return fmt.Errorf("team %q is listed more than once", team)
		}
		seen[key] = true
	}

	for i, v := range c.Venues {
		if v == "" {
			return fmt.Errorf("venue %d has no name", i+1)
		}
	}

	if !c.StartDay.Day.Valid() {
		return fmt.Errorf("start_day is required")
	}

	if _, _, err := c.Policies(); err != nil {
		return err
	}

	if c.Playoffs != nil {
		if err := c.validatePlayoffs(); err != nil {
			return fmt.Errorf("playoffs: %w", err)
		}
	}

	return nil
}

func (c *Config) validatePlayoffs() error {
	p := c.Playoffs
	if len(p.Standings) != 4 {
		return fmt.Errorf("standings must list exactly 4 teams, got %d", len(p.Standings))
	}

	seen := make(map[string]bool)
	for _, team := range p.Standings {
		if !c.HasTeam(team) {
			return fmt.Errorf("unknown team %q in standings", team)
		}
		if seen[team] {
			return fmt.Errorf("team %q appears twice in standings", team)
		}
		seen[team] = true
	}

	known := make(map[string]bool)
	for _, s := range Stages {
		known[s] = true
	}
	for _, s := range Stages {
		if p.Venues[s] == "" {
			return fmt.Errorf("missing venue for %s", s)
		}
	}
	for s := range p.Venues {
		if !known[s] {
			return fmt.Errorf("unknown stage %q in venues", s)
		}
	}
	for s, winner := range p.Results {
		if !known[s] {
			return fmt.Errorf("unknown stage %q in results", s)
		}
		if !seen[winner] {
			return fmt.Errorf("%s winner %q is not a playoff team", s, winner)
		}
	}

	return nil
}
