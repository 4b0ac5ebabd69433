package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/derekprior/fixturegen/internal/schedule"
)

const testConfigYAML = `
name: Premier League
teams: [Mumbai, Chennai, Bangalore, Kolkata, Delhi, Hyderabad, Punjab, Rajasthan]
venues: [Wankhede, Chepauk, Chinnaswamy]
start_day: Saturday

playoffs:
  standings: [Mumbai, Chennai, Delhi, Punjab]
  venues:
    qualifier_1: Ahmedabad
    eliminator: Chennai
    qualifier_2: Mumbai
    final: Ahmedabad
  results:
    qualifier_1: Mumbai
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(testConfigYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("teams", func(t *testing.T) {
		if len(cfg.Teams) != 8 {
			t.Fatalf("teams = %d, want 8", len(cfg.Teams))
		}
		if cfg.Teams[0] != "Mumbai" {
			t.Errorf("first team = %q, want Mumbai", cfg.Teams[0])
		}
	})

	t.Run("venues", func(t *testing.T) {
		if len(cfg.Venues) != 3 {
			t.Errorf("venues = %d, want 3", len(cfg.Venues))
		}
	})

	t.Run("start day by name", func(t *testing.T) {
		if cfg.StartDay.Day != schedule.Saturday {
			t.Errorf("start day = %s, want Saturday", cfg.StartDay.Day)
		}
	})

	t.Run("default policies for eight teams", func(t *testing.T) {
		day, tm, err := cfg.Policies()
		if err != nil {
			t.Fatalf("Policies() error: %v", err)
		}
		if day != schedule.Compact {
			t.Errorf("day policy = %s, want compact", day)
		}
		if tm != schedule.WeekdayEveningOnly {
			t.Errorf("time policy = %s, want weekday_evening_only", tm)
		}
	})

	t.Run("options", func(t *testing.T) {
		opts, err := cfg.Options()
		if err != nil {
			t.Fatalf("Options() error: %v", err)
		}
		if opts.Teams != 8 || opts.StartDay != schedule.Saturday {
			t.Errorf("options = %+v", opts)
		}
	})

	t.Run("playoffs", func(t *testing.T) {
		if cfg.Playoffs == nil {
			t.Fatal("playoffs not loaded")
		}
		if cfg.Playoffs.Venues[Final] != "Ahmedabad" {
			t.Errorf("final venue = %q, want Ahmedabad", cfg.Playoffs.Venues[Final])
		}
		if cfg.Playoffs.Results[Qualifier1] != "Mumbai" {
			t.Errorf("qualifier 1 result = %q, want Mumbai", cfg.Playoffs.Results[Qualifier1])
		}
	})
}

func TestStartDayByNumber(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("teams: [A, B]\nstart_day: 4\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StartDay.Day != schedule.Thursday {
		t.Errorf("start day = %s, want Thursday", cfg.StartDay.Day)
	}
}

func TestPolicyOverrides(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`
teams: [A, B, C, D]
start_day: Monday
day_policy: sequential
time_policy: weekday_evening_only
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	day, tm, _ := cfg.Policies()
	if day != schedule.Sequential {
		t.Errorf("day policy = %s, want sequential", day)
	}
	if tm != schedule.WeekdayEveningOnly {
		t.Errorf("time policy = %s, want weekday_evening_only", tm)
	}
}

func TestSmallLeagueDefaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte("teams: [A, B, C, D]\nstart_day: Monday\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	day, tm, _ := cfg.Policies()
	if day != schedule.SkipOne || tm != schedule.AllEvening {
		t.Errorf("policies = %s, %s; want skip_one, all_evening", day, tm)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "odd team count",
			yaml:    "teams: [A, B, C]\nstart_day: Monday\n",
			wantErr: "invalid team count",
		},
		{
			name:    "single team",
			yaml:    "teams: [A]\nstart_day: Monday\n",
			wantErr: "invalid team count",
		},
		{
			name:    "duplicate team",
			yaml:    "teams: [A, A]\nstart_day: Monday\n",
			wantErr: "listed more than once",
		},
		{
			name:    "duplicate team ignoring case",
			yaml:    "teams: [Mumbai, MUMBAI]\nstart_day: Monday\n",
			wantErr: "listed more than once",
		},
		{
			name:    "team named after the schedule sheet",
			yaml:    "teams: [Mumbai, Schedule, Delhi, Punjab]\nstart_day: Monday\n",
			wantErr: `teams: team "Schedule" clashes with the Schedule sheet`,
		},
		{
			name:    "team named after the playoff sheet",
			yaml:    "teams: [playoffs, Delhi]\nstart_day: Monday\n",
			wantErr: "clashes with the Playoffs sheet",
		},
		{
			name:    "team named after the default sheet",
			yaml:    "teams: [Sheet1, Delhi]\nstart_day: Monday\n",
			wantErr: "clashes with the Sheet1 sheet",
		},
		{
			name:    "team name too long for a sheet",
			yaml:    "teams: [Royal Challengers Bangalore Cricket Club, Delhi]\nstart_day: Monday\n",
			wantErr: "at most 31 fit a sheet name",
		},
		{
			name:    "team name with a slash",
			yaml:    "teams: [\"Delhi/NCR\", Punjab]\nstart_day: Monday\n",
			wantErr: `contains '/'`,
		},
		{
			name:    "missing start day",
			yaml:    "teams: [A, B]\n",
			wantErr: "start_day is required",
		},
		{
			name:    "start day out of range",
			yaml:    "teams: [A, B]\nstart_day: 8\n",
			wantErr: "invalid start day",
		},
		{
			name:    "unknown start day",
			yaml:    "teams: [A, B]\nstart_day: Caturday\n",
			wantErr: "unknown day",
		},
		{
			name:    "unknown day policy",
			yaml:    "teams: [A, B]\nstart_day: Monday\nday_policy: weekly\n",
			wantErr: "unknown day policy",
		},
		{
			name:    "empty venue",
			yaml:    "teams: [A, B]\nstart_day: Monday\nvenues: [\"\"]\n",
			wantErr: "venue 1 has no name",
		},
		{
			name: "short standings",
			yaml: `
teams: [A, B, C, D]
start_day: Monday
playoffs:
  standings: [A, B, C]
`,
			wantErr: "exactly 4 teams",
		},
		{
			name: "unknown playoff team",
			yaml: `
teams: [A, B, C, D]
start_day: Monday
playoffs:
  standings: [A, B, C, E]
`,
			wantErr: `unknown team "E"`,
		},
		{
			name: "missing playoff venue",
			yaml: `
teams: [A, B, C, D]
start_day: Monday
playoffs:
  standings: [A, B, C, D]
  venues:
    qualifier_1: X
    eliminator: X
    qualifier_2: X
`,
			wantErr: "missing venue for final",
		},
		{
			name: "result for a non-playoff team",
			yaml: `
teams: [A, B, C, D, E, F]
start_day: Monday
playoffs:
  standings: [A, B, C, D]
  venues: {qualifier_1: X, eliminator: X, qualifier_2: X, final: X}
  results:
    final: F
`,
			wantErr: "not a playoff team",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(testConfigYAML), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}
	if cfg.Name != "Premier League" {
		t.Errorf("name = %q, want Premier League", cfg.Name)
	}

	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
