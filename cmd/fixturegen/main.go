package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/derekprior/fixturegen/internal/config"
	"github.com/derekprior/fixturegen/internal/excel"
	"github.com/derekprior/fixturegen/internal/logging"
	"github.com/derekprior/fixturegen/internal/playoff"
	"github.com/derekprior/fixturegen/internal/schedule"
	"github.com/derekprior/fixturegen/internal/validator"
)

const defaultConfigFile = "config.yaml"

var logger = zerolog.Nop()

func resolveConfigPath(configFlag string) (string, error) {
	if configFlag != "" {
		return configFlag, nil
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile, nil
	}
	return "", fmt.Errorf("no config file found. Either create %s in the current directory or pass --config", defaultConfigFile)
}

func main() {
	var logLevel string
	rootCmd := &cobra.Command{
		Use:   "fixturegen",
		Short: "Double round-robin fixture generator",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.Setup(os.Stderr, logLevel)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	var initOutputPath string
	initCmd := &cobra.Command{
		Use:          "init",
		Short:        "Create a starter config.yaml in the current directory",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(initOutputPath)
		},
	}
	initCmd.Flags().StringVarP(&initOutputPath, "output", "o", defaultConfigFile, "Output path for the config file")

	var configFile string

	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate and validate schedules",
	}
	scheduleCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default: config.yaml in current directory)")

	var outputFile string
	var quiet bool
	generateCmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate a schedule from a config file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(configFile)
			if err != nil {
				return err
			}
			return runGenerate(configPath, outputFile, quiet)
		},
	}
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "schedule.xlsx", "Output Excel file path")
	generateCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the schedule")

	validateCmd := &cobra.Command{
		Use:          "validate <schedule.xlsx>",
		Short:        "Validate a schedule against config rules",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(configFile)
			if err != nil {
				return err
			}
			return runValidate(configPath, args[0])
		},
	}

	playoffsCmd := &cobra.Command{
		Use:          "playoffs",
		Short:        "Show the playoff bracket and any recorded results",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath(configFile)
			if err != nil {
				return err
			}
			return runPlayoffs(configPath)
		},
	}
	playoffsCmd.Flags().StringVar(&configFile, "config", "", "Path to config file (default: config.yaml in current directory)")

	scheduleCmd.AddCommand(generateCmd, validateCmd)
	rootCmd.AddCommand(initCmd, scheduleCmd, playoffsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInit(outputPath string) error {
	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("%s already exists; remove it first or use -o to write elsewhere", outputPath)
	}

	if err := os.WriteFile(outputPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("✓ Created %s\n", outputPath)
	return nil
}

const configTemplate = `# League Configuration
# ====================
# This file defines the league used to generate a double round-robin:
# every team hosts every other team exactly once.

name: Premier League

# Teams, in seeding order. The count must be even. Eight-team leagues get
# fixed openings and never play two fixtures in a row.
teams:
  - Mumbai
  - Chennai
  - Bangalore
  - Kolkata
  - Delhi
  - Hyderabad
  - Punjab
  - Rajasthan

# Venues are used in rotation, one per fixture. Leave empty to use
# numbered stadiums ("Stadium 1", "Stadium 2", ...).
venues:
  - Wankhede Stadium
  - M. A. Chidambaram Stadium
  - M. Chinnaswamy Stadium
  - Eden Gardens

# Day of the week the first fixture is played: a name or 1 (Monday)
# through 7 (Sunday).
start_day: Saturday

# How fixtures advance through the week. Optional; leagues under eight teams
# default to skip_one, larger leagues to compact.
#   compact:               one fixture per day Monday to Friday, then
#                          alternating between Friday and Saturday
#   skip_one:              a rest day between fixtures
#   sequential:            one fixture every day
#   weekend_double_header: one fixture per weekday, two on Saturdays
#                          and Sundays
# day_policy: compact

# Start times. Optional; leagues under eight teams default to all_evening,
# larger leagues to weekday_evening_only.
#   weekday_evening_only: 7:30 pm on weekdays, weekend double-headers
#                         split between 3:30 pm and 7:30 pm
#   all_evening:          every fixture at 7:30 pm
# time_policy: weekday_evening_only

# Playoffs for the top four. Qualifier 1 is 1st v 2nd, the Eliminator is
# 3rd v 4th, Qualifier 2 is the loser of Qualifier 1 v the winner of the
# Eliminator, and the Final is between the two qualifier winners.
# Add results as matches are played.
# playoffs:
#   standings: [Mumbai, Chennai, Delhi, Punjab]
#   venues:
#     qualifier_1: Narendra Modi Stadium
#     eliminator: M. A. Chidambaram Stadium
#     qualifier_2: Wankhede Stadium
#     final: Narendra Modi Stadium
#   results:
#     qualifier_1: Mumbai
`

func runGenerate(configPath, outputPath string, quiet bool) error {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	strategy, err := schedule.StrategyFor(opts.Teams)
	if err != nil {
		return err
	}
	logger.Info().
		Int("teams", opts.Teams).
		Stringer("strategy", strategy).
		Stringer("start_day", opts.StartDay).
		Stringer("day_policy", opts.DayPolicy).
		Stringer("time_policy", opts.TimePolicy).
		Msg("generating schedule")

	s, err := schedule.Generate(opts)
	if err != nil {
		return fmt.Errorf("generating schedule: %w", err)
	}

	rows, err := schedule.Render(s, cfg.Teams, cfg.Venues)
	if err != nil {
		return fmt.Errorf("rendering schedule: %w", err)
	}
	fmt.Printf("✓ Scheduled %d fixtures for %d teams\n", len(rows), opts.Teams)

	if !quiet {
		title := cfg.Name
		if title == "" {
			title = "THE"
		}
		fmt.Printf("\n%s SCHEDULE\n", title)
		for _, r := range rows {
			fmt.Println(r)
		}
	}

	var bracket *playoff.Bracket
	if cfg.Playoffs != nil {
		bracket, err = playoff.FromConfig(cfg.Playoffs)
		if err != nil {
			return fmt.Errorf("building playoffs: %w", err)
		}
	}

	f, err := excel.Generate(cfg, rows, bracket)
	if err != nil {
		return fmt.Errorf("generating Excel: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("saving file: %w", err)
	}
	logger.Debug().Str("path", outputPath).Int("sheets", f.SheetCount).Msg("workbook saved")

	fmt.Printf("\n✓ Schedule saved to %s\n", outputPath)
	return nil
}

func runValidate(configPath, schedulePath string) error {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	violations, err := validator.Validate(cfg, schedulePath)
	if err != nil {
		return fmt.Errorf("validating: %w", err)
	}

	errors := 0
	warnings := 0
	for _, v := range violations {
		switch v.Type {
		case "error":
			errors++
			fmt.Printf("✗ Rule violation: %s\n", v.Message)
		case "warning":
			warnings++
			fmt.Printf("⚠ Guideline violation: %s\n", v.Message)
		}
	}
	logger.Debug().Int("errors", errors).Int("warnings", warnings).Str("path", schedulePath).Msg("validation finished")

	fmt.Printf("\nValidation complete: %d rule violations, %d guideline violations\n", errors, warnings)

	if errors > 0 {
		return fmt.Errorf("%d rule violations found", errors)
	}
	return nil
}

func runPlayoffs(configPath string) error {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Playoffs == nil {
		return fmt.Errorf("%s has no playoffs section", configPath)
	}

	bracket, err := playoff.FromConfig(cfg.Playoffs)
	if err != nil {
		return fmt.Errorf("building playoffs: %w", err)
	}

	fmt.Println("PLAYOFFS")
	for _, m := range bracket.Matches() {
		fmt.Println(m)
	}
	if champion := bracket.Champion(); champion != "" {
		league := cfg.Name
		if league == "" {
			league = "the league"
		}
		fmt.Printf("\nThe winner of %s is %s!\n", league, champion)
	}
	return nil
}
