package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/derekprior/fixturegen/internal/config"
	"github.com/derekprior/fixturegen/internal/playoff"
	"github.com/derekprior/fixturegen/internal/schedule"
)

// ScheduleSheet is the name of the sheet holding every fixture in order.
const ScheduleSheet = "Schedule"

// PlayoffSheet is the name of the sheet holding the playoff bracket.
const PlayoffSheet = "Playoffs"

// defaultSheet is the sheet every new workbook starts with.
const defaultSheet = "Sheet1"

// ScheduleHeaders are the column headers of the schedule sheet.
var ScheduleHeaders = []string{"Match", "Day", "Time", "Home", "Away", "Venue"}

// Generate creates a workbook with the full schedule, one sheet per team and,
// when bracket is non-nil, the playoffs.
func Generate(cfg *config.Config, rows []schedule.Row, bracket *playoff.Bracket) (*excelize.File, error) {
	for _, team := range cfg.Teams {
		if err := config.CheckTeamSheetName(team); err != nil {
			return nil, err
		}
	}

	f := excelize.NewFile()

	f.SetDefaultFont("Arial")

	if err := writeScheduleSheet(f, rows); err != nil {
		return nil, fmt.Errorf("writing schedule sheet: %w", err)
	}

	if err := writeTeamSheets(f, cfg, rows); err != nil {
		return nil, fmt.Errorf("writing team sheets: %w", err)
	}

	if bracket != nil {
		if err := writePlayoffSheet(f, bracket); err != nil {
			return nil, fmt.Errorf("writing playoff sheet: %w", err)
		}
	}

	f.DeleteSheet(defaultSheet)
	return f, nil
}

type styles struct {
	header  int
	cell    int
	weekend int
}

func newStyles(f *excelize.File) styles {
	header, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 14, Family: "Arial"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	cell, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 14, Family: "Arial"},
	})
	weekend, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 14, Family: "Arial"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2EFDA"}},
	})
	return styles{header: header, cell: cell, weekend: weekend}
}

func writeHeaders(f *excelize.File, sheet string, headers []string, st styles) {
	for i, h := range headers {
		f.SetCellValue(sheet, cellRef(i+1, 1), h)
	}
	if st.header != 0 {
		f.SetCellStyle(sheet, cellRef(1, 1), cellRef(len(headers), 1), st.header)
	}
}

func writeScheduleSheet(f *excelize.File, rows []schedule.Row) error {
	sheet := ScheduleSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	st := newStyles(f)
	writeHeaders(f, sheet, ScheduleHeaders, st)

	for i, r := range rows {
		row := i + 2
		values := []any{r.Match, r.Day, r.Time, r.Home, r.Away, r.Venue}
		for col, v := range values {
			f.SetCellValue(sheet, cellRef(col+1, row), v)
		}

		style := st.cell
		if r.Day == schedule.Saturday.String() || r.Day == schedule.Sunday.String() {
			style = st.weekend
		}
		if style != 0 {
			f.SetCellStyle(sheet, cellRef(1, row), cellRef(len(values), row), style)
		}
	}

	widths := map[string]float64{"A": 10, "B": 14, "C": 12, "D": 24, "E": 24, "F": 28}
	for col, w := range widths {
		f.SetColWidth(sheet, col, col, w)
	}
	return nil
}

func writeTeamSheets(f *excelize.File, cfg *config.Config, rows []schedule.Row) error {
	st := newStyles(f)
	headers := []string{"Match", "Day", "Time", "Opponent", "Home/Away", "Venue"}

	for _, team := range cfg.Teams {
		sheet := team
		if idx, _ := f.GetSheetIndex(sheet); idx != -1 {
			return fmt.Errorf("sheet for %s: %q already exists", team, sheet)
		}
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("sheet for %s: %w", team, err)
		}
		writeHeaders(f, sheet, headers, st)

		row := 2
		for _, r := range rows {
			var opponent, homeAway string
			switch team {
			case r.Home:
				opponent, homeAway = r.Away, "Home"
			case r.Away:
				opponent, homeAway = r.Home, "Away"
			default:
				continue
			}

			values := []any{r.Match, r.Day, r.Time, opponent, homeAway, r.Venue}
			for col, v := range values {
				f.SetCellValue(sheet, cellRef(col+1, row), v)
			}
			if st.cell != 0 {
				f.SetCellStyle(sheet, cellRef(1, row), cellRef(len(values), row), st.cell)
			}
			row++
		}

		widths := map[string]float64{"A": 10, "B": 14, "C": 12, "D": 24, "E": 14, "F": 28}
		for col, w := range widths {
			f.SetColWidth(sheet, col, col, w)
		}
	}
	return nil
}

func writePlayoffSheet(f *excelize.File, b *playoff.Bracket) error {
	sheet := PlayoffSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	st := newStyles(f)
	headers := []string{"Stage", "Home", "Away", "Venue", "Time", "Winner"}
	writeHeaders(f, sheet, headers, st)

	for i, m := range b.Matches() {
		row := i + 2
		values := []any{playoff.Title(m.Stage), m.Home, m.Away, m.Venue, schedule.Evening.Label(), m.Winner}
		for col, v := range values {
			f.SetCellValue(sheet, cellRef(col+1, row), v)
		}
		if st.cell != 0 {
			f.SetCellStyle(sheet, cellRef(1, row), cellRef(len(values), row), st.cell)
		}
	}

	if champion := b.Champion(); champion != "" {
		row := len(b.Matches()) + 3
		f.SetCellValue(sheet, cellRef(1, row), "Champion")
		f.SetCellValue(sheet, cellRef(2, row), champion)
	}

	widths := map[string]float64{"A": 16, "B": 24, "C": 24, "D": 28, "E": 12, "F": 24}
	for col, w := range widths {
		f.SetColWidth(sheet, col, col, w)
	}
	return nil
}

func cellRef(col, row int) string {
	return fmt.Sprintf("%s%d", colLetter(col), row)
}

func colLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
