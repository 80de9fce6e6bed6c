package schedule

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"salonbooking/config"
	"salonbooking/models"
)

const (
	weeklyRange     = "Weekly!A2:C"
	exceptionsRange = "Exceptions!A2:C"
)

// SheetsScheduleSource reads the owner-maintained schedule sheet. Tab "Weekly"
// has rows (day | hours | day_off), tab "Exceptions" has (date | hours | day_off).
type SheetsScheduleSource struct {
	svc     *gsheets.Service
	sheetID string
}

// NewSheetsScheduleSource constructs a source for the configured spreadsheet.
func NewSheetsScheduleSource(ctx context.Context) (*SheetsScheduleSource, error) {
	svc, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(config.AppConfig.GoogleCredentialsFile),
		option.WithScopes(gsheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}
	return &SheetsScheduleSource{
		svc:     svc,
		sheetID: config.AppConfig.ScheduleSheetID,
	}, nil
}

func (s *SheetsScheduleSource) ReadWeeklySchedule(ctx context.Context) (models.WeeklySchedule, error) {
	rows, err := s.readRows(ctx, weeklyRange)
	if err != nil {
		return nil, err
	}
	return weeklyFromRows(rows), nil
}

func (s *SheetsScheduleSource) ReadExceptions(ctx context.Context) (models.ExceptionSchedule, error) {
	rows, err := s.readRows(ctx, exceptionsRange)
	if err != nil {
		return nil, err
	}
	return exceptionsFromRows(rows), nil
}

func (s *SheetsScheduleSource) readRows(ctx context.Context, readRange string) ([][]interface{}, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.sheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", readRange, err)
	}
	return resp.Values, nil
}

// weeklyFromRows maps sheet rows to the weekly schedule. Rows with an empty or
// unrecognisable day cell are skipped; the resolver treats missing weekdays as
// closed, so a broken row degrades safely.
func weeklyFromRows(rows [][]interface{}) models.WeeklySchedule {
	weekly := make(models.WeeklySchedule)
	for _, row := range rows {
		day := strings.ToLower(cellString(row, 0))
		if !weekdays[day] {
			continue
		}
		weekly[day] = models.ScheduleEntry{
			Hours:    cellString(row, 1),
			IsDayOff: cellBool(row, 2),
		}
	}
	return weekly
}

func exceptionsFromRows(rows [][]interface{}) models.ExceptionSchedule {
	exceptions := make(models.ExceptionSchedule)
	for _, row := range rows {
		date := cellString(row, 0)
		if len(date) != len("2006-01-02") {
			continue
		}
		exceptions[date] = models.ScheduleEntry{
			Hours:    cellString(row, 1),
			IsDayOff: cellBool(row, 2),
		}
	}
	return exceptions
}

func cellString(row []interface{}, idx int) string {
	if idx >= len(row) {
		return ""
	}
	s, _ := row[idx].(string)
	return strings.TrimSpace(s)
}

func cellBool(row []interface{}, idx int) bool {
	switch strings.ToLower(cellString(row, idx)) {
	case "true", "yes", "1", "y":
		return true
	}
	return false
}
