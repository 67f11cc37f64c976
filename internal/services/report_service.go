package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"fibertrack/internal/repositories"
)

type ReportServiceInterface interface {
	BuildYearlyPerformanceReport(ctx context.Context, year int) (*bytes.Buffer, string, error)
}

type ReportService struct {
	performanceRepo repositories.PerformanceRepositoryInterface
}

func NewReportService(performanceRepo repositories.PerformanceRepositoryInterface) ReportServiceInterface {
	return &ReportService{performanceRepo: performanceRepo}
}

// BuildYearlyPerformanceReport renders the monthly aggregates for one year as
// an XLSX workbook. Returns the file content and a suggested filename.
func (s *ReportService) BuildYearlyPerformanceReport(ctx context.Context, year int) (*bytes.Buffer, string, error) {
	months, err := s.performanceRepo.ListMonthlyByYear(ctx, year)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Performance"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", fmt.Errorf("renaming report sheet: %w", err)
	}

	headers := []string{"Month", "Projects Completed", "Avg Completion Days", "Avg Customer Satisfaction"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", fmt.Errorf("writing report header: %w", err)
		}
	}

	for row, m := range months {
		values := []interface{}{
			time.Month(m.Month).String(),
			m.ProjectsCompleted,
			m.AvgCompletionDays,
			m.AvgSatisfaction,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", fmt.Errorf("writing report row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("serializing report: %w", err)
	}
	return buf, fmt.Sprintf("team-performance-%d.xlsx", year), nil
}
