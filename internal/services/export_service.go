package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/placeprep/readiness-service/internal/events"
)

// Fixed report filenames; an existing file is overwritten without
// confirmation.
const (
	CSVReportFilename  = "student_readiness_report.csv"
	XLSXReportFilename = "student_readiness_report.xlsx"
)

var reportHeader = []string{"Name", "Email", "Resume Score", "Aptitude Score", "Certifications", "Total Readiness"}

type exportService struct {
	leaderboard LeaderboardService
	publisher   events.EventPublisher
	logger      *slog.Logger
	exportDir   string
}

func NewExportService(
	leaderboard LeaderboardService,
	publisher events.EventPublisher,
	logger *slog.Logger,
	exportDir string,
) ExportService {
	return &exportService{
		leaderboard: leaderboard,
		publisher:   publisher,
		logger:      logger,
		exportDir:   exportDir,
	}
}

// ExportCSV writes the aggregated report as CSV: a header row plus one row
// per user.
func (s *exportService) ExportCSV(ctx context.Context) (*ExportResult, error) {
	rows, err := s.leaderboard.BuildReportRows(ctx)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(s.exportDir, CSVReportFilename)
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(reportHeader); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Name,
			row.Email,
			strconv.FormatFloat(row.ResumeScore, 'f', 1, 64),
			strconv.FormatFloat(row.AptitudeScore, 'f', 1, 64),
			strconv.FormatInt(row.Certifications, 10),
			strconv.FormatFloat(row.TotalReadiness, 'f', 1, 64),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write report row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush report: %w", err)
	}

	s.published(ctx, "csv", CSVReportFilename, len(rows))

	return &ExportResult{Filename: CSVReportFilename, Rows: len(rows)}, nil
}

// ExportXLSX writes the same report as a spreadsheet.
func (s *exportService) ExportXLSX(ctx context.Context) (*ExportResult, error) {
	rows, err := s.leaderboard.BuildReportRows(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for col, name := range reportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.Name,
			row.Email,
			row.ResumeScore,
			row.AptitudeScore,
			row.Certifications,
			row.TotalReadiness,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to compute cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	path := filepath.Join(s.exportDir, XLSXReportFilename)
	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("failed to save spreadsheet: %w", err)
	}

	s.published(ctx, "xlsx", XLSXReportFilename, len(rows))

	return &ExportResult{Filename: XLSXReportFilename, Rows: len(rows)}, nil
}

func (s *exportService) published(ctx context.Context, format, filename string, rows int) {
	err := s.publisher.Publish(ctx, events.TypeReportExported, events.ReportEvent{
		Format:   format,
		Filename: filename,
		Rows:     rows,
	})
	if err != nil {
		s.logger.Warn("failed to publish export event", "format", format, "error", err)
	}
}
