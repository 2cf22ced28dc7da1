package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/10021987z/dzilo-sub003/modules/hrm/domain/entities/report"
)

const reportSheetName = "Reports"

// ReportExportService renders reports into an xlsx workbook: one summary
// row per report plus a detail sheet per report with its sections.
type ReportExportService struct {
	reports *ReportService
}

func NewReportExportService(reports *ReportService) *ReportExportService {
	return &ReportExportService{reports: reports}
}

func (s *ReportExportService) Export(ctx context.Context, params *report.FindParams) ([]byte, error) {
	reports, err := s.reports.List(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "listing reports for export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheetName); err != nil {
		return nil, errors.Wrap(err, "renaming summary sheet")
	}

	headers := []string{"Title", "Start", "End", "Sections", "Status", "Created"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(reportSheetName, cell, header); err != nil {
			return nil, errors.Wrap(err, "writing header row")
		}
	}

	for row, rep := range reports {
		values := []any{
			rep.Title(),
			rep.Start().Format("2006-01-02"),
			rep.End().Format("2006-01-02"),
			len(rep.Sections()),
			string(rep.Status()),
			rep.CreatedAt().Format("2006-01-02"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(reportSheetName, cell, value); err != nil {
				return nil, errors.Wrapf(err, "writing report row %d", row+1)
			}
		}
	}

	for i, rep := range reports {
		if err := s.writeDetailSheet(f, i, rep); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "serializing workbook")
	}
	return buf.Bytes(), nil
}

func (s *ReportExportService) writeDetailSheet(f *excelize.File, index int, rep report.Report) error {
	// Sheet names cap at 31 chars in the xlsx format.
	name := fmt.Sprintf("R%d %s", index+1, rep.Title())
	if len(name) > 31 {
		name = name[:31]
	}
	if _, err := f.NewSheet(name); err != nil {
		return errors.Wrapf(err, "creating sheet for report %q", rep.Title())
	}
	if err := f.SetCellValue(name, "A1", "Section"); err != nil {
		return err
	}
	if err := f.SetCellValue(name, "B1", "Content"); err != nil {
		return err
	}
	for row, section := range rep.Sections() {
		if err := f.SetCellValue(name, fmt.Sprintf("A%d", row+2), section.Title); err != nil {
			return err
		}
		if err := f.SetCellValue(name, fmt.Sprintf("B%d", row+2), section.Content); err != nil {
			return err
		}
	}
	return nil
}
