package gradebook

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Gradebook"

var exportHeader = []string{"Student", "Subject", "Assessment", "Kind", "Mark /20", "Semester", "Notes", "Recorded"}

// ExportXLSX writes every recorded mark to an xlsx workbook at path.
func (s *Service) ExportXLSX(ctx context.Context, path string) error {
	entries, err := s.repo.All(ctx)
	if err != nil {
		return fmt.Errorf("load gradebook: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}
	if err := f.SetColWidth(exportSheet, "A", "H", 18); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(exportSheet, cell, title); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(exportSheet, "A1", "H1", headerStyle); err != nil {
		return err
	}

	for i, e := range entries {
		row := i + 2
		values := []any{
			e.Student,
			e.SubjectID,
			e.Label,
			e.Kind,
			e.Mark,
			e.Semester,
			e.Notes,
			e.RecordedAt.Format("2006-01-02"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
