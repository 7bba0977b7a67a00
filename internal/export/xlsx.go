package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"pulsar/internal/domain"
)

const sheetName = "Leaderboard"

// WriteXLSX writes the challenge leaderboard as an XLSX workbook with a
// single Leaderboard sheet: a title row, the header row, then one row per
// standing.
func WriteXLSX(w io.Writer, challenge *domain.Challenge, entries []domain.LeaderboardEntry) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	title := fmt.Sprintf("%s leaderboard", challenge.Title)
	if err := f.SetCellValue(sheetName, "A1", title); err != nil {
		return fmt.Errorf("write title: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for r := range entries {
		e := &entries[r]
		values := []interface{}{
			e.Rank,
			e.Title,
			e.ContentType,
			e.DisplayName,
			e.Votes,
			e.ValidationScore,
			e.SubmittedAt.Format(time.RFC3339),
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+3)
			if err != nil {
				return fmt.Errorf("row cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
