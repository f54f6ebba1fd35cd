package service

import (
	"context"
	"fmt"

	"vaulting/repository"
	"vaulting/scoring"

	"github.com/xuri/excelize/v2"
)

var exportHeader = []interface{}{"Rank", "Vaulters", "Club", "Horse", "Lunger", "First", "Second", "Total"}

// ExportTotal writes the total ranking of a result group and the rounds it is
// built from into an XLSX workbook.
func (s *ResultService) ExportTotal(ctx context.Context, group *repository.ResultGroup) ([]byte, error) {
	total, err := s.TotalLevel(ctx, group)
	if err != nil {
		return nil, err
	}
	sheets := []*ResultList{total}
	template := group.CalcTemplate
	if template.Round1FirstP+template.Round1SecondP != 0 {
		round1, err := s.SecondLevel(ctx, group, Round1)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, round1)
	}
	if template.Round2FirstP != 0 {
		round2, err := s.SecondLevel(ctx, group, Round2)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, round2)
	}

	f := excelize.NewFile()
	defer f.Close()
	for i, list := range sheets {
		name := list.Title
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
		if err := writeResultSheet(f, name, list.Results); err != nil {
			return nil, fmt.Errorf("failed to write sheet %s: %w", name, err)
		}
	}
	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeResultSheet(f *excelize.File, sheet string, results []*scoring.Result) error {
	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return err
	}
	for i, result := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{result.Rank, "", "", "", "", scoreCell(result.FirstTotalScore), scoreCell(result.SecondTotalScore), scoring.FormatScore(result.TotalScore)}
		if entry := result.Entry; entry != nil {
			row[1] = entry.DisplayName()
			row[2] = entry.Club
			if entry.Horse != nil {
				row[3] = entry.Horse.Name
			}
			if entry.Lunger != nil {
				row[4] = entry.Lunger.Name
			}
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func scoreCell(score *float64) string {
	if score == nil {
		return ""
	}
	return scoring.FormatScore(*score)
}
