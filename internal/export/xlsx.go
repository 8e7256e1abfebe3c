package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"transformer-calc/internal/ratings"
)

// WriteTablesXLSX writes the given rating tables to one workbook, one sheet
// per table named after it. With no names every table is written.
func WriteTablesXLSX(path string, names ...ratings.TableName) error {
	if len(names) == 0 {
		names = ratings.Names()
	}

	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx style: %w", err)
	}

	for i, name := range names {
		info, ok := ratings.TableInfo(name)
		if !ok {
			return fmt.Errorf("unknown table %q", name)
		}
		sheet := string(name)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("xlsx sheet %s: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("xlsx sheet %s: %w", sheet, err)
		}

		if err := writeSheet(f, sheet, info, ratings.Category(name)); err != nil {
			return fmt.Errorf("xlsx sheet %s: %w", sheet, err)
		}
		last, _ := excelize.CoordinatesToCellName(len(info.Headers), 1)
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return fmt.Errorf("xlsx sheet %s: %w", sheet, err)
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, info ratings.Info, rows []ratings.Record) error {
	header := make([]interface{}, len(info.Headers))
	for i, h := range info.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		cells := r.Cells()
		values := make([]interface{}, len(cells))
		for j, c := range cells {
			values[j] = cellValue(c)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

// cellValue stores numeric cells as numbers so spreadsheets can compute on them.
func cellValue(s string) interface{} {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}
