// Package spreadsheet reads student names from, and writes student lists to, .xlsx workbooks.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"escolaapi/internal/model"
)

// SheetName is the sheet written by WriteAlunos.
const SheetName = "Alunos"

// ErrNoSheets is returned for a workbook without any sheet.
var ErrNoSheets = errors.New("spreadsheet does not contain any sheets")

// ReadNames returns the names in column A of the first sheet.
// The first row is a header and is skipped, as are rows whose name is blank.
func ReadNames(r io.Reader) (names []string, skipped int, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, 0, ErrNoSheets
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, 0, fmt.Errorf("read rows from sheet %s: %w", sheet, err)
	}
	if len(rows) <= 1 {
		return []string{}, 0, nil
	}

	cells := lo.Map(rows[1:], func(row []string, _ int) string {
		if len(row) == 0 {
			return ""
		}
		return strings.TrimSpace(row[0])
	})
	names = lo.Compact(cells)
	return names, len(cells) - len(names), nil
}

// WriteAlunos writes alunos to w as a workbook with an "ID, Nome" header row.
func WriteAlunos(w io.Writer, alunos []model.Aluno) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, "A1", &[]any{"ID", "Nome"}); err != nil {
		return err
	}
	for i, a := range alunos {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &[]any{a.ID, a.Nome}); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write spreadsheet: %w", err)
	}
	return nil
}
