// Package report serializes the five classified tables into a single xlsx
// workbook. It only produces bytes; writing them anywhere is the caller's
// problem.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"ClasificadorBancario/internal/config"
	"ClasificadorBancario/internal/sheets"
)

// Emit builds the workbook: one sheet per table in fixed order, bold frozen
// header, auto-sized columns, an autofilter over the written range, and
// dd/mm/yyyy / #,##0.00 number formats on the date and money columns.
func Emit(tables [5]sheets.Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	dateFmt := config.DateNumFmt
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateFmt})
	if err != nil {
		return nil, err
	}
	moneyFmt := config.MoneyNumFmt
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, err
	}

	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), t.Name); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(t.Name); err != nil {
				return nil, err
			}
		}
		if err := writeSheet(f, t, headerStyle, dateStyle, moneyStyle); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", t.Name, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, t sheets.Sheet, headerStyle, dateStyle, moneyStyle int) error {
	nCols := len(t.Headers)
	lastCol, err := excelize.ColumnNumberToName(nCols)
	if err != nil {
		return err
	}

	for j, h := range t.Headers {
		ref, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(t.Name, ref, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(t.Name, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	for i, row := range t.Rows {
		vals := rowValues(t, row)
		for j, v := range vals {
			ref, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if v == nil {
				continue
			}
			if err := f.SetCellValue(t.Name, ref, v); err != nil {
				return err
			}
		}
	}

	if len(t.Rows) > 0 {
		last := len(t.Rows) + 1
		// Date is always the first column, money the last.
		if err := f.SetCellStyle(t.Name, "A2", fmt.Sprintf("A%d", last), dateStyle); err != nil {
			return err
		}
		if err := f.SetCellStyle(t.Name, fmt.Sprintf("%s2", lastCol), fmt.Sprintf("%s%d", lastCol, last), moneyStyle); err != nil {
			return err
		}
	}

	for j := range t.Headers {
		col, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(t.Name, col, col, columnWidth(t, j)); err != nil {
			return err
		}
	}

	filterEnd := len(t.Rows) + 1
	if filterEnd < 2 {
		filterEnd = 2
	}
	if err := f.AutoFilter(t.Name, fmt.Sprintf("A1:%s%d", lastCol, filterEnd), nil); err != nil {
		return err
	}
	return f.SetPanes(t.Name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// rowValues projects a sheet row into cell values in header order. Null
// dates stay nil so the cell is left blank.
func rowValues(t sheets.Sheet, r sheets.Row) []interface{} {
	var date interface{}
	if r.HasDate {
		date = r.Date
	}
	amount := r.Amount.InexactFloat64()
	if t.HasParties {
		return []interface{}{date, r.Reference, r.Name, r.TaxID, amount}
	}
	return []interface{}{date, r.Reference, r.Detail, amount}
}

// columnWidth sizes a column from its header and the first 1000 values,
// plus padding, capped at the configured maximum.
func columnWidth(t sheets.Sheet, col int) float64 {
	max := len(t.Headers[col])
	sample := t.Rows
	if len(sample) > config.WidthSampleRows {
		sample = sample[:config.WidthSampleRows]
	}
	for _, r := range sample {
		if n := len(cellText(t, r, col)); n > max {
			max = n
		}
	}
	w := max + 2
	if w > config.MaxColWidth {
		w = config.MaxColWidth
	}
	return float64(w)
}

func cellText(t sheets.Sheet, r sheets.Row, col int) string {
	vals := rowValues(t, r)
	v := vals[col]
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return r.Amount.StringFixed(2)
	default:
		// Dates render as dd/mm/yyyy, ten characters.
		return "dd/mm/yyyy"
	}
}
