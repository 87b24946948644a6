package statement

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// FileExt returns the lower-cased extension of an uploaded filename.
func FileExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// Decode turns an uploaded statement file into a Table. Delimited text is
// sniffed for its separator; workbooks are read from their first sheet.
// Any failure here is fatal for the run.
func Decode(data []byte, filename string) (*Table, error) {
	switch FileExt(filename) {
	case ".csv", ".txt":
		return decodeCSV(data)
	case ".xlsx":
		return decodeXLSX(data)
	case ".xls":
		return decodeXLS(data)
	}
	// No usable extension: try xlsx container first, then fall back to text.
	if t, err := decodeXLSX(data); err == nil {
		return t, nil
	}
	return decodeCSV(data)
}

var csvDelimiters = []rune{',', ';', '\t', '|'}

// sniffDelimiter picks the candidate separator that occurs most often in the
// first non-empty line. A line with no separator at all is a one-column file.
func sniffDelimiter(data []byte) rune {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		best := ','
		bestCount := 0
		for _, d := range csvDelimiters {
			if n := strings.Count(line, string(d)); n > bestCount {
				best = d
				bestCount = n
			}
		}
		return best
	}
	return ','
}

func decodeCSV(data []byte) (*Table, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(data)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read delimited file: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("file has no rows")
	}
	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}
	t := &Table{Headers: headers}
	for _, rec := range records[1:] {
		row := make([]Cell, len(headers))
		for j := range headers {
			if j < len(rec) {
				row[j] = TextCell(rec[j])
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func decodeXLSX(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not open workbook: %w", err)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, errors.New("workbook has no rows")
	}
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}
	t := &Table{Headers: headers}
	for i, raw := range rows[1:] {
		row := make([]Cell, len(headers))
		for j := range headers {
			if j < len(raw) {
				row[j] = xlsxCell(f, sheet, i+2, j+1, raw[j])
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// xlsxCell narrows a cell using the workbook's own stored value. Numeric
// cells keep no type attribute in the sheet XML, so a cell counts as a true
// number when its raw stored value parses as one and no number format
// changed its rendering; those never go through the locale heuristics.
// Date-styled numerics keep their formatted text (the serial fallback in
// the normalizer covers the rest), and "d"-typed cells carry their ISO
// date directly.
func xlsxCell(f *excelize.File, sheet string, rowNum, colNum int, formatted string) Cell {
	colName, err := excelize.ColumnNumberToName(colNum)
	if err != nil {
		return TextCell(formatted)
	}
	ref := colName + fmt.Sprint(rowNum)
	raw, err := f.GetCellValue(sheet, ref, excelize.Options{RawCellValue: true})
	if err != nil {
		return TextCell(formatted)
	}
	raw = strings.TrimSpace(raw)
	if ct, err := f.GetCellType(sheet, ref); err == nil && ct == excelize.CellTypeDate {
		if serial, err := decimal.NewFromString(raw); err == nil {
			if tm, err := excelize.ExcelDateToTime(serial.InexactFloat64(), false); err == nil {
				return DateCell(formatted, tm)
			}
		}
		return TextCell(formatted)
	}
	if raw == strings.TrimSpace(formatted) {
		if d, err := decimal.NewFromString(raw); err == nil {
			return NumberCell(formatted, d)
		}
	}
	return TextCell(formatted)
}

func decodeXLS(data []byte) (*Table, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("could not open xls workbook: %w", err)
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("xls workbook has no sheets")
	}
	header := sheet.Row(0)
	if header == nil {
		return nil, errors.New("xls workbook has no header row")
	}
	var headers []string
	for j := 0; j <= header.LastCol(); j++ {
		headers = append(headers, strings.TrimSpace(header.Col(j)))
	}
	t := &Table{Headers: headers}
	for i := 1; i <= int(sheet.MaxRow); i++ {
		r := sheet.Row(i)
		row := make([]Cell, len(headers))
		if r != nil {
			for j := range headers {
				row[j] = TextCell(r.Col(j))
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
