// Package normalize parses locale-ambiguous date and number strings from
// bank statement exports into canonical values. Everything here is
// best-effort: a value that cannot be parsed becomes a null date or a zero
// amount, never an error.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"ClasificadorBancario/internal/statement"
)

// Day-first layouts must come before month-first ones so 31/01/2024 and
// 05/03/2024 both resolve as dd/mm.
var dateLayouts = []string{
	"2/1/2006",
	"02/01/2006",
	"2006-01-02",
	"02-01-2006",
	"2-1-2006",
	"01/02/2006",
	"1/2/2006",
	"02/01/2006 15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate resolves a raw cell to a calendar date. Date-typed cells pass
// through; text runs the layout list in order, then an Excel serial-number
// fallback. The second return is false for a null date.
func ParseDate(c statement.Cell) (time.Time, bool) {
	switch c.Kind {
	case statement.CellDate:
		return c.Time, true
	case statement.CellEmpty:
		return time.Time{}, false
	case statement.CellNumber:
		if t, err := excelize.ExcelDateToTime(c.Number.InexactFloat64(), false); err == nil {
			return t, true
		}
		return time.Time{}, false
	}
	s := strings.TrimSpace(c.Text)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 59 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// groupedInteger matches values like "1,234,567": comma-grouped thousands
// with no decimal point.
var groupedInteger = regexp.MustCompile(`\d+,\d{3}`)

// ParseNumber resolves a raw cell to a signed decimal amount. Number-typed
// cells pass through untouched. Text disambiguates "1.234,56" (es_AR) from
// "1,234.56" (en_US) by the position of the separators; when only one kind
// of separator is present, the Latin-American convention wins.
func ParseNumber(c statement.Cell) decimal.Decimal {
	switch c.Kind {
	case statement.CellNumber:
		return c.Number
	case statement.CellEmpty, statement.CellDate:
		return decimal.Zero
	}
	s := strings.ReplaceAll(strings.TrimSpace(c.Text), " ", "")
	if s == "" {
		return decimal.Zero
	}
	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case groupedInteger.MatchString(s) && !hasDot:
		s = strings.ReplaceAll(s, ",", "")
	case hasDot && hasComma:
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	default:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return d
	}
	return coerceNumber(s)
}

// coerceNumber is the last-resort pass: drop every rune that cannot be part
// of a number and try again.
func coerceNumber(s string) decimal.Decimal {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return decimal.Zero
	}
	if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return decimal.NewFromFloat(f)
	}
	return decimal.Zero
}

// Text renders a raw cell back to a trimmed string for reference, name and
// detail fields.
func Text(c statement.Cell) string {
	return strings.TrimSpace(c.Text)
}
