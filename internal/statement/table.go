package statement

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CellKind narrows a raw cell as early as possible so later stages never
// re-guess what the decoder already knew.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellDate
)

// Cell is a raw statement cell. Text always carries the displayed value;
// Number and Time are only meaningful for CellNumber / CellDate kinds.
type Cell struct {
	Kind   CellKind
	Text   string
	Number decimal.Decimal
	Time   time.Time
}

func TextCell(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Cell{Kind: CellEmpty}
	}
	return Cell{Kind: CellText, Text: s}
}

func NumberCell(raw string, d decimal.Decimal) Cell {
	return Cell{Kind: CellNumber, Text: raw, Number: d}
}

func DateCell(raw string, t time.Time) Cell {
	return Cell{Kind: CellDate, Text: raw, Time: t}
}

// Table is the first sheet (or whole delimited file) of an upload:
// one header row plus data rows, every row padded to len(Headers).
type Table struct {
	Headers []string
	Rows    [][]Cell
}
