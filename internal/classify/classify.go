// Package classify computes signed amounts, cash-flow direction and the
// final category for every statement row.
package classify

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ClasificadorBancario/internal/columns"
	"ClasificadorBancario/internal/keywords"
	"ClasificadorBancario/internal/normalize"
	"ClasificadorBancario/internal/statement"
)

// Direction is the inferred cash-flow sign of a transaction.
type Direction int

const (
	DirZero Direction = iota
	DirIn
	DirOut
)

// Category is the sheet a row ends up on. Every row gets exactly one.
type Category int

const (
	CatReceived Category = iota
	CatPaid
	CatFee
	CatTax
	CatUnidentified
)

// Row is a transaction after role resolution, value normalization and
// direction computation.
type Row struct {
	Date      time.Time
	HasDate   bool
	Reference string
	Name      string
	TaxID     string
	Detail    string
	Amount    decimal.Decimal
	Direction Direction
	Category  Category
}

// Explicit movement-type vocabulary. An explicit in/out signal always wins
// over sign inference; type text matching neither group defers to the sign.
var (
	inTypeKeywords  = []string{"credito", "cr", "ingreso", "abono", "deposito", "dep", "acred"}
	outTypeKeywords = []string{"debito", "db", "egreso", "pago", "transferencia_saliente", "extraccion", "cheque"}
)

func containsAny(text string, kws []string) bool {
	for _, k := range kws {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func cellAt(row []statement.Cell, idx int) statement.Cell {
	if idx < 0 || idx >= len(row) {
		return statement.Cell{Kind: statement.CellEmpty}
	}
	return row[idx]
}

// resolveAmount applies the amount precedence: credit−debit when both
// columns resolved, else the amount column, else zero.
func resolveAmount(row []statement.Cell, roles columns.RoleMap) decimal.Decimal {
	credIdx, debIdx := roles.Index(columns.RoleCredit), roles.Index(columns.RoleDebit)
	if credIdx >= 0 && debIdx >= 0 {
		credit := normalize.ParseNumber(cellAt(row, credIdx))
		debit := normalize.ParseNumber(cellAt(row, debIdx))
		return credit.Sub(debit)
	}
	if amtIdx := roles.Index(columns.RoleAmount); amtIdx >= 0 {
		return normalize.ParseNumber(cellAt(row, amtIdx))
	}
	return decimal.Zero
}

// resolveDirection runs the two-stage mask: explicit type keywords first,
// then sign inference wherever the type said nothing.
func resolveDirection(row []statement.Cell, roles columns.RoleMap, amount decimal.Decimal) Direction {
	dir := DirZero
	if typeIdx := roles.Index(columns.RoleType); typeIdx >= 0 {
		t := strings.ToLower(normalize.Text(cellAt(row, typeIdx)))
		switch {
		case containsAny(t, inTypeKeywords):
			dir = DirIn
		case containsAny(t, outTypeKeywords):
			dir = DirOut
		}
	}
	if dir == DirZero {
		switch amount.Sign() {
		case 1:
			dir = DirIn
		case -1:
			dir = DirOut
		}
	}
	return dir
}

// categorize assigns the final category. Fee keywords are checked before
// tax keywords, so a description matching both lands on the fees sheet.
// Rows with direction but no identifiable counterparty are not usable
// payment records and fall to unidentified.
func categorize(r *Row, cfg keywords.Config) Category {
	detail := strings.ToLower(r.Detail)
	if containsAny(detail, cfg.Fee) {
		return CatFee
	}
	if containsAny(detail, cfg.Tax) {
		return CatTax
	}
	switch r.Direction {
	case DirIn, DirOut:
		if strings.TrimSpace(r.Name) == "" && strings.TrimSpace(r.TaxID) == "" {
			return CatUnidentified
		}
		if r.Direction == DirIn {
			return CatReceived
		}
		return CatPaid
	}
	return CatUnidentified
}

// Rows classifies every row of the table against the resolved roles and
// the given keyword snapshot. Classification is total: rows where all
// inference fails still come back, as unidentified.
func Rows(t *statement.Table, roles columns.RoleMap, cfg keywords.Config) []Row {
	out := make([]Row, 0, len(t.Rows))
	for _, raw := range t.Rows {
		r := Row{
			Reference: normalize.Text(cellAt(raw, roles.Index(columns.RoleReference))),
			Name:      normalize.Text(cellAt(raw, roles.Index(columns.RoleName))),
			TaxID:     normalize.Text(cellAt(raw, roles.Index(columns.RoleTaxID))),
			Detail:    normalize.Text(cellAt(raw, roles.Index(columns.RoleDetail))),
		}
		r.Date, r.HasDate = normalize.ParseDate(cellAt(raw, roles.Index(columns.RoleDate)))
		r.Amount = resolveAmount(raw, roles)
		r.Direction = resolveDirection(raw, roles, r.Amount)
		r.Category = categorize(&r, cfg)
		out = append(out, r)
	}
	return out
}
