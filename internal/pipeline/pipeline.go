// Package pipeline runs one full classification pass: decode, resolve
// columns, normalize and classify rows, build the five output tables.
package pipeline

import (
	"ClasificadorBancario/internal/classify"
	"ClasificadorBancario/internal/columns"
	"ClasificadorBancario/internal/keywords"
	"ClasificadorBancario/internal/report"
	"ClasificadorBancario/internal/sheets"
	"ClasificadorBancario/internal/statement"
)

// Result is one completed run. Sheets are immutable once built.
type Result struct {
	RowCount int
	Roles    columns.RoleMap
	Sheets   [5]sheets.Sheet
}

// Run processes one uploaded statement with the given keyword snapshot.
// Only the decode step can fail; everything after is best-effort per row.
func Run(data []byte, filename string, cfg keywords.Config) (*Result, error) {
	table, err := statement.Decode(data, filename)
	if err != nil {
		return nil, err
	}
	roles := columns.Resolve(table.Headers)
	rows := classify.Rows(table, roles, cfg)
	return &Result{
		RowCount: len(rows),
		Roles:    roles,
		Sheets:   sheets.Build(rows),
	}, nil
}

// Excel serializes the run's five sheets into one workbook.
func (r *Result) Excel() ([]byte, error) {
	return report.Emit(r.Sheets)
}
