// Package sheets partitions classified rows into the five fixed-shape
// output tables of the report.
package sheets

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"ClasificadorBancario/internal/classify"
)

// Sheet output names, in workbook order.
const (
	NameReceived     = "1 - Pagos recibidos"
	NamePaid         = "2 - Pagos realizados"
	NameFees         = "3 - Comisiones bancarias"
	NameTaxes        = "4 - Impuestos y IVA"
	NameUnidentified = "5 - No identificados"
)

// UnidentifiedDetail replaces the detail text on the unidentified sheet.
const UnidentifiedDetail = "Sin Identificacion"

// Row is one projected output row. Date is null when HasDate is false and
// renders as an empty cell.
type Row struct {
	Date      time.Time
	HasDate   bool
	Reference string
	Name      string
	TaxID     string
	Detail    string
	Amount    decimal.Decimal
}

// Sheet is one ordered output table with its final column headers.
// HasParties selects the received/paid shape (name + tax id) over the
// fee/tax/unidentified shape (detail).
type Sheet struct {
	Name       string
	Headers    []string
	HasParties bool
	Rows       []Row
}

func received() Sheet {
	return Sheet{
		Name:       NameReceived,
		Headers:    []string{"fecha_de_recepcion", "referencia", "nombre_del_pagador", "cuit_del_pagador", "importe_recibido"},
		HasParties: true,
	}
}

func paid() Sheet {
	return Sheet{
		Name:       NamePaid,
		Headers:    []string{"fecha_de_pago", "referencia", "nombre_del_proveedor", "cuit_del_proveedor", "importe_pagado"},
		HasParties: true,
	}
}

func debitShaped(name string) Sheet {
	return Sheet{
		Name:    name,
		Headers: []string{"fecha_del_debito", "referencia", "detalle", "importe_debitado"},
	}
}

// Build partitions the classified rows into the five sheets. The partition
// is total and disjoint: row counts across the sheets always sum to the
// input count. Each sheet is sorted by (date asc, reference asc), null
// dates last, ties keeping their input order.
func Build(rows []classify.Row) [5]Sheet {
	out := [5]Sheet{
		received(),
		paid(),
		debitShaped(NameFees),
		debitShaped(NameTaxes),
		debitShaped(NameUnidentified),
	}
	for _, r := range rows {
		pr := Row{
			Date:      r.Date,
			HasDate:   r.HasDate,
			Reference: r.Reference,
			Name:      r.Name,
			TaxID:     r.TaxID,
			Detail:    r.Detail,
			Amount:    r.Amount,
		}
		var idx int
		switch r.Category {
		case classify.CatReceived:
			idx = 0
		case classify.CatPaid:
			idx = 1
		case classify.CatFee:
			idx = 2
		case classify.CatTax:
			idx = 3
		default:
			pr.Detail = UnidentifiedDetail
			idx = 4
		}
		out[idx].Rows = append(out[idx].Rows, pr)
	}
	for i := range out {
		sortRows(out[i].Rows)
	}
	return out
}

func sortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.HasDate != b.HasDate {
			return a.HasDate
		}
		if a.HasDate && !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.Reference < b.Reference
	})
}
