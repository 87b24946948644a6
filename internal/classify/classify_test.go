package classify

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClasificadorBancario/internal/columns"
	"ClasificadorBancario/internal/keywords"
	"ClasificadorBancario/internal/statement"
)

func tableOf(headers []string, rows ...[]string) *statement.Table {
	t := &statement.Table{Headers: headers}
	for _, r := range rows {
		cells := make([]statement.Cell, len(headers))
		for j := range headers {
			if j < len(r) {
				cells[j] = statement.TextCell(r[j])
			}
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func classifyTable(t *statement.Table) []Row {
	return Rows(t, columns.Resolve(t.Headers), keywords.Defaults())
}

func TestAmountFromCreditDebit(t *testing.T) {
	tbl := tableOf(
		[]string{"Fecha", "Nombre", "CUIT", "Credito", "Debito"},
		[]string{"01/02/2024", "Acme SA", "30-1-1", "1.500,00", ""},
		[]string{"02/02/2024", "Proveedor SRL", "30-2-2", "", "200,00"},
	)
	rows := classifyTable(tbl)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("1500")))
	assert.Equal(t, DirIn, rows[0].Direction)
	assert.True(t, rows[1].Amount.Equal(decimal.RequireFromString("-200")))
	assert.Equal(t, DirOut, rows[1].Direction)
}

func TestAmountColumnFallback(t *testing.T) {
	tbl := tableOf(
		[]string{"Detalle", "Importe"},
		[]string{"algo", "-50,00"},
	)
	rows := classifyTable(tbl)
	assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("-50")))
	assert.Equal(t, DirOut, rows[0].Direction)
}

func TestNoNumericSignal(t *testing.T) {
	tbl := tableOf([]string{"Detalle"}, []string{"algo"})
	rows := classifyTable(tbl)
	assert.True(t, rows[0].Amount.IsZero())
	assert.Equal(t, DirZero, rows[0].Direction)
	assert.Equal(t, CatUnidentified, rows[0].Category)
}

func TestExplicitTypeBeatsSign(t *testing.T) {
	// Negative amount, but the movement type says deposit: the explicit
	// signal wins and the row is received.
	tbl := tableOf(
		[]string{"Nombre", "CUIT", "Importe", "Tipo"},
		[]string{"Acme SA", "30-1-1", "-100,00", "Deposito"},
	)
	rows := classifyTable(tbl)
	assert.Equal(t, DirIn, rows[0].Direction)
	assert.Equal(t, CatReceived, rows[0].Category)
}

func TestUnknownTypeDefersToSign(t *testing.T) {
	tbl := tableOf(
		[]string{"Nombre", "CUIT", "Importe", "Tipo"},
		[]string{"Acme SA", "30-1-1", "-100,00", "otro movimiento raro"},
	)
	rows := classifyTable(tbl)
	assert.Equal(t, DirOut, rows[0].Direction)
	assert.Equal(t, CatPaid, rows[0].Category)
}

func TestFeeBeatsTax(t *testing.T) {
	// Description matches both keyword sets; fees are checked first.
	tbl := tableOf(
		[]string{"Detalle", "Importe"},
		[]string{"Comision IVA debito", "-10,00"},
	)
	rows := classifyTable(tbl)
	assert.Equal(t, CatFee, rows[0].Category)
}

func TestTaxKeyword(t *testing.T) {
	tbl := tableOf(
		[]string{"Detalle", "Importe"},
		[]string{"Impuesto ley 25413", "-33,00"},
	)
	rows := classifyTable(tbl)
	assert.Equal(t, CatTax, rows[0].Category)
}

func TestEmptyCounterpartyForcing(t *testing.T) {
	// Direction in, amount 150, but no name and no tax id: not a usable
	// payment record.
	tbl := tableOf(
		[]string{"Nombre", "CUIT", "Detalle", "Importe"},
		[]string{"", "  ", "transferencia recibida", "150,00"},
	)
	rows := classifyTable(tbl)
	assert.Equal(t, DirIn, rows[0].Direction)
	assert.Equal(t, CatUnidentified, rows[0].Category)
}

func TestKeywordsBeatEmptyCounterparty(t *testing.T) {
	tbl := tableOf(
		[]string{"Nombre", "CUIT", "Detalle", "Importe"},
		[]string{"", "", "comision mantenimiento", "-50,00"},
	)
	rows := classifyTable(tbl)
	assert.Equal(t, CatFee, rows[0].Category)
}

func TestClassificationIsTotal(t *testing.T) {
	tbl := tableOf(
		[]string{"ColA", "ColB"},
		[]string{"", ""},
		[]string{"x", "y"},
	)
	rows := classifyTable(tbl)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, CatUnidentified, r.Category)
		assert.True(t, r.Amount.IsZero())
	}
}

func TestCustomKeywordConfig(t *testing.T) {
	tbl := tableOf(
		[]string{"Nombre", "CUIT", "Detalle", "Importe"},
		[]string{"Acme SA", "30-1-1", "cargo especial xyz", "-10,00"},
	)
	cfg := keywords.Config{Fee: []string{"nunca"}, Tax: []string{"xyz"}}
	rows := Rows(tbl, columns.Resolve(tbl.Headers), cfg)
	assert.Equal(t, CatTax, rows[0].Category)
}
