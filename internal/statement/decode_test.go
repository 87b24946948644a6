package statement

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSniffDelimiter(t *testing.T) {
	assert.Equal(t, ';', int32(sniffDelimiter([]byte("fecha;detalle;importe\n"))))
	assert.Equal(t, ',', int32(sniffDelimiter([]byte("fecha,detalle,importe\n"))))
	assert.Equal(t, '\t', int32(sniffDelimiter([]byte("fecha\tdetalle\timporte\n"))))
	assert.Equal(t, '|', int32(sniffDelimiter([]byte("fecha|detalle|importe\n"))))
	// single column: default comma
	assert.Equal(t, ',', int32(sniffDelimiter([]byte("fecha\n1/1/2024\n"))))
}

func TestDecodeCSV(t *testing.T) {
	data := []byte("Fecha;Detalle;Importe\n01/02/2024;Pago factura;1.500,00\n;;\n")
	tbl, err := Decode(data, "movimientos.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"Fecha", "Detalle", "Importe"}, tbl.Headers)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, CellText, tbl.Rows[0][1].Kind)
	assert.Equal(t, "Pago factura", tbl.Rows[0][1].Text)
	assert.Equal(t, CellEmpty, tbl.Rows[1][0].Kind)
}

func TestDecodeCSVWithBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Fecha,Importe\n1/1/2024,10\n")...)
	tbl, err := Decode(data, "mov.csv")
	require.NoError(t, err)
	assert.Equal(t, "Fecha", tbl.Headers[0])
}

func TestDecodeCSVRaggedRows(t *testing.T) {
	data := []byte("a,b,c\n1,2\n1,2,3,4\n")
	tbl, err := Decode(data, "x.csv")
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 2)
	// short rows are padded, long rows truncated to the header width
	assert.Len(t, tbl.Rows[0], 3)
	assert.Equal(t, CellEmpty, tbl.Rows[0][2].Kind)
	assert.Len(t, tbl.Rows[1], 3)
}

func TestDecodeXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "Fecha"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "Detalle"))
	require.NoError(t, f.SetCellValue(sheet, "C1", "Importe"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "01/02/2024"))
	require.NoError(t, f.SetCellValue(sheet, "B2", "Pago factura"))
	require.NoError(t, f.SetCellValue(sheet, "C2", 1500.5))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	tbl, err := Decode(buf.Bytes(), "mov.xlsx")
	require.NoError(t, err)
	assert.Equal(t, []string{"Fecha", "Detalle", "Importe"}, tbl.Headers)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, CellText, tbl.Rows[0][1].Kind)

	c := tbl.Rows[0][2]
	require.Equal(t, CellNumber, c.Kind)
	assert.Equal(t, "1500.5", c.Number.String())
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte{0x50, 0x4B, 0x00, 0x00, 0x01}, "roto.xlsx")
	assert.Error(t, err)
}

func TestDecodeHeaderOnly(t *testing.T) {
	tbl, err := Decode([]byte("Fecha,Importe\n"), "solo.csv")
	require.NoError(t, err)
	assert.Len(t, tbl.Rows, 0)
}

func TestDecodeUnknownExtensionFallsBackToCSV(t *testing.T) {
	tbl, err := Decode([]byte("a,b\n1,2\n"), "upload.dat")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.Headers)
}
