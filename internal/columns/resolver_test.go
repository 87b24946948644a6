package columns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	assert.Equal(t, "fecha_operacion", Slug("  Fecha Operación  "))
	assert.Equal(t, "n_operacion", Slug("N° Operación"))
	assert.Equal(t, "cuit", Slug("CUIT"))
	assert.Equal(t, "importe_total", Slug("Importe -- Total"))
	assert.Equal(t, "", Slug("   "))
}

func TestResolveBasic(t *testing.T) {
	headers := []string{"Fecha", "Referencia", "Nombre", "CUIT", "Detalle", "Importe"}
	m := Resolve(headers)

	assert.Equal(t, 0, m.Index(RoleDate))
	assert.Equal(t, 1, m.Index(RoleReference))
	assert.Equal(t, 2, m.Index(RoleName))
	assert.Equal(t, 3, m.Index(RoleTaxID))
	assert.Equal(t, 4, m.Index(RoleDetail))
	assert.Equal(t, 5, m.Index(RoleAmount))
	assert.Equal(t, -1, m.Index(RoleCredit))
	assert.Equal(t, -1, m.Index(RoleType))
}

func TestResolveCandidatePriorityWins(t *testing.T) {
	// "descripcion" appears before "concepto" in the detail candidate list,
	// so it wins even though "concepto" comes first in the input.
	m := Resolve([]string{"Concepto", "Descripción"})
	assert.Equal(t, 1, m.Index(RoleDetail))
}

func TestResolveAccentedAndNoisyHeaders(t *testing.T) {
	m := Resolve([]string{"Fecha Operación", "Nro. Operación", "Razón Social", "Crédito", "Débito"})
	assert.Equal(t, 0, m.Index(RoleDate))
	assert.Equal(t, 1, m.Index(RoleReference))
	assert.Equal(t, 2, m.Index(RoleName))
	assert.Equal(t, 3, m.Index(RoleCredit))
	assert.Equal(t, 4, m.Index(RoleDebit))
}

func TestDetailFallsBackToReference(t *testing.T) {
	m := Resolve([]string{"Fecha", "Memo", "Importe"})
	assert.Equal(t, 1, m.Index(RoleReference))
	assert.Equal(t, 1, m.Index(RoleDetail))
}

func TestDetailFallsBackToFirstColumn(t *testing.T) {
	m := Resolve([]string{"ColumnaX", "ColumnaY"})
	assert.Equal(t, 0, m.Index(RoleDetail))
}

func TestResolveNothing(t *testing.T) {
	m := Resolve(nil)
	assert.Equal(t, -1, m.Index(RoleDate))
	assert.Equal(t, -1, m.Index(RoleDetail))
}

func TestResolveDeterministic(t *testing.T) {
	headers := []string{"fecha", "fecha_operacion"}
	for i := 0; i < 50; i++ {
		assert.Equal(t, 0, Resolve(headers).Index(RoleDate))
	}
}
