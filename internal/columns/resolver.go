// Package columns maps arbitrary statement headers to semantic roles.
package columns

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Role is the semantic meaning assigned to one input column.
type Role string

const (
	RoleDate      Role = "fecha"
	RoleReference Role = "referencia"
	RoleName      Role = "nombre"
	RoleTaxID     Role = "cuit"
	RoleDetail    Role = "detalle"
	RoleCredit    Role = "credito"
	RoleDebit     Role = "debito"
	RoleAmount    Role = "importe"
	RoleType      Role = "tipo"
)

// candidates holds, per role, the accepted header slugs in priority order.
// The first candidate that matches any header wins, so more specific names
// must come before generic ones.
var candidates = map[Role][]string{
	RoleDate: {"fecha", "fecha_operacion", "fecha_mov", "fecha_debito", "fecha_credito", "date", "posting_date"},
	RoleReference: {"referencia", "n_operacion", "nro_operacion", "numero_operacion", "n_referencia",
		"detalle", "descripcion", "concepto", "glosa", "referencia_bancaria", "ref", "memo"},
	RoleName: {"nombre", "nombre_pagador", "pagador", "cliente", "emisor", "beneficiario",
		"proveedor", "titular", "contraparte", "razon_social"},
	RoleTaxID:  {"cuit", "cuil", "dni", "tax_id", "doc", "documento", "id_fiscal"},
	RoleDetail: {"detalle", "descripcion", "concepto", "glosa", "referencia", "observaciones"},
	RoleCredit: {"credito", "creditos", "haber", "entrada", "ingreso", "acreditacion", "amount_in", "in"},
	RoleDebit:  {"debito", "debitos", "debe", "salida", "egreso", "extraccion", "amount_out", "out"},
	RoleAmount: {"importe", "monto", "importe_total", "importe_neto", "importe_bruto",
		"importe_movimiento", "monto_total", "amount", "transaction_amount"},
	RoleType: {"tipo", "tipo_movimiento", "operacion", "movimiento", "cr_db", "debe_haber"},
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug normalizes a header for matching: trim, strip accents, lower-case,
// collapse runs of non-alphanumerics to a single underscore.
func Slug(header string) string {
	s := strings.TrimSpace(header)
	if out, _, err := transform.String(deaccent, s); err == nil {
		s = out
	}
	s = strings.ToLower(s)
	s = nonAlnum.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// RoleMap maps each resolved role to the index of its header in the input.
// Unresolved roles are simply absent.
type RoleMap map[Role]int

// Index returns the header index for a role, or -1 when unresolved.
func (m RoleMap) Index(r Role) int {
	if i, ok := m[r]; ok {
		return i
	}
	return -1
}

// Resolve builds the role map for a header set. Resolution is a pure
// function of the headers: candidate priority breaks ties, not input order.
// The detail role falls back to the reference column and then to the first
// column, so it is present whenever at least one column exists.
func Resolve(headers []string) RoleMap {
	slugToIdx := make(map[string]int, len(headers))
	for i, h := range headers {
		s := Slug(h)
		if _, seen := slugToIdx[s]; !seen {
			slugToIdx[s] = i
		}
	}
	m := RoleMap{}
	for role, cands := range candidates {
		for _, c := range cands {
			if i, ok := slugToIdx[c]; ok {
				m[role] = i
				break
			}
		}
	}
	if _, ok := m[RoleDetail]; !ok {
		if i, ok := m[RoleReference]; ok {
			m[RoleDetail] = i
		} else if len(headers) > 0 {
			m[RoleDetail] = 0
		}
	}
	return m
}
