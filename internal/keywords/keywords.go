// Package keywords holds the process-wide keyword sets used to spot bank
// fees and taxes in transaction descriptions. The sets are configuration,
// not row data: a classification run captures one immutable snapshot and a
// concurrent update is never observed mid-run.
package keywords

import (
	"strings"
	"sync/atomic"
)

// Config is one immutable snapshot of both keyword sets. Entries are
// lower-cased substrings matched against lower-cased descriptions.
type Config struct {
	Fee []string
	Tax []string
}

// Defaults returns the Spanish / Latin-American banking vocabulary the
// classifier starts with.
func Defaults() Config {
	return Config{
		Fee: []string{
			"comision", "comisión", "gasto de mantenimiento", "cargo", "tarifa",
			"servicio bancario", "mantenimiento", "seguro de cuenta",
		},
		Tax: []string{
			"impuesto", "iva", "i.v.a", "retencion", "retención", "perc", "percepcion",
			"impuesto debitos y creditos", "impuesto a los debitos", "impuesto al cheque",
			"ley 25413", "idc",
		},
	}
}

// ParseList splits a comma-separated keyword list, trimming and
// lower-casing each entry and discarding empty ones.
func ParseList(s string) []string {
	var out []string
	for _, k := range strings.Split(s, ",") {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}

// Store is a process-wide keyword configuration with atomic snapshot
// semantics.
type Store struct {
	cfg atomic.Pointer[Config]
}

func NewStore() *Store {
	s := &Store{}
	def := Defaults()
	s.cfg.Store(&def)
	return s
}

// Snapshot returns the current configuration. The returned value must not
// be mutated; Update installs a fresh copy instead.
func (s *Store) Snapshot() Config {
	return *s.cfg.Load()
}

// Update replaces the process-wide configuration. Runs that already took a
// snapshot keep classifying with the old sets.
func (s *Store) Update(cfg Config) {
	c := Config{
		Fee: append([]string(nil), cfg.Fee...),
		Tax: append([]string(nil), cfg.Tax...),
	}
	s.cfg.Store(&c)
}
