package analytics

import (
	"strings"
	"time"

	"compras_xpto/internal/domain/entities"
)

// Filters is the request-scoped dashboard selection. Categories combine with AND,
// values inside a category combine with OR, and an empty category is no constraint.
// Zero Inicio/Fim leave the creation date unbounded on that side.
type Filters struct {
	Empresas     []string                    `json:"empresas,omitempty" yaml:"empresas,omitempty"`
	Setores      []string                    `json:"setores,omitempty" yaml:"setores,omitempty"`
	Status       []entities.RequisicaoStatus `json:"status,omitempty" yaml:"status,omitempty"`
	CentrosCusto []string                    `json:"centros_custo,omitempty" yaml:"centros_custo,omitempty"`
	Compradores  []string                    `json:"compradores,omitempty" yaml:"compradores,omitempty"`

	Inicio time.Time `json:"inicio,omitempty" yaml:"inicio,omitempty"`
	Fim    time.Time `json:"fim,omitempty" yaml:"fim,omitempty"`
}

// WithoutDates drops the creation-date bounds and keeps the categories.
func (f Filters) WithoutDates() Filters {
	f.Inicio, f.Fim = time.Time{}, time.Time{}
	return f
}

// ApplyFilters returns the requisitions matching f, preserving input order.
func ApplyFilters(reqs []entities.Requisicao, f Filters) []entities.Requisicao {
	empresas := toSet(f.Empresas)
	setores := toSet(f.Setores)
	centros := toSet(f.CentrosCusto)
	compradores := toSet(f.Compradores)
	status := make(map[entities.RequisicaoStatus]struct{}, len(f.Status))
	for _, s := range f.Status {
		status[s] = struct{}{}
	}

	out := make([]entities.Requisicao, 0, len(reqs))
	for _, r := range reqs {
		if !f.Inicio.IsZero() && r.CreatedAt.Before(f.Inicio) {
			continue
		}
		if !f.Fim.IsZero() && r.CreatedAt.After(f.Fim) {
			continue
		}
		if !matches(empresas, r.Empresa) || !matches(setores, r.Setor) {
			continue
		}
		if !matchesPtr(centros, r.CentroCusto) || !matchesPtr(compradores, r.CompradorNome) {
			continue
		}
		if len(status) > 0 {
			if _, ok := status[r.Status]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

func matches(set map[string]struct{}, value string) bool {
	if len(set) == 0 {
		return true
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	_, ok := set[value]
	return ok
}

func matchesPtr(set map[string]struct{}, value *string) bool {
	if len(set) == 0 {
		return true
	}
	if value == nil {
		return false
	}
	return matches(set, *value)
}
