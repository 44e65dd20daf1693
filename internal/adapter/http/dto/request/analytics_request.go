package request

import (
	"strings"
	"time"

	"compras_xpto/internal/domain/analytics"
	"compras_xpto/internal/domain/entities"
)

// FiltersQuery binds the dashboard and listing query string. Repeated keys select
// several values, e.g. ?empresa=ACME&empresa=Globex.
type FiltersQuery struct {
	Empresas     []string `form:"empresa"`
	Setores      []string `form:"setor"`
	Status       []string `form:"status"`
	CentrosCusto []string `form:"centro_custo"`
	Compradores  []string `form:"comprador"`
	Inicio       string   `form:"inicio"`
	Fim          string   `form:"fim"`
	Periodo      string   `form:"periodo"`
}

func (q FiltersQuery) ToFilters() (analytics.Filters, error) {
	f := analytics.Filters{
		Empresas:     q.Empresas,
		Setores:      q.Setores,
		CentrosCusto: q.CentrosCusto,
		Compradores:  q.Compradores,
	}
	for _, raw := range q.Status {
		s := entities.RequisicaoStatus(strings.ToLower(strings.TrimSpace(raw)))
		if s == "" {
			continue
		}
		if !s.Valid() {
			return analytics.Filters{}, ErrInvalidStatus
		}
		f.Status = append(f.Status, s)
	}

	var err error
	if strings.TrimSpace(q.Inicio) != "" {
		if f.Inicio, err = ParseDate(q.Inicio); err != nil {
			return analytics.Filters{}, err
		}
	}
	if strings.TrimSpace(q.Fim) != "" {
		if f.Fim, err = ParseDate(q.Fim); err != nil {
			return analytics.Filters{}, err
		}
		if len(strings.TrimSpace(q.Fim)) == len(time.DateOnly) {
			f.Fim = f.Fim.Add(24*time.Hour - time.Nanosecond)
		}
	}
	return f, nil
}

func (q FiltersQuery) Period() analytics.PeriodCode {
	return analytics.ParsePeriod(q.Periodo)
}
