// Package analytics holds the procurement dashboard reducers. Every function is a pure
// reduction over the snapshot it receives: it never fails and never mutates its input,
// so callers may run it concurrently over different sets or periods.
package analytics

import (
	"time"

	"compras_xpto/internal/domain/entities"

	"golang.org/x/sync/errgroup"
)

// Result is the full dashboard payload for one filter/period selection.
type Result struct {
	Periodo    PeriodCode      `json:"periodo"`
	Janela     Window          `json:"janela"`
	Filtros    Filters         `json:"filtros"`
	KPIs       KPIs            `json:"kpis"`
	Forecast   Forecast        `json:"forecast"`
	Suppliers  []SupplierScore `json:"supplier_scores"`
	Pareto     []ParetoItem    `json:"pareto_by_category"`
	GeradoEm   time.Time       `json:"gerado_em"`
	Amostragem int             `json:"amostragem"`
}

// Compute narrows reqs with the categorical filters and the resolved period and runs
// every reducer. The monthly forecast ignores the period bounds: it always looks at the
// six calendar months ending with now.
func Compute(reqs []entities.Requisicao, filters Filters, period PeriodCode, now time.Time) Result {
	window := ResolvePeriod(period, now)
	base := filters.WithoutDates()

	current := ApplyFilters(reqs, window.Current(base))
	var previous []entities.Requisicao
	if window.HasPrevious() {
		previous = ApplyFilters(reqs, window.Previous(base))
	}

	res := Result{
		Periodo:    period,
		Janela:     window,
		Filtros:    base,
		GeradoEm:   now,
		Amostragem: len(current),
	}

	var g errgroup.Group
	g.Go(func() error {
		res.KPIs = ComputeKPIs(current, previous)
		return nil
	})
	g.Go(func() error {
		res.Forecast = ComputeForecast(ApplyFilters(reqs, base), now)
		return nil
	})
	g.Go(func() error {
		res.Suppliers = ScoreSuppliers(current, now)
		return nil
	})
	g.Go(func() error {
		res.Pareto = ParetoByCategory(current)
		return nil
	})
	_ = g.Wait()
	return res
}
