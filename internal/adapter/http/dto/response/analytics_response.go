package response

import "compras_xpto/internal/domain/analytics"

var periodLabels = map[analytics.PeriodCode]string{
	analytics.Period7D:  "Últimos 7 dias",
	analytics.Period30D: "Últimos 30 dias",
	analytics.PeriodMes: "Mês atual",
	analytics.Period3M:  "Últimos 3 meses",
	analytics.Period6M:  "Últimos 6 meses",
	analytics.Period1Y:  "Último ano",
	analytics.PeriodAll: "Todo o período",
}

// AnalyticsResponse is the dashboard payload. Result fields are inlined.
type AnalyticsResponse struct {
	analytics.Result
	PeriodoLabel string `json:"periodo_label"`
}

func FromAnalytics(res analytics.Result) AnalyticsResponse {
	label, ok := periodLabels[res.Periodo]
	if !ok {
		label = string(res.Periodo)
	}
	if res.Suppliers == nil {
		res.Suppliers = []analytics.SupplierScore{}
	}
	if res.Pareto == nil {
		res.Pareto = []analytics.ParetoItem{}
	}
	return AnalyticsResponse{Result: res, PeriodoLabel: label}
}
