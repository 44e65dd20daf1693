package analytics

import (
	"sort"

	"compras_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// KPIs are the headline dashboard metrics. Percentages are 0..100 and every ratio
// with an empty denominator is reported as 0.
type KPIs struct {
	TotalRequisicoes      int                               `json:"total_requisicoes"`
	PorStatus             map[entities.RequisicaoStatus]int `json:"por_status"`
	TotalGasto            float64                           `json:"total_gasto"`
	GastoAnterior         float64                           `json:"gasto_anterior"`
	TicketMedio           float64                           `json:"ticket_medio"`
	PercentConcluidas     float64                           `json:"percent_concluidas"`
	EconomiaReal          float64                           `json:"economia_real"`
	EconomiaPercentual    float64                           `json:"economia_percentual"`
	TendenciaGasto        float64                           `json:"tendencia_gasto"`
	CostAvoidance         float64                           `json:"cost_avoidance"`
	MaverickSpend         float64                           `json:"maverick_spend"`
	SupplierConcentration float64                           `json:"supplier_concentration"`
	TempoMedioCicloDias   float64                           `json:"tempo_medio_ciclo_dias"`
}

// ComputeKPIs reduces the current set s, comparing spend against the previous set p.
func ComputeKPIs(s, p []entities.Requisicao) KPIs {
	k := KPIs{
		TotalRequisicoes: len(s),
		PorStatus:        make(map[entities.RequisicaoStatus]int),
	}

	var (
		total, orcadoComparavel, valorComparavel decimal.Decimal
		avoidance, maverick                      decimal.Decimal
		priced, concluidas                       int
		cicloDias                                float64
		ciclos                                   int
	)
	porFornecedor := make(map[string]decimal.Decimal)

	for _, r := range s {
		k.PorStatus[r.Status]++

		if r.Status == entities.StatusRecebido || r.Status == entities.StatusComprado {
			concluidas++
		}
		if orcado, ok := r.ValorOrcadoPositivo(); ok && (r.Status == entities.StatusRejeitado || r.Status == entities.StatusCancelado) {
			avoidance = avoidance.Add(dec(orcado))
		}
		if rec := r.DataRecebimento(); rec != nil && r.Status == entities.StatusRecebido {
			cicloDias += rec.Sub(r.CreatedAt).Hours() / 24
			ciclos++
		}

		valor, ok := r.ValorPositivo()
		if !ok {
			continue
		}
		v := dec(valor)
		total = total.Add(v)
		priced++

		if orcado, ok := r.ValorOrcadoPositivo(); ok {
			orcadoComparavel = orcadoComparavel.Add(dec(orcado))
			valorComparavel = valorComparavel.Add(v)
		}
		if isPurchased(r.Status) && r.AprovadoEm == nil {
			maverick = maverick.Add(v)
		}
		if f := r.Fornecedor(); f != "" {
			porFornecedor[f] = porFornecedor[f].Add(v)
		}
	}

	anterior := spend(p)
	economia := orcadoComparavel.Sub(valorComparavel)

	k.TotalGasto = total.InexactFloat64()
	k.GastoAnterior = anterior.InexactFloat64()
	k.TicketMedio = ratio(total, decimal.NewFromInt(int64(priced)))
	k.PercentConcluidas = percent(decimal.NewFromInt(int64(concluidas)), decimal.NewFromInt(int64(len(s))))
	k.EconomiaReal = economia.InexactFloat64()
	k.EconomiaPercentual = percent(economia, orcadoComparavel)
	k.TendenciaGasto = percent(total.Sub(anterior), anterior)
	k.CostAvoidance = avoidance.InexactFloat64()
	k.MaverickSpend = maverick.InexactFloat64()
	k.SupplierConcentration = percent(topN(porFornecedor, 3), total)
	k.TempoMedioCicloDias = safeDiv(cicloDias, float64(ciclos))
	return k
}

func isPurchased(s entities.RequisicaoStatus) bool {
	return s == entities.StatusComprado || s == entities.StatusEmEntrega || s == entities.StatusRecebido
}

func spend(reqs []entities.Requisicao) decimal.Decimal {
	total := decimal.Zero
	for _, r := range reqs {
		if v, ok := r.ValorPositivo(); ok {
			total = total.Add(dec(v))
		}
	}
	return total
}

func topN(values map[string]decimal.Decimal, n int) decimal.Decimal {
	list := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		list = append(list, v)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].GreaterThan(list[j]) })
	if len(list) > n {
		list = list[:n]
	}
	return decimal.Sum(decimal.Zero, list...)
}
