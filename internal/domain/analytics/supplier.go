package analytics

import (
	"math"
	"sort"
	"time"

	"compras_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type RiskTier string

const (
	RiskLow      RiskTier = "low"
	RiskMedium   RiskTier = "medium"
	RiskHigh     RiskTier = "high"
	RiskCritical RiskTier = "critical"
)

// neutralOTIF is used when a supplier has no delivered item with a forecast yet.
const neutralOTIF = 50.0

// SupplierScore is the performance and risk summary of one supplier.
type SupplierScore struct {
	Fornecedor       string   `json:"fornecedor"`
	TotalRequisicoes int      `json:"total_requisicoes"`
	Entregues        int      `json:"entregues"`
	Gasto            float64  `json:"gasto"`
	Dependencia      float64  `json:"dependencia"`
	OTIF             float64  `json:"otif"`
	LeadTimeMedio    float64  `json:"lead_time_medio"`
	VariacaoPreco    float64  `json:"variacao_preco"`
	TaxaAtraso       float64  `json:"taxa_atraso"`
	Score            float64  `json:"score"`
	Risco            RiskTier `json:"risco"`
}

type supplierAcc struct {
	name                 string
	total, delivered     int
	withForecast, onTime int
	lateActive           int
	leadDays             float64
	prices               []float64
	spend                decimal.Decimal
}

// ScoreSuppliers groups reqs by trimmed supplier name and scores each supplier.
// Requisitions without a supplier are ignored. The result is ordered by spend, highest first.
func ScoreSuppliers(reqs []entities.Requisicao, now time.Time) []SupplierScore {
	groups := make(map[string]*supplierAcc)
	total := decimal.Zero

	for _, r := range reqs {
		name := r.Fornecedor()
		if name == "" {
			continue
		}
		acc, ok := groups[name]
		if !ok {
			acc = &supplierAcc{name: name}
			groups[name] = acc
		}
		acc.total++

		if v, ok := r.ValorPositivo(); ok {
			acc.prices = append(acc.prices, v)
			acc.spend = acc.spend.Add(dec(v))
			total = total.Add(dec(v))
		}

		if rec := r.DataRecebimento(); r.Status == entities.StatusRecebido && rec != nil {
			acc.delivered++
			acc.leadDays += rec.Sub(r.CreatedAt).Hours() / 24
			if r.PrevisaoEntrega != nil {
				acc.withForecast++
				if !dayOf(*rec).After(dayOf(*r.PrevisaoEntrega)) {
					acc.onTime++
				}
			}
		}

		if !r.Status.IsTerminal() && r.PrevisaoEntrega != nil && r.PrevisaoEntrega.Before(now) {
			acc.lateActive++
		}
	}

	out := make([]SupplierScore, 0, len(groups))
	for _, acc := range groups {
		otif := neutralOTIF
		if acc.withForecast > 0 {
			otif = float64(acc.onTime) / float64(acc.withForecast) * 100
		}
		s := SupplierScore{
			Fornecedor:       acc.name,
			TotalRequisicoes: acc.total,
			Entregues:        acc.delivered,
			Gasto:            acc.spend.InexactFloat64(),
			Dependencia:      percent(acc.spend, total),
			OTIF:             otif,
			LeadTimeMedio:    safeDiv(acc.leadDays, float64(acc.delivered)),
			VariacaoPreco:    priceVariation(acc.prices),
			TaxaAtraso:       safeDiv(float64(acc.lateActive), float64(acc.total)) * 100,
		}
		s.Score = CompositeScore(s.OTIF, s.LeadTimeMedio, s.VariacaoPreco, s.TaxaAtraso)
		s.Risco = TierFor(s.Score)
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Gasto != out[j].Gasto {
			return out[i].Gasto > out[j].Gasto
		}
		return out[i].Fornecedor < out[j].Fornecedor
	})
	return out
}

// CompositeScore weighs OTIF at 40% and lead time, price variation and late rate at
// 20% each, clipped to [0, 100].
func CompositeScore(otif, leadTime, priceVar, lateRate float64) float64 {
	score := 0.4*otif +
		0.2*math.Max(0, 100-3*leadTime) +
		0.2*math.Max(0, 100-2*priceVar) +
		0.2*math.Max(0, 100-3*lateRate)
	return math.Min(100, math.Max(0, score))
}

func TierFor(score float64) RiskTier {
	switch {
	case score >= 75:
		return RiskLow
	case score >= 50:
		return RiskMedium
	case score >= 30:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// priceVariation is the coefficient of variation of the prices, in percent.
func priceVariation(prices []float64) float64 {
	if len(prices) < 2 {
		return 0
	}
	mean, sd := meanStdDev(prices)
	return safeDiv(sd, mean) * 100
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
