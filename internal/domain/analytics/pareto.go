package analytics

import (
	"math"
	"sort"
	"strings"

	"compras_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// SemCentroCusto groups spend without a cost center.
const SemCentroCusto = "Sem centro de custo"

type ParetoItem struct {
	Categoria           string  `json:"categoria"`
	Gasto               float64 `json:"gasto"`
	Percentual          float64 `json:"percentual"`
	PercentualAcumulado float64 `json:"percentual_acumulado"`
}

// ParetoByCategory ranks cost centers by spend. The cumulative percentage never
// decreases and the last item is exactly 100.
func ParetoByCategory(reqs []entities.Requisicao) []ParetoItem {
	byCat := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, r := range reqs {
		v, ok := r.ValorPositivo()
		if !ok {
			continue
		}
		cat := SemCentroCusto
		if r.CentroCusto != nil && strings.TrimSpace(*r.CentroCusto) != "" {
			cat = strings.TrimSpace(*r.CentroCusto)
		}
		byCat[cat] = byCat[cat].Add(dec(v))
		total = total.Add(dec(v))
	}

	type entry struct {
		cat   string
		spend decimal.Decimal
	}
	entries := make([]entry, 0, len(byCat))
	for c, s := range byCat {
		entries = append(entries, entry{c, s})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].spend.Equal(entries[j].spend) {
			return entries[i].spend.GreaterThan(entries[j].spend)
		}
		return entries[i].cat < entries[j].cat
	})

	out := make([]ParetoItem, len(entries))
	cum := decimal.Zero
	for i, e := range entries {
		cum = cum.Add(e.spend)
		acc := percent(cum, total)
		if i == len(entries)-1 {
			acc = 100
		} else if i > 0 && acc < out[i-1].PercentualAcumulado {
			acc = out[i-1].PercentualAcumulado
		}
		out[i] = ParetoItem{
			Categoria:           e.cat,
			Gasto:               e.spend.InexactFloat64(),
			Percentual:          percent(e.spend, total),
			PercentualAcumulado: math.Min(acc, 100),
		}
	}
	return out
}
