package analytics

import (
	"math"
	"time"

	"compras_xpto/internal/domain/entities"
)

const (
	historyMonths    = 6
	projectionMonths = 3
	anomalyThreshold = 1.5
)

type Trend string

const (
	TrendUp     Trend = "alta"
	TrendDown   Trend = "queda"
	TrendStable Trend = "estavel"
)

// MonthPoint is one month of the spend series.
type MonthPoint struct {
	Mes              string    `json:"mes"`
	Inicio           time.Time `json:"inicio"`
	Gasto            float64   `json:"gasto"`
	Anomalia         bool      `json:"anomalia"`
	DesvioPercentual float64   `json:"desvio_percentual,omitempty"`
}

// Forecast is the trailing six-month spend series, its linear fit and the next three
// projected months.
type Forecast struct {
	Historico    []MonthPoint `json:"historico"`
	Projecao     []MonthPoint `json:"projecao"`
	Intercepto   float64      `json:"intercepto"`
	Inclinacao   float64      `json:"inclinacao"`
	Media        float64      `json:"media"`
	DesvioPadrao float64      `json:"desvio_padrao"`
	Tendencia    Trend        `json:"tendencia"`
}

// ComputeForecast buckets positive spend by creation month for the six calendar months
// ending with the month of now.
func ComputeForecast(reqs []entities.Requisicao, now time.Time) Forecast {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	origin := first.AddDate(0, -(historyMonths - 1), 0)

	series := make([]float64, historyMonths)
	for _, r := range reqs {
		v, ok := r.ValorPositivo()
		if !ok {
			continue
		}
		idx := monthIndex(origin, r.CreatedAt.In(now.Location()))
		if idx < 0 || idx >= historyMonths {
			continue
		}
		series[idx] += v
	}

	a, b := FitLinear(series)
	mean, sd := meanStdDev(series)
	anomalies := DetectAnomalies(series)

	f := Forecast{
		Historico:    make([]MonthPoint, historyMonths),
		Projecao:     make([]MonthPoint, projectionMonths),
		Intercepto:   a,
		Inclinacao:   b,
		Media:        mean,
		DesvioPadrao: sd,
		Tendencia:    trendOf(b),
	}
	for i, v := range series {
		start := origin.AddDate(0, i, 0)
		f.Historico[i] = MonthPoint{Mes: start.Format("2006-01"), Inicio: start, Gasto: v}
		if dev, ok := anomalies[i]; ok {
			f.Historico[i].Anomalia = true
			f.Historico[i].DesvioPercentual = dev
		}
	}
	for j := 0; j < projectionMonths; j++ {
		i := historyMonths + j
		start := origin.AddDate(0, i, 0)
		f.Projecao[j] = MonthPoint{Mes: start.Format("2006-01"), Inicio: start, Gasto: math.Max(0, a+b*float64(i))}
	}
	return f
}

// FitLinear fits y = a + b*i over i = 0..len(ys)-1 by ordinary least squares.
func FitLinear(ys []float64) (a, b float64) {
	n := float64(len(ys))
	if n == 0 {
		return 0, 0
	}
	xMean := (n - 1) / 2
	yMean, _ := meanStdDev(ys)

	var num, den float64
	for i, y := range ys {
		dx := float64(i) - xMean
		num += dx * (y - yMean)
		den += dx * dx
	}
	b = safeDiv(num, den)
	return yMean - b*xMean, b
}

// DetectAnomalies returns, by index, the signed deviation percentage from the mean of
// every positive point further than 1.5 standard deviations from it.
func DetectAnomalies(ys []float64) map[int]float64 {
	out := make(map[int]float64)
	mean, sd := meanStdDev(ys)
	if sd == 0 {
		return out
	}
	for i, y := range ys {
		if y > 0 && math.Abs(y-mean) > anomalyThreshold*sd {
			out[i] = safeDiv(y-mean, mean) * 100
		}
	}
	return out
}

// meanStdDev returns the mean and population standard deviation.
func meanStdDev(ys []float64) (mean, sd float64) {
	if len(ys) == 0 {
		return 0, 0
	}
	for _, y := range ys {
		mean += y
	}
	mean /= float64(len(ys))
	var sq float64
	for _, y := range ys {
		sq += (y - mean) * (y - mean)
	}
	return mean, math.Sqrt(sq / float64(len(ys)))
}

func monthIndex(origin, t time.Time) int {
	return (t.Year()-origin.Year())*12 + int(t.Month()) - int(origin.Month())
}

func trendOf(slope float64) Trend {
	switch {
	case slope > 0:
		return TrendUp
	case slope < 0:
		return TrendDown
	default:
		return TrendStable
	}
}
