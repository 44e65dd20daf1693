package analytics

import (
	"strings"
	"time"
)

// PeriodCode selects a reporting window relative to "now".
type PeriodCode string

const (
	Period7D  PeriodCode = "7d"
	Period30D PeriodCode = "30d"
	PeriodMes PeriodCode = "mes"
	Period3M  PeriodCode = "3m"
	Period6M  PeriodCode = "6m"
	Period1Y  PeriodCode = "1y"
	PeriodAll PeriodCode = "all"
)

// DefaultPeriod is used when the caller sends no or an unknown period code.
const DefaultPeriod = Period30D

// ParsePeriod normalizes a period code, falling back to the default dashboard period.
func ParsePeriod(raw string) PeriodCode {
	switch p := PeriodCode(strings.ToLower(strings.TrimSpace(raw))); p {
	case Period7D, Period30D, PeriodMes, Period3M, Period6M, Period1Y, PeriodAll:
		return p
	}
	return DefaultPeriod
}

// Window is the current reporting window [Start, now] plus the comparable window
// [PrevStart, PrevEnd) that ends where the current one begins.
type Window struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	PrevStart time.Time `json:"prev_start"`
	PrevEnd   time.Time `json:"prev_end"`
}

// HasPrevious is false for the unbounded "all" window.
func (w Window) HasPrevious() bool {
	return w.PrevEnd.After(w.PrevStart)
}

var epoch = time.Unix(0, 0).UTC()

// ResolvePeriod maps a period code to absolute dates.
func ResolvePeriod(code PeriodCode, now time.Time) Window {
	var start time.Time
	switch code {
	case Period7D:
		start = now.AddDate(0, 0, -7)
	case PeriodMes:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case Period3M:
		start = now.AddDate(0, -3, 0)
	case Period6M:
		start = now.AddDate(0, -6, 0)
	case Period1Y:
		start = now.AddDate(-1, 0, 0)
	case PeriodAll:
		return Window{Start: epoch, End: now, PrevStart: epoch, PrevEnd: epoch}
	default:
		start = now.AddDate(0, 0, -30)
	}

	length := now.Sub(start)
	return Window{
		Start:     start,
		End:       now,
		PrevStart: start.Add(-length),
		PrevEnd:   start,
	}
}

// Current returns f restricted to the current window.
func (w Window) Current(f Filters) Filters {
	f.Inicio, f.Fim = w.Start, w.End
	return f
}

// Previous returns f restricted to the previous window. The end bound is made exclusive
// so a requisition created exactly at Start is counted once.
func (w Window) Previous(f Filters) Filters {
	f.Inicio, f.Fim = w.PrevStart, w.PrevEnd.Add(-time.Nanosecond)
	return f
}
