package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"compras_xpto/internal/domain/analytics"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// AnalyticsRefresher recomputes one dashboard selection on a fixed interval and keeps
// the newest result. Overlapping refreshes share a single computation, and a result
// generated before the one already published is dropped.
type AnalyticsRefresher struct {
	uc       IAnalyticsUseCase
	filters  analytics.Filters
	period   analytics.PeriodCode
	interval time.Duration

	group  singleflight.Group
	latest atomic.Pointer[analytics.Result]
}

func NewAnalyticsRefresher(uc IAnalyticsUseCase, filters analytics.Filters, period analytics.PeriodCode, interval time.Duration) *AnalyticsRefresher {
	return &AnalyticsRefresher{uc: uc, filters: filters, period: period, interval: interval}
}

// Run refreshes immediately and then on every tick until ctx is done.
func (r *AnalyticsRefresher) Run(ctx context.Context) {
	if _, err := r.Refresh(ctx); err != nil {
		log.WithError(err).Warn("[analytics][refresher] initial refresh failed")
	}
	if r.interval <= 0 {
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.Refresh(ctx); err != nil {
				log.WithError(err).Warn("[analytics][refresher] refresh failed")
			}
		}
	}
}

// Refresh computes a new result, or joins the computation already in flight.
func (r *AnalyticsRefresher) Refresh(ctx context.Context) (analytics.Result, error) {
	v, err, shared := r.group.Do("refresh", func() (interface{}, error) {
		res, err := r.uc.Compute(ctx, r.filters, r.period)
		if err != nil {
			return analytics.Result{}, err
		}
		if !r.Publish(res) {
			log.WithField("gerado_em", res.GeradoEm).Debug("[analytics][refresher] stale result discarded")
		}
		return res, nil
	})
	if err != nil {
		return analytics.Result{}, err
	}
	if shared {
		log.Debug("[analytics][refresher] joined in-flight refresh")
	}
	return v.(analytics.Result), nil
}

// Publish stores res unless a newer result is already published. It reports whether
// res became the latest.
func (r *AnalyticsRefresher) Publish(res analytics.Result) bool {
	for {
		cur := r.latest.Load()
		if cur != nil && cur.GeradoEm.After(res.GeradoEm) {
			return false
		}
		if r.latest.CompareAndSwap(cur, &res) {
			return true
		}
	}
}

// Latest returns the newest published result.
func (r *AnalyticsRefresher) Latest() (analytics.Result, bool) {
	cur := r.latest.Load()
	if cur == nil {
		return analytics.Result{}, false
	}
	return *cur, true
}
