package usecase

import (
	"context"
	"errors"

	"compras_xpto/internal/domain/analytics"
	"compras_xpto/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// ErrAnalyticsDateBounds is returned when filters carry inicio/fim: the dashboard window
// is chosen by the period code alone.
var ErrAnalyticsDateBounds = errors.New("analytics window is set by periodo, inicio and fim are not accepted")

// IAnalyticsUseCase exposes the procurement dashboard.

type IAnalyticsUseCase interface {
	Compute(ctx context.Context, filters analytics.Filters, period analytics.PeriodCode) (analytics.Result, error)
}

type AnalyticsUseCase struct {
	repo  interfaces.IRequisicaoRepository
	clock interfaces.IClock
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(repo interfaces.IRequisicaoRepository, clock interfaces.IClock) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo, clock: clock}
}

// Compute loads the full collection and reduces it.
func (u *AnalyticsUseCase) Compute(ctx context.Context, filters analytics.Filters, period analytics.PeriodCode) (analytics.Result, error) {
	if !filters.Inicio.IsZero() || !filters.Fim.IsZero() {
		return analytics.Result{}, ErrAnalyticsDateBounds
	}
	all, err := u.repo.LoadAll(ctx)
	if err != nil {
		log.WithError(err).Error("[analytics][usecase] load failed")
		return analytics.Result{}, err
	}
	res := analytics.Compute(all, filters, period, u.clock.Now())
	log.WithFields(log.Fields{"periodo": period, "amostragem": res.Amostragem, "total": len(all)}).Debug("[analytics][usecase] computed")
	return res, nil
}
