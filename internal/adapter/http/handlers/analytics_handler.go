package handlers

import (
	"net/http"

	request "compras_xpto/internal/adapter/http/dto/request"
	response "compras_xpto/internal/adapter/http/dto/response"
	"compras_xpto/internal/domain/analytics"
	"compras_xpto/internal/usecase"
	"compras_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errAnalyticsNotReady = pkg.NewDomainErrorSimple("ANALYTICS_NOT_READY", "Analytics not computed yet", http.StatusServiceUnavailable)

// LatestProvider serves the newest precomputed dashboard.
type LatestProvider interface {
	Latest() (analytics.Result, bool)
}

type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
	latest  LatestProvider
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase, latest LatestProvider) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc, latest: latest}
}

// Dashboard computes the analytics for the filters and period in the query string.
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	var query request.FiltersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidFilters.HTTPStatus, errInvalidFilters.ToHTTPError())
		return
	}
	filters, err := query.ToFilters()
	if err != nil {
		c.JSON(errInvalidFilters.HTTPStatus, errInvalidFilters.ToHTTPError())
		return
	}

	res, err := h.usecase.Compute(c.Request.Context(), filters, query.Period())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAnalytics(res))
}

// Latest returns the dashboard kept warm by the background refresher.
func (h *AnalyticsHandler) Latest(c *gin.Context) {
	var (
		res analytics.Result
		ok  bool
	)
	if h.latest != nil {
		res, ok = h.latest.Latest()
	}
	if !ok {
		c.JSON(errAnalyticsNotReady.HTTPStatus, errAnalyticsNotReady.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAnalytics(res))
}
