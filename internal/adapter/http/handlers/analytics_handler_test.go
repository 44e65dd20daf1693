package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"compras_xpto/internal/adapter/http/handlers/mocks"
	"compras_xpto/internal/domain/analytics"
	"compras_xpto/internal/usecase"
	"compras_xpto/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type staticLatest struct {
	res analytics.Result
	ok  bool
}

func (s staticLatest) Latest() (analytics.Result, bool) { return s.res, s.ok }

func TestAnalyticsHandler_Dashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/analytics", h.Dashboard)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics?inicio=ontem", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown period falls back to default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc, nil)

		uc.EXPECT().Compute(gomock.Any(), gomock.Any(), analytics.DefaultPeriod).Return(analytics.Result{Periodo: analytics.DefaultPeriod}, nil)

		r := gin.New()
		r.GET("/v1/analytics", h.Dashboard)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics?periodo=semestre&setor=TI", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["periodo"] != "30d" {
			t.Fatalf("expected 30d, got %v", body["periodo"])
		}
	})

	t.Run("explicit dates are refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc, nil)

		uc.EXPECT().Compute(gomock.Any(), gomock.Any(), analytics.Period30D).DoAndReturn(
			func(_ context.Context, f analytics.Filters, _ analytics.PeriodCode) (analytics.Result, error) {
				if f.Inicio.IsZero() || f.Fim.IsZero() {
					t.Fatalf("expected dates to reach the usecase, got %+v", f)
				}
				return analytics.Result{}, usecase.ErrAnalyticsDateBounds
			},
		)

		r := gin.New()
		r.GET("/v1/analytics", h.Dashboard)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics?periodo=30d&inicio=2024-01-01&fim=2024-01-31", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Code != "DATES_NOT_SUPPORTED" {
			t.Fatalf("expected DATES_NOT_SUPPORTED, got %q", body.Code)
		}
	})

	t.Run("load error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAnalyticsUseCase(ctrl)
		h := NewAnalyticsHandler(uc, nil)

		uc.EXPECT().Compute(gomock.Any(), gomock.Any(), analytics.Period7D).Return(analytics.Result{}, errors.New("db"))

		r := gin.New()
		r.GET("/v1/analytics", h.Dashboard)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics?periodo=7d", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestAnalyticsHandler_Latest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not ready", func(t *testing.T) {
		h := NewAnalyticsHandler(nil, staticLatest{})
		r := gin.New()
		r.GET("/v1/analytics/latest", h.Latest)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/analytics/latest", nil))
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("ready", func(t *testing.T) {
		generated := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
		h := NewAnalyticsHandler(nil, staticLatest{res: analytics.Result{Periodo: analytics.Period30D, GeradoEm: generated}, ok: true})
		r := gin.New()
		r.GET("/v1/analytics/latest", h.Latest)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/analytics/latest", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
