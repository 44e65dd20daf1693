package routes

import (
	"compras_xpto/internal/adapter/http/handlers"
	"compras_xpto/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathRequisicoes = "/requisicoes"
	PathAnalytics   = "/analytics"
)

func addRequisicaoRoutes(rg *gin.RouterGroup, h *handlers.RequisicaoHandler) {
	requisicoes := rg.Group(PathRequisicoes, middleware.RequireActor())
	staff := middleware.RequireStaff()
	{
		// Solicitante e equipe de compras.
		requisicoes.POST("", h.Create)
		requisicoes.GET("/:id", h.GetByID)
		requisicoes.GET("/:id/sla", h.GetSLA)
		requisicoes.GET("/:id/valor-historico", h.ListValorHistorico)
		requisicoes.PATCH("/:id/recebimento", h.ConfirmReceipt)

		// Somente equipe de compras.
		requisicoes.GET("", staff, h.List)
		requisicoes.PATCH("/:id/status", staff, h.Transition)
		requisicoes.PATCH("/:id/cancelar", staff, h.Cancel)
		requisicoes.PATCH("/:id/valor", staff, h.UpdateValor)
		requisicoes.PATCH("/:id/compra", staff, h.UpdateCompra)
		requisicoes.DELETE("/:id", staff, h.Delete)
	}
}

func addAnalyticsRoutes(rg *gin.RouterGroup, h *handlers.AnalyticsHandler) {
	dashboard := rg.Group(PathAnalytics, middleware.RequireActor(), middleware.RequireStaff())
	{
		dashboard.GET("", h.Dashboard)
		dashboard.GET("/latest", h.Latest)
	}
}
