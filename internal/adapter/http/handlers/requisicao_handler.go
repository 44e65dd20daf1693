package handlers

import (
	"errors"
	"net/http"

	request "compras_xpto/internal/adapter/http/dto/request"
	response "compras_xpto/internal/adapter/http/dto/response"
	"compras_xpto/internal/adapter/http/middleware"
	"compras_xpto/internal/domain/lifecycle"
	"compras_xpto/internal/usecase"
	"compras_xpto/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var (
	errInvalidRequisicaoPayload = pkg.NewDomainErrorSimple("INVALID_REQUISICAO_INPUT", "Invalid requisicao payload", http.StatusBadRequest)
	errInvalidFilters           = pkg.NewDomainErrorSimple("INVALID_FILTERS", "Invalid filters", http.StatusBadRequest)
)

// RequisicaoHandler handles HTTP requests for purchase requisitions.

type RequisicaoHandler struct {
	usecase usecase.IRequisicaoUseCase
}

func NewRequisicaoHandler(uc usecase.IRequisicaoUseCase) *RequisicaoHandler {
	return &RequisicaoHandler{usecase: uc}
}

func (h *RequisicaoHandler) Create(c *gin.Context) {
	var payload request.CreateRequisicaoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequisicaoPayload.HTTPStatus, errInvalidRequisicaoPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromRequisicao(created))
}

func (h *RequisicaoHandler) List(c *gin.Context) {
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

	items, err := h.usecase.List(c.Request.Context(), filters)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequisicoes(items))
}

func (h *RequisicaoHandler) GetByID(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequisicao(r))
}

// Transition is the staff move along the status graph: analysis, approval, rejection,
// quoting, purchase and delivery.
func (h *RequisicaoHandler) Transition(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequisicaoPayload.HTTPStatus, errInvalidRequisicaoPayload.ToHTTPError())
		return
	}
	target, err := payload.ResolveStatus()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown status", http.StatusBadRequest).ToHTTPError())
		return
	}

	actor := middleware.ActorFrom(c)
	updated, err := h.usecase.Transition(c.Request.Context(), c.Param("id"), target, actor.ID, payload.Motivo)
	if err != nil {
		log.WithFields(log.Fields{"requisicao_id": c.Param("id"), "target": target, "actor": actor.ID}).WithError(err).Info("[requisicao][handler] transition failed")
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequisicao(updated))
}

func (h *RequisicaoHandler) Cancel(c *gin.Context) {
	updated, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), middleware.ActorFrom(c).ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequisicao(updated))
}

func (h *RequisicaoHandler) ConfirmReceipt(c *gin.Context) {
	updated, err := h.usecase.ConfirmReceipt(c.Request.Context(), c.Param("id"), middleware.ActorFrom(c).ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequisicao(updated))
}

func (h *RequisicaoHandler) UpdateValor(c *gin.Context) {
	var payload request.UpdateValorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequisicaoPayload.HTTPStatus, errInvalidRequisicaoPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateValor(c.Request.Context(), c.Param("id"), payload.Valor, middleware.ActorFrom(c).ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequisicao(updated))
}

func (h *RequisicaoHandler) UpdateCompra(c *gin.Context) {
	var payload request.UpdateCompraRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequisicaoPayload.HTTPStatus, errInvalidRequisicaoPayload.ToHTTPError())
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidRequisicaoPayload.HTTPStatus, errInvalidRequisicaoPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateCompra(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequisicao(updated))
}

func (h *RequisicaoHandler) ListValorHistorico(c *gin.Context) {
	items, err := h.usecase.ListValorHistorico(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromValorHistorico(items))
}

func (h *RequisicaoHandler) GetSLA(c *gin.Context) {
	r, info, err := h.usecase.EvaluateSLA(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSLA(r, info))
}

func (h *RequisicaoHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeError(c *gin.Context, err error) {
	appErr := mapRequisicaoError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.WithField("path", c.FullPath()).WithError(err).Error("[requisicao][handler] request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapRequisicaoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequisicaoID), errors.Is(err, usecase.ErrInvalidRequisicaoInput),
		errors.Is(err, usecase.ErrInvalidActor), errors.Is(err, usecase.ErrInvalidValor):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, lifecycle.ErrMissingReason):
		return pkg.NewDomainErrorSimple("MISSING_REASON", "A rejection reason is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequisicaoNotFound):
		return pkg.NewDomainErrorSimple("REQUISICAO_NOT_FOUND", "Requisicao not found", http.StatusNotFound)
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Status transition not allowed", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrInvalidState):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Requisicao is not awaiting receipt", http.StatusConflict)
	case errors.Is(err, usecase.ErrValorNotEditable):
		return pkg.NewDomainErrorSimple("VALOR_NOT_EDITABLE", "Valor cannot be changed in the current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrRequisicaoClosed):
		return pkg.NewDomainErrorSimple("REQUISICAO_CLOSED", "Requisicao is closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrAnalyticsDateBounds):
		return pkg.NewDomainErrorSimple("DATES_NOT_SUPPORTED", "Use periodo to choose the analytics window", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequisicaoConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Requisicao was changed by another request, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrDeleteNotAllowed):
		return pkg.NewDomainErrorSimple("DELETE_NOT_ALLOWED", "Only cancelled requisicoes can be deleted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
