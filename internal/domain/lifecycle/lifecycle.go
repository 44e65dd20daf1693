// Package lifecycle holds the requisition status machine.
//
// Every function takes the requisition by value and returns the updated copy, so a
// failed call never leaves the caller's snapshot half-written.
package lifecycle

import (
	"errors"
	"strings"
	"time"

	"compras_xpto/internal/domain/entities"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrMissingReason     = errors.New("rejection reason is required")
	ErrInvalidState      = errors.New("requisition is not awaiting receipt")
)

// successors is the forward graph. cancelado is only reachable through Cancel, and
// a purchase goes straight from comprado to recebido only through ConfirmReceipt.
var successors = map[entities.RequisicaoStatus][]entities.RequisicaoStatus{
	entities.StatusPendente:  {entities.StatusEmAnalise, entities.StatusRejeitado},
	entities.StatusEmAnalise: {entities.StatusAprovado, entities.StatusRejeitado},
	entities.StatusAprovado:  {entities.StatusCotando},
	entities.StatusCotando:   {entities.StatusComprado},
	entities.StatusComprado:  {entities.StatusEmEntrega},
	entities.StatusEmEntrega: {entities.StatusRecebido},
}

// Successors returns the statuses reachable from s through Transition.
func Successors(s entities.RequisicaoStatus) []entities.RequisicaoStatus {
	return append([]entities.RequisicaoStatus(nil), successors[s]...)
}

// CanTransition reports whether target is a legal successor of from.
func CanTransition(from, target entities.RequisicaoStatus) bool {
	for _, s := range successors[from] {
		if s == target {
			return true
		}
	}
	return false
}

// Transition moves r to target and applies the guarded side effects of the target
// status. actorID is recorded as approver or buyer; reason is required for rejeitado.
func Transition(r entities.Requisicao, target entities.RequisicaoStatus, actorID, reason string, now time.Time) (entities.Requisicao, error) {
	if !CanTransition(r.Status, target) {
		return r, ErrInvalidTransition
	}
	reason = strings.TrimSpace(reason)
	if target == entities.StatusRejeitado && reason == "" {
		return r, ErrMissingReason
	}

	next := r.Clone()
	next.Status = target
	next.UpdatedAt = now

	switch target {
	case entities.StatusAprovado:
		if next.AprovadoEm == nil {
			next.AprovadoEm = timePtr(now)
			next.AprovadoPor = stringPtr(actorID)
		}
	case entities.StatusComprado:
		if next.CompradoEm == nil {
			next.CompradoEm = timePtr(now)
			next.CompradorID = stringPtr(actorID)
		}
	case entities.StatusRecebido:
		markReceived(&next, now)
	case entities.StatusRejeitado:
		next.MotivoRejeicao = stringPtr(reason)
	}
	return next, nil
}

// ConfirmReceipt lets the requester close a purchase that was bought or is being
// delivered. It enforces the same recebido effects as Transition.
func ConfirmReceipt(r entities.Requisicao, now time.Time) (entities.Requisicao, error) {
	if r.Status != entities.StatusComprado && r.Status != entities.StatusEmEntrega {
		return r, ErrInvalidState
	}
	next := r.Clone()
	next.Status = entities.StatusRecebido
	next.UpdatedAt = now
	markReceived(&next, now)
	return next, nil
}

// Cancel is the administrative override into cancelado. It writes no guarded field.
func Cancel(r entities.Requisicao, now time.Time) (entities.Requisicao, error) {
	if r.Status.IsTerminal() || !r.Status.Valid() {
		return r, ErrInvalidTransition
	}
	next := r.Clone()
	next.Status = entities.StatusCancelado
	next.UpdatedAt = now
	return next, nil
}

func markReceived(r *entities.Requisicao, now time.Time) {
	if r.RecebidoEm == nil {
		r.RecebidoEm = timePtr(now)
	}
	if r.EntregueEm == nil {
		r.EntregueEm = timePtr(now)
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func stringPtr(s string) *string { return &s }
