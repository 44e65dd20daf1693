package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"compras_xpto/internal/domain/analytics"
	"compras_xpto/internal/domain/entities"
	"compras_xpto/internal/domain/lifecycle"
	"compras_xpto/internal/domain/sla"
	"compras_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	log "github.com/sirupsen/logrus"
)

var (
	ErrRequisicaoNotFound     = errors.New("requisicao not found")
	ErrInvalidRequisicaoID    = errors.New("invalid requisicao id")
	ErrInvalidRequisicaoInput = errors.New("invalid requisicao input")
	ErrInvalidActor           = errors.New("invalid actor")
	ErrInvalidValor           = errors.New("invalid valor")
	ErrValorNotEditable       = errors.New("valor cannot be changed in the current status")
	ErrRequisicaoClosed       = errors.New("requisicao is closed")
	ErrDeleteNotAllowed       = errors.New("only cancelled requisicoes can be deleted")
	ErrRequisicaoConflict     = interfaces.ErrConcurrentUpdate
)

const (
	protocoloAlphabet = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"
	protocoloSize     = 6
	notifyTimeout     = 10 * time.Second
)

// CreateRequisicaoInput is what a requester submits.
type CreateRequisicaoInput struct {
	Titulo              string
	Prioridade          entities.Prioridade
	SolicitanteNome     string
	SolicitanteEmail    string
	SolicitanteTelefone string
	Setor               string
	Empresa             string
	Justificativa       string
	Especificacoes      *string
	ValorOrcado         *float64
	CentroCusto         *string
	Anexos              []string
}

// UpdateCompraInput carries the staff-only procurement fields. Nil fields are left untouched.
type UpdateCompraInput struct {
	FornecedorNome      *string
	CompradorNome       *string
	CentroCusto         *string
	ValorOrcado         *float64
	ObservacaoComprador *string
	PrevisaoEntrega     *time.Time
	Orcamentos          []string
}

// IRequisicaoUseCase exposes the requisition lifecycle.
//
//   - Transition() is the generic staff move along the status graph.
//   - Cancel() is the administrative override into cancelado.
//   - ConfirmReceipt() is the requester-side closing of a purchase.

type IRequisicaoUseCase interface {
	Create(ctx context.Context, in CreateRequisicaoInput) (entities.Requisicao, error)
	GetByID(ctx context.Context, id string) (entities.Requisicao, error)
	List(ctx context.Context, filters analytics.Filters) ([]entities.Requisicao, error)
	Transition(ctx context.Context, id string, target entities.RequisicaoStatus, actorID, reason string) (entities.Requisicao, error)
	Cancel(ctx context.Context, id, actorID string) (entities.Requisicao, error)
	ConfirmReceipt(ctx context.Context, id, actorID string) (entities.Requisicao, error)
	UpdateValor(ctx context.Context, id string, valor float64, actorID string) (entities.Requisicao, error)
	UpdateCompra(ctx context.Context, id string, in UpdateCompraInput) (entities.Requisicao, error)
	ListValorHistorico(ctx context.Context, id string) ([]entities.ValorHistorico, error)
	EvaluateSLA(ctx context.Context, id string) (entities.Requisicao, sla.Info, error)
	Delete(ctx context.Context, id string) error
}

type RequisicaoUseCase struct {
	repo      interfaces.IRequisicaoRepository
	historico interfaces.IValorHistoricoRepository
	notifier  interfaces.INotifier
	clock     interfaces.IClock

	inflight sync.WaitGroup
}

var _ IRequisicaoUseCase = (*RequisicaoUseCase)(nil)

func NewRequisicaoUseCase(
	repo interfaces.IRequisicaoRepository,
	historico interfaces.IValorHistoricoRepository,
	notifier interfaces.INotifier,
	clock interfaces.IClock,
) *RequisicaoUseCase {
	return &RequisicaoUseCase{repo: repo, historico: historico, notifier: notifier, clock: clock}
}

func (u *RequisicaoUseCase) Create(ctx context.Context, in CreateRequisicaoInput) (entities.Requisicao, error) {
	in.Titulo = strings.TrimSpace(in.Titulo)
	in.Justificativa = strings.TrimSpace(in.Justificativa)
	in.SolicitanteNome = strings.TrimSpace(in.SolicitanteNome)
	if in.Titulo == "" || in.Justificativa == "" || in.SolicitanteNome == "" {
		return entities.Requisicao{}, ErrInvalidRequisicaoInput
	}
	if in.Prioridade == "" {
		in.Prioridade = entities.PrioridadeMedia
	}
	if !in.Prioridade.Valid() {
		return entities.Requisicao{}, ErrInvalidRequisicaoInput
	}
	if in.ValorOrcado != nil && *in.ValorOrcado < 0 {
		return entities.Requisicao{}, ErrInvalidValor
	}

	now := u.clock.Now().UTC()
	protocolo, err := newProtocolo(now)
	if err != nil {
		return entities.Requisicao{}, err
	}

	r := entities.Requisicao{
		ID:                  uuid.NewString(),
		Protocolo:           protocolo,
		Titulo:              in.Titulo,
		Prioridade:          in.Prioridade,
		Status:              entities.StatusPendente,
		SolicitanteNome:     in.SolicitanteNome,
		SolicitanteEmail:    strings.TrimSpace(in.SolicitanteEmail),
		SolicitanteTelefone: strings.TrimSpace(in.SolicitanteTelefone),
		Setor:               strings.TrimSpace(in.Setor),
		Empresa:             strings.TrimSpace(in.Empresa),
		ValorOrcado:         in.ValorOrcado,
		CentroCusto:         trimmedOrNil(in.CentroCusto),
		Justificativa:       in.Justificativa,
		Especificacoes:      trimmedOrNil(in.Especificacoes),
		Anexos:              in.Anexos,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.WithError(err).WithField("protocolo", protocolo).Error("[requisicao][usecase] create failed")
		return entities.Requisicao{}, err
	}
	log.WithFields(log.Fields{"requisicao_id": created.ID, "protocolo": created.Protocolo}).Info("[requisicao][usecase] created")
	u.dispatch(created)
	return created, nil
}

func (u *RequisicaoUseCase) GetByID(ctx context.Context, id string) (entities.Requisicao, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Requisicao{}, ErrInvalidRequisicaoID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Requisicao{}, err
	}
	if r.ID == "" {
		return entities.Requisicao{}, ErrRequisicaoNotFound
	}
	return r, nil
}

// List returns the requisitions matching filters, newest first.
func (u *RequisicaoUseCase) List(ctx context.Context, filters analytics.Filters) ([]entities.Requisicao, error) {
	all, err := u.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := analytics.ApplyFilters(all, filters)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (u *RequisicaoUseCase) Transition(ctx context.Context, id string, target entities.RequisicaoStatus, actorID, reason string) (entities.Requisicao, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return entities.Requisicao{}, ErrInvalidActor
	}
	return u.mutate(ctx, id, "transition", actorID, func(r entities.Requisicao, now time.Time) (entities.Requisicao, error) {
		return lifecycle.Transition(r, target, actorID, reason, now)
	})
}

func (u *RequisicaoUseCase) Cancel(ctx context.Context, id, actorID string) (entities.Requisicao, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return entities.Requisicao{}, ErrInvalidActor
	}
	return u.mutate(ctx, id, "cancel", actorID, func(r entities.Requisicao, now time.Time) (entities.Requisicao, error) {
		return lifecycle.Cancel(r, now)
	})
}

func (u *RequisicaoUseCase) ConfirmReceipt(ctx context.Context, id, actorID string) (entities.Requisicao, error) {
	return u.mutate(ctx, id, "confirm-receipt", actorID, func(r entities.Requisicao, now time.Time) (entities.Requisicao, error) {
		return lifecycle.ConfirmReceipt(r, now)
	})
}

// mutate loads the requisition, applies one status change and commits it with a write
// conditioned on the status that was read. The notification is dispatched only after
// the write succeeded.
func (u *RequisicaoUseCase) mutate(
	ctx context.Context,
	id, op, actorID string,
	apply func(r entities.Requisicao, now time.Time) (entities.Requisicao, error),
) (entities.Requisicao, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Requisicao{}, err
	}

	next, err := apply(current, u.clock.Now().UTC())
	if err != nil {
		log.WithFields(log.Fields{"requisicao_id": current.ID, "status": current.Status, "op": op}).WithError(err).Info("[requisicao][usecase] transition refused")
		return entities.Requisicao{}, err
	}

	saved, err := u.repo.SaveTransition(ctx, current, next)
	if err != nil {
		log.WithFields(log.Fields{"requisicao_id": current.ID, "op": op}).WithError(err).Error("[requisicao][usecase] save failed")
		return entities.Requisicao{}, err
	}
	if saved.ID == "" {
		return entities.Requisicao{}, ErrRequisicaoNotFound
	}

	entry := log.WithFields(log.Fields{"requisicao_id": saved.ID, "from": current.Status, "to": saved.Status, "op": op, "actor": actorID})
	if saved.Status == entities.StatusCancelado {
		entry.Warn("[requisicao][usecase] administrative cancel")
	} else {
		entry.Info("[requisicao][usecase] status changed")
	}

	u.dispatch(saved)
	return saved, nil
}

func (u *RequisicaoUseCase) UpdateValor(ctx context.Context, id string, valor float64, actorID string) (entities.Requisicao, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return entities.Requisicao{}, ErrInvalidActor
	}
	if valor <= 0 {
		return entities.Requisicao{}, ErrInvalidValor
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Requisicao{}, err
	}
	if !current.Status.AcceptsValor() {
		return entities.Requisicao{}, ErrValorNotEditable
	}
	if current.Valor != nil && *current.Valor == valor {
		return current, nil
	}

	now := u.clock.Now().UTC()
	next := current.Clone()
	next.Valor = &valor
	next.UpdatedAt = now

	entry := entities.ValorHistorico{
		ID:            uuid.NewString(),
		RequisicaoID:  current.ID,
		ValorAnterior: current.Valor,
		ValorNovo:     valor,
		AlteradoPor:   actorID,
		CreatedAt:     now,
	}
	saved, err := u.repo.SaveValor(ctx, current, next, entry)
	if err != nil {
		log.WithField("requisicao_id", current.ID).WithError(err).Error("[requisicao][usecase] valor update failed")
		return entities.Requisicao{}, err
	}
	if saved.ID == "" {
		return entities.Requisicao{}, ErrRequisicaoNotFound
	}
	log.WithFields(log.Fields{"requisicao_id": saved.ID, "valor": valor, "actor": actorID}).Info("[requisicao][usecase] valor updated")
	return saved, nil
}

func (u *RequisicaoUseCase) UpdateCompra(ctx context.Context, id string, in UpdateCompraInput) (entities.Requisicao, error) {
	if in.ValorOrcado != nil && *in.ValorOrcado < 0 {
		return entities.Requisicao{}, ErrInvalidValor
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Requisicao{}, err
	}
	if current.Status.IsTerminal() && in.PrevisaoEntrega != nil {
		return entities.Requisicao{}, ErrRequisicaoClosed
	}

	next := current.Clone()
	if in.FornecedorNome != nil {
		next.FornecedorNome = trimmedOrNil(in.FornecedorNome)
	}
	if in.CompradorNome != nil {
		next.CompradorNome = trimmedOrNil(in.CompradorNome)
	}
	if in.CentroCusto != nil {
		next.CentroCusto = trimmedOrNil(in.CentroCusto)
	}
	if in.ValorOrcado != nil {
		next.ValorOrcado = in.ValorOrcado
	}
	if in.ObservacaoComprador != nil {
		next.ObservacaoComprador = trimmedOrNil(in.ObservacaoComprador)
	}
	if in.PrevisaoEntrega != nil {
		p := in.PrevisaoEntrega.UTC()
		next.PrevisaoEntrega = &p
	}
	if in.Orcamentos != nil {
		next.Orcamentos = append([]string(nil), in.Orcamentos...)
	}
	next.UpdatedAt = u.clock.Now().UTC()

	saved, err := u.repo.SaveCompra(ctx, current, next)
	if err != nil {
		return entities.Requisicao{}, err
	}
	if saved.ID == "" {
		return entities.Requisicao{}, ErrRequisicaoNotFound
	}
	return saved, nil
}

func (u *RequisicaoUseCase) ListValorHistorico(ctx context.Context, id string) ([]entities.ValorHistorico, error) {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := u.historico.ListByRequisicaoID(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (u *RequisicaoUseCase) EvaluateSLA(ctx context.Context, id string) (entities.Requisicao, sla.Info, error) {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Requisicao{}, sla.Info{}, err
	}
	return r, sla.Evaluate(r, u.clock.Now()), nil
}

// Delete hard-deletes a cancelled requisition together with its price history.
func (u *RequisicaoUseCase) Delete(ctx context.Context, id string) error {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r.Status != entities.StatusCancelado {
		return ErrDeleteNotAllowed
	}
	if err := u.historico.DeleteByRequisicaoID(ctx, r.ID); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, r.ID); err != nil {
		return err
	}
	log.WithFields(log.Fields{"requisicao_id": r.ID, "protocolo": r.Protocolo}).Warn("[requisicao][usecase] deleted")
	return nil
}

// Wait blocks until every pending notification dispatch has returned.
func (u *RequisicaoUseCase) Wait() {
	u.inflight.Wait()
}

func (u *RequisicaoUseCase) dispatch(r entities.Requisicao) {
	if u.notifier == nil {
		return
	}
	snapshot := r.Clone()
	u.inflight.Add(1)
	go func() {
		defer u.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := u.notifier.Notify(ctx, snapshot, snapshot.Status); err != nil {
			log.WithFields(log.Fields{"requisicao_id": snapshot.ID, "status": snapshot.Status}).WithError(err).Warn("[requisicao][notify] dispatch failed")
		}
	}()
}

func newProtocolo(now time.Time) (string, error) {
	id, err := gonanoid.Generate(protocoloAlphabet, protocoloSize)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("REQ-%d-%s", now.Year(), id), nil
}

func trimmedOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}
