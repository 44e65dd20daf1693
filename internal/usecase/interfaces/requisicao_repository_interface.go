package interfaces

import (
	"context"
	"errors"

	"compras_xpto/internal/domain/entities"
)

// ErrConcurrentUpdate means the stored requisition no longer matches the snapshot a
// write was computed from.
var ErrConcurrentUpdate = errors.New("requisicao was changed by another request")

// IRequisicaoRepository abstracts DynamoDB persistence for Requisicao.
//
// Lookups and saves return a zero Requisicao (empty ID) when nothing is found.
// Every Save* takes the snapshot it was computed from and only writes the fields its
// operation owns; a stored item that moved on yields ErrConcurrentUpdate.
// LoadAll makes no ordering promise.

type IRequisicaoRepository interface {
	Create(ctx context.Context, r entities.Requisicao) (entities.Requisicao, error)
	GetByID(ctx context.Context, id string) (entities.Requisicao, error)
	LoadAll(ctx context.Context) ([]entities.Requisicao, error)
	SaveTransition(ctx context.Context, current, next entities.Requisicao) (entities.Requisicao, error)
	SaveCompra(ctx context.Context, current, next entities.Requisicao) (entities.Requisicao, error)
	SaveValor(ctx context.Context, current, next entities.Requisicao, entry entities.ValorHistorico) (entities.Requisicao, error)
	Delete(ctx context.Context, id string) error
}
