package interfaces

import (
	"context"

	"compras_xpto/internal/domain/entities"
)

// IValorHistoricoRepository reads and purges the price log. Entries are written by
// IRequisicaoRepository.SaveValor together with the price change they record.

type IValorHistoricoRepository interface {
	ListByRequisicaoID(ctx context.Context, requisicaoID string) ([]entities.ValorHistorico, error)
	DeleteByRequisicaoID(ctx context.Context, requisicaoID string) error
}
