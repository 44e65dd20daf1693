package interfaces

import (
	"context"

	"compras_xpto/internal/domain/entities"
)

// INotifier abstracts outbound status notifications (e-mail, WhatsApp workers).
//
// The lifecycle calls it after a committed transition; a failure is logged and never
// undoes the transition.
type INotifier interface {
	Notify(ctx context.Context, r entities.Requisicao, status entities.RequisicaoStatus) error
}
