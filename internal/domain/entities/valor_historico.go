package entities

import "time"

// ValorHistorico is one committed change of a requisition's negotiated price.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (requisicao_id-index): requisicao_id
//
// Entries are append-only. They are removed only together with the owning requisition.
type ValorHistorico struct {
	ID            string    `json:"id"`
	RequisicaoID  string    `json:"requisicao_id"`
	ValorAnterior *float64  `json:"valor_anterior,omitempty"`
	ValorNovo     float64   `json:"valor_novo"`
	AlteradoPor   string    `json:"alterado_por"`
	CreatedAt     time.Time `json:"created_at"`
}
