package response

import (
	"time"

	"compras_xpto/internal/domain/entities"
	"compras_xpto/internal/domain/sla"
)

type RequisicaoResponse struct {
	ID          string `json:"id"`
	Protocolo   string `json:"protocolo"`
	Titulo      string `json:"titulo"`
	Prioridade  string `json:"prioridade"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`

	SolicitanteNome     string `json:"solicitante_nome"`
	SolicitanteEmail    string `json:"solicitante_email,omitempty"`
	SolicitanteTelefone string `json:"solicitante_telefone,omitempty"`
	Setor               string `json:"setor,omitempty"`
	Empresa             string `json:"empresa,omitempty"`

	ValorOrcado    *float64 `json:"valor_orcado,omitempty"`
	Valor          *float64 `json:"valor,omitempty"`
	CentroCusto    *string  `json:"centro_custo,omitempty"`
	FornecedorNome *string  `json:"fornecedor_nome,omitempty"`
	CompradorNome  *string  `json:"comprador_nome,omitempty"`

	PrevisaoEntrega *time.Time `json:"previsao_entrega,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	AprovadoEm      *time.Time `json:"aprovado_em,omitempty"`
	AprovadoPor     *string    `json:"aprovado_por,omitempty"`
	CompradoEm      *time.Time `json:"comprado_em,omitempty"`
	CompradorID     *string    `json:"comprador_id,omitempty"`
	RecebidoEm      *time.Time `json:"recebido_em,omitempty"`
	EntregueEm      *time.Time `json:"entregue_em,omitempty"`

	Justificativa       string   `json:"justificativa"`
	Especificacoes      *string  `json:"especificacoes,omitempty"`
	MotivoRejeicao      *string  `json:"motivo_rejeicao,omitempty"`
	ObservacaoComprador *string  `json:"observacao_comprador,omitempty"`
	Anexos              []string `json:"anexos"`
	Orcamentos          []string `json:"orcamentos"`
}

func FromRequisicao(r entities.Requisicao) RequisicaoResponse {
	return RequisicaoResponse{
		ID:                  r.ID,
		Protocolo:           r.Protocolo,
		Titulo:              r.Titulo,
		Prioridade:          string(r.Prioridade),
		Status:              string(r.Status),
		StatusLabel:         r.Status.Label(),
		SolicitanteNome:     r.SolicitanteNome,
		SolicitanteEmail:    r.SolicitanteEmail,
		SolicitanteTelefone: r.SolicitanteTelefone,
		Setor:               r.Setor,
		Empresa:             r.Empresa,
		ValorOrcado:         r.ValorOrcado,
		Valor:               r.Valor,
		CentroCusto:         r.CentroCusto,
		FornecedorNome:      r.FornecedorNome,
		CompradorNome:       r.CompradorNome,
		PrevisaoEntrega:     r.PrevisaoEntrega,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
		AprovadoEm:          r.AprovadoEm,
		AprovadoPor:         r.AprovadoPor,
		CompradoEm:          r.CompradoEm,
		CompradorID:         r.CompradorID,
		RecebidoEm:          r.RecebidoEm,
		EntregueEm:          r.EntregueEm,
		Justificativa:       r.Justificativa,
		Especificacoes:      r.Especificacoes,
		MotivoRejeicao:      r.MotivoRejeicao,
		ObservacaoComprador: r.ObservacaoComprador,
		Anexos:              nonNil(r.Anexos),
		Orcamentos:          nonNil(r.Orcamentos),
	}
}

func FromRequisicoes(items []entities.Requisicao) []RequisicaoResponse {
	out := make([]RequisicaoResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromRequisicao(r))
	}
	return out
}

type SLAResponse struct {
	RequisicaoID string       `json:"requisicao_id"`
	Protocolo    string       `json:"protocolo"`
	Status       string       `json:"status"`
	SLA          sla.Info     `json:"sla"`
	Severidade   sla.Severity `json:"severidade"`
}

func FromSLA(r entities.Requisicao, info sla.Info) SLAResponse {
	return SLAResponse{
		RequisicaoID: r.ID,
		Protocolo:    r.Protocolo,
		Status:       string(r.Status),
		SLA:          info,
		Severidade:   sla.Classify(info),
	}
}

type ValorHistoricoResponse struct {
	ID            string    `json:"id"`
	ValorAnterior *float64  `json:"valor_anterior"`
	ValorNovo     float64   `json:"valor_novo"`
	AlteradoPor   string    `json:"alterado_por"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromValorHistorico(items []entities.ValorHistorico) []ValorHistoricoResponse {
	out := make([]ValorHistoricoResponse, 0, len(items))
	for _, h := range items {
		out = append(out, ValorHistoricoResponse{
			ID:            h.ID,
			ValorAnterior: h.ValorAnterior,
			ValorNovo:     h.ValorNovo,
			AlteradoPor:   h.AlteradoPor,
			CreatedAt:     h.CreatedAt,
		})
	}
	return out
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
