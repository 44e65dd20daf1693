package entities

import (
	"strings"
	"time"
)

// RequisicaoStatus represents the lifecycle of a purchase requisition.
//
// Domain notes:
//   - pendente is the initial status.
//   - recebido, rejeitado and cancelado are terminal.
//   - cancelado is an administrative override, reachable only through Cancel.

type RequisicaoStatus string

const (
	StatusPendente  RequisicaoStatus = "pendente"
	StatusEmAnalise RequisicaoStatus = "em_analise"
	StatusAprovado  RequisicaoStatus = "aprovado"
	StatusCotando   RequisicaoStatus = "cotando"
	StatusComprado  RequisicaoStatus = "comprado"
	StatusEmEntrega RequisicaoStatus = "em_entrega"
	StatusRecebido  RequisicaoStatus = "recebido"
	StatusRejeitado RequisicaoStatus = "rejeitado"
	StatusCancelado RequisicaoStatus = "cancelado"
)

// AllStatuses lists every status in lifecycle order.
var AllStatuses = []RequisicaoStatus{
	StatusPendente,
	StatusEmAnalise,
	StatusAprovado,
	StatusCotando,
	StatusComprado,
	StatusEmEntrega,
	StatusRecebido,
	StatusRejeitado,
	StatusCancelado,
}

func (s RequisicaoStatus) Valid() bool {
	switch s {
	case StatusPendente, StatusEmAnalise, StatusAprovado, StatusCotando, StatusComprado,
		StatusEmEntrega, StatusRecebido, StatusRejeitado, StatusCancelado:
		return true
	}
	return false
}

func (s RequisicaoStatus) IsTerminal() bool {
	switch s {
	case StatusRecebido, StatusRejeitado, StatusCancelado:
		return true
	}
	return false
}

// Label is the human readable status name shown on dashboards and notifications.
func (s RequisicaoStatus) Label() string {
	switch s {
	case StatusPendente:
		return "Pendente"
	case StatusEmAnalise:
		return "Em análise"
	case StatusAprovado:
		return "Aprovado"
	case StatusCotando:
		return "Cotando"
	case StatusComprado:
		return "Comprado"
	case StatusEmEntrega:
		return "Em entrega"
	case StatusRecebido:
		return "Recebido"
	case StatusRejeitado:
		return "Rejeitado"
	case StatusCancelado:
		return "Cancelado"
	default:
		return string(s)
	}
}

// AcceptsValor reports whether the negotiated price may be edited in this status.
func (s RequisicaoStatus) AcceptsValor() bool {
	switch s {
	case StatusCotando, StatusComprado, StatusEmEntrega, StatusRecebido:
		return true
	}
	return false
}

type Prioridade string

const (
	PrioridadeAlta  Prioridade = "ALTA"
	PrioridadeMedia Prioridade = "MEDIA"
	PrioridadeBaixa Prioridade = "BAIXA"
)

func (p Prioridade) Valid() bool {
	switch p {
	case PrioridadeAlta, PrioridadeMedia, PrioridadeBaixa:
		return true
	}
	return false
}

// Requisicao is the purchase requisition persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Lifecycle timestamps (AprovadoEm, CompradoEm, RecebidoEm, EntregueEm) are nil until
// the corresponding transition fires and are never cleared afterwards.
type Requisicao struct {
	ID         string           `json:"id"`
	Protocolo  string           `json:"protocolo"`
	Titulo     string           `json:"titulo"`
	Prioridade Prioridade       `json:"prioridade"`
	Status     RequisicaoStatus `json:"status"`

	SolicitanteNome     string `json:"solicitante_nome"`
	SolicitanteEmail    string `json:"solicitante_email"`
	SolicitanteTelefone string `json:"solicitante_telefone"`
	Setor               string `json:"setor"`
	Empresa             string `json:"empresa"`

	ValorOrcado    *float64 `json:"valor_orcado,omitempty"`
	Valor          *float64 `json:"valor,omitempty"`
	CentroCusto    *string  `json:"centro_custo,omitempty"`
	FornecedorNome *string  `json:"fornecedor_nome,omitempty"`
	CompradorNome  *string  `json:"comprador_nome,omitempty"`
	CompradorID    *string  `json:"comprador_id,omitempty"`

	PrevisaoEntrega *time.Time `json:"previsao_entrega,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	AprovadoEm  *time.Time `json:"aprovado_em,omitempty"`
	AprovadoPor *string    `json:"aprovado_por,omitempty"`
	CompradoEm  *time.Time `json:"comprado_em,omitempty"`
	RecebidoEm  *time.Time `json:"recebido_em,omitempty"`
	EntregueEm  *time.Time `json:"entregue_em,omitempty"`

	Justificativa       string  `json:"justificativa"`
	Especificacoes      *string `json:"especificacoes,omitempty"`
	MotivoRejeicao      *string `json:"motivo_rejeicao,omitempty"`
	ObservacaoComprador *string `json:"observacao_comprador,omitempty"`

	Anexos     []string `json:"anexos,omitempty"`
	Orcamentos []string `json:"orcamentos,omitempty"`
}

// ValorPositivo returns the negotiated price when it is set and positive.
func (r Requisicao) ValorPositivo() (float64, bool) {
	if r.Valor == nil || *r.Valor <= 0 {
		return 0, false
	}
	return *r.Valor, true
}

// ValorOrcadoPositivo returns the budgeted price when it is set and positive.
func (r Requisicao) ValorOrcadoPositivo() (float64, bool) {
	if r.ValorOrcado == nil || *r.ValorOrcado <= 0 {
		return 0, false
	}
	return *r.ValorOrcado, true
}

// Fornecedor returns the trimmed supplier name, or "" when unset.
func (r Requisicao) Fornecedor() string {
	if r.FornecedorNome == nil {
		return ""
	}
	return strings.TrimSpace(*r.FornecedorNome)
}

// DataRecebimento prefers recebido_em and falls back to entregue_em.
func (r Requisicao) DataRecebimento() *time.Time {
	if r.RecebidoEm != nil {
		return r.RecebidoEm
	}
	return r.EntregueEm
}

// Clone returns a copy that shares no pointers with r.
func (r Requisicao) Clone() Requisicao {
	c := r
	c.ValorOrcado = cloneFloat(r.ValorOrcado)
	c.Valor = cloneFloat(r.Valor)
	c.CentroCusto = cloneString(r.CentroCusto)
	c.FornecedorNome = cloneString(r.FornecedorNome)
	c.CompradorNome = cloneString(r.CompradorNome)
	c.CompradorID = cloneString(r.CompradorID)
	c.PrevisaoEntrega = cloneTime(r.PrevisaoEntrega)
	c.AprovadoEm = cloneTime(r.AprovadoEm)
	c.AprovadoPor = cloneString(r.AprovadoPor)
	c.CompradoEm = cloneTime(r.CompradoEm)
	c.RecebidoEm = cloneTime(r.RecebidoEm)
	c.EntregueEm = cloneTime(r.EntregueEm)
	c.Especificacoes = cloneString(r.Especificacoes)
	c.MotivoRejeicao = cloneString(r.MotivoRejeicao)
	c.ObservacaoComprador = cloneString(r.ObservacaoComprador)
	if r.Anexos != nil {
		c.Anexos = append([]string(nil), r.Anexos...)
	}
	if r.Orcamentos != nil {
		c.Orcamentos = append([]string(nil), r.Orcamentos...)
	}
	return c
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	x := *v
	return &x
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	x := *v
	return &x
}

func cloneTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	x := *v
	return &x
}
