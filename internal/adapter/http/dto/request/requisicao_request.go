package request

import (
	"errors"
	"strings"
	"time"

	"compras_xpto/internal/domain/entities"
	"compras_xpto/internal/usecase"
)

var (
	ErrInvalidStatus = errors.New("invalid status")
	ErrInvalidDate   = errors.New("invalid date")
)

// CreateRequisicaoRequest is the requester's submission form.
type CreateRequisicaoRequest struct {
	Titulo              string   `json:"titulo" binding:"required"`
	Prioridade          string   `json:"prioridade"`
	SolicitanteNome     string   `json:"solicitante_nome" binding:"required"`
	SolicitanteEmail    string   `json:"solicitante_email" binding:"omitempty,email"`
	SolicitanteTelefone string   `json:"solicitante_telefone"`
	Setor               string   `json:"setor"`
	Empresa             string   `json:"empresa"`
	Justificativa       string   `json:"justificativa" binding:"required"`
	Especificacoes      *string  `json:"especificacoes"`
	ValorOrcado         *float64 `json:"valor_orcado" binding:"omitempty,gte=0"`
	CentroCusto         *string  `json:"centro_custo"`
	Anexos              []string `json:"anexos"`
}

func (r CreateRequisicaoRequest) ToInput() usecase.CreateRequisicaoInput {
	return usecase.CreateRequisicaoInput{
		Titulo:              r.Titulo,
		Prioridade:          entities.Prioridade(strings.ToUpper(strings.TrimSpace(r.Prioridade))),
		SolicitanteNome:     r.SolicitanteNome,
		SolicitanteEmail:    r.SolicitanteEmail,
		SolicitanteTelefone: r.SolicitanteTelefone,
		Setor:               r.Setor,
		Empresa:             r.Empresa,
		Justificativa:       r.Justificativa,
		Especificacoes:      r.Especificacoes,
		ValorOrcado:         r.ValorOrcado,
		CentroCusto:         r.CentroCusto,
		Anexos:              r.Anexos,
	}
}

// TransitionRequest moves a requisition along the status graph. Motivo is required
// when the target is rejeitado.
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
	Motivo string `json:"motivo"`
}

func (r TransitionRequest) ResolveStatus() (entities.RequisicaoStatus, error) {
	s := entities.RequisicaoStatus(strings.ToLower(strings.TrimSpace(r.Status)))
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

type UpdateValorRequest struct {
	Valor float64 `json:"valor" binding:"required,gt=0"`
}

// UpdateCompraRequest carries the procurement fields staff fill in while quoting and
// buying. Omitted fields are left untouched.
type UpdateCompraRequest struct {
	FornecedorNome      *string  `json:"fornecedor_nome"`
	CompradorNome       *string  `json:"comprador_nome"`
	CentroCusto         *string  `json:"centro_custo"`
	ValorOrcado         *float64 `json:"valor_orcado" binding:"omitempty,gte=0"`
	ObservacaoComprador *string  `json:"observacao_comprador"`
	PrevisaoEntrega     *string  `json:"previsao_entrega"`
	Orcamentos          []string `json:"orcamentos"`
}

func (r UpdateCompraRequest) ToInput() (usecase.UpdateCompraInput, error) {
	in := usecase.UpdateCompraInput{
		FornecedorNome:      r.FornecedorNome,
		CompradorNome:       r.CompradorNome,
		CentroCusto:         r.CentroCusto,
		ValorOrcado:         r.ValorOrcado,
		ObservacaoComprador: r.ObservacaoComprador,
		Orcamentos:          r.Orcamentos,
	}
	if r.PrevisaoEntrega != nil {
		t, err := ParseDate(*r.PrevisaoEntrega)
		if err != nil {
			return usecase.UpdateCompraInput{}, err
		}
		in.PrevisaoEntrega = &t
	}
	return in, nil
}

// ParseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates (UTC midnight).
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}
