package analytics

import (
	"time"

	"compras_xpto/internal/domain/entities"
)

func ptr[T any](v T) *T { return &v }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type reqOpt func(*entities.Requisicao)

func withValor(v float64) reqOpt { return func(r *entities.Requisicao) { r.Valor = ptr(v) } }
func withOrcado(v float64) reqOpt { return func(r *entities.Requisicao) { r.ValorOrcado = ptr(v) } }
func withFornecedor(f string) reqOpt { return func(r *entities.Requisicao) { r.FornecedorNome = ptr(f) } }
func withCentro(c string) reqOpt { return func(r *entities.Requisicao) { r.CentroCusto = ptr(c) } }
func withComprador(c string) reqOpt { return func(r *entities.Requisicao) { r.CompradorNome = ptr(c) } }
func withEmpresa(e string) reqOpt { return func(r *entities.Requisicao) { r.Empresa = e } }
func withSetor(s string) reqOpt { return func(r *entities.Requisicao) { r.Setor = s } }
func withAprovado(t time.Time) reqOpt { return func(r *entities.Requisicao) { r.AprovadoEm = ptr(t) } }
func withPrevisao(t time.Time) reqOpt { return func(r *entities.Requisicao) { r.PrevisaoEntrega = ptr(t) } }
func withRecebido(t time.Time) reqOpt { return func(r *entities.Requisicao) { r.RecebidoEm = ptr(t); r.EntregueEm = ptr(t) } }

func req(id string, status entities.RequisicaoStatus, created time.Time, opts ...reqOpt) entities.Requisicao {
	r := entities.Requisicao{ID: id, Status: status, CreatedAt: created, UpdatedAt: created}
	for _, o := range opts {
		o(&r)
	}
	return r
}
