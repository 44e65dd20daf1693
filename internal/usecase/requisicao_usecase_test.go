package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"compras_xpto/internal/domain/analytics"
	"compras_xpto/internal/domain/entities"
	"compras_xpto/internal/domain/lifecycle"
	"compras_xpto/internal/usecase/interfaces"
	mock_interfaces "compras_xpto/internal/usecase/interfaces/mocks"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type requisicaoDeps struct {
	repo      *mock_interfaces.MockIRequisicaoRepository
	historico *mock_interfaces.MockIValorHistoricoRepository
	notifier  *mock_interfaces.MockINotifier
	clock     *mock_interfaces.MockIClock
}

func newRequisicaoUC(t *testing.T) (*RequisicaoUseCase, requisicaoDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := requisicaoDeps{
		repo:      mock_interfaces.NewMockIRequisicaoRepository(ctrl),
		historico: mock_interfaces.NewMockIValorHistoricoRepository(ctrl),
		notifier:  mock_interfaces.NewMockINotifier(ctrl),
		clock:     mock_interfaces.NewMockIClock(ctrl),
	}
	d.clock.EXPECT().Now().Return(fixedNow).AnyTimes()
	return NewRequisicaoUseCase(d.repo, d.historico, d.notifier, d.clock), d
}

func floatPtr(v float64) *float64 { return &v }

func savedAsIs(_ context.Context, _, next entities.Requisicao) (entities.Requisicao, error) {
	return next, nil
}

func loggedAt(hook *logtest.Hook, level logrus.Level, msg string) bool {
	for _, e := range hook.AllEntries() {
		if e.Level == level && e.Message == msg {
			return true
		}
	}
	return false
}

func strPtr(s string) *string { return &s }

func TestRequisicaoUseCase_Create(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		uc, _ := newRequisicaoUC(t)
		_, err := uc.Create(context.Background(), CreateRequisicaoInput{Titulo: "  ", Justificativa: "x", SolicitanteNome: "Ana"})
		if !errors.Is(err, ErrInvalidRequisicaoInput) {
			t.Fatalf("expected ErrInvalidRequisicaoInput, got %v", err)
		}
	})

	t.Run("invalid priority", func(t *testing.T) {
		uc, _ := newRequisicaoUC(t)
		_, err := uc.Create(context.Background(), CreateRequisicaoInput{Titulo: "t", Justificativa: "j", SolicitanteNome: "Ana", Prioridade: "URGENTE"})
		if !errors.Is(err, ErrInvalidRequisicaoInput) {
			t.Fatalf("expected ErrInvalidRequisicaoInput, got %v", err)
		}
	})

	t.Run("negative budget", func(t *testing.T) {
		uc, _ := newRequisicaoUC(t)
		_, err := uc.Create(context.Background(), CreateRequisicaoInput{Titulo: "t", Justificativa: "j", SolicitanteNome: "Ana", ValorOrcado: floatPtr(-1)})
		if !errors.Is(err, ErrInvalidValor) {
			t.Fatalf("expected ErrInvalidValor, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Requisicao{}, errors.New("db"))

		_, err := uc.Create(context.Background(), CreateRequisicaoInput{Titulo: "t", Justificativa: "j", SolicitanteNome: "Ana"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		protocolo := regexp.MustCompile(`^REQ-2024-[0-9A-Z]{6}$`)

		d.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Requisicao{})).DoAndReturn(
			func(_ context.Context, r entities.Requisicao) (entities.Requisicao, error) {
				if r.ID == "" || r.Status != entities.StatusPendente || r.Prioridade != entities.PrioridadeMedia {
					t.Fatalf("unexpected requisicao: %+v", r)
				}
				if !protocolo.MatchString(r.Protocolo) {
					t.Fatalf("unexpected protocolo %q", r.Protocolo)
				}
				if r.Titulo != "Notebooks" || r.CentroCusto != nil {
					t.Fatalf("expected trimmed input, got %+v", r)
				}
				if !r.CreatedAt.Equal(fixedNow) || !r.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("expected clock timestamps")
				}
				return r, nil
			},
		)
		d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), entities.StatusPendente).Return(nil)

		res, err := uc.Create(context.Background(), CreateRequisicaoInput{
			Titulo:          " Notebooks ",
			Justificativa:   "equipe nova",
			SolicitanteNome: "Ana",
			CentroCusto:     strPtr("   "),
		})
		uc.Wait()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestRequisicaoUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newRequisicaoUC(t)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidRequisicaoID) {
			t.Fatalf("expected ErrInvalidRequisicaoID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{}, nil)

		_, err := uc.GetByID(context.Background(), " req-1 ")
		if !errors.Is(err, ErrRequisicaoNotFound) {
			t.Fatalf("expected ErrRequisicaoNotFound, got %v", err)
		}
	})
}

func TestRequisicaoUseCase_List(t *testing.T) {
	uc, d := newRequisicaoUC(t)
	d.repo.EXPECT().LoadAll(gomock.Any()).Return([]entities.Requisicao{
		{ID: "a", Empresa: "ACME", CreatedAt: fixedNow.Add(-48 * time.Hour)},
		{ID: "b", Empresa: "Globex", CreatedAt: fixedNow.Add(-24 * time.Hour)},
		{ID: "c", Empresa: "ACME", CreatedAt: fixedNow.Add(-time.Hour)},
	}, nil)

	res, err := uc.List(context.Background(), analytics.Filters{Empresas: []string{"ACME"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 || res[0].ID != "c" || res[1].ID != "a" {
		t.Fatalf("expected [c a], got %+v", res)
	}
}

func TestRequisicaoUseCase_Transition(t *testing.T) {
	t.Run("missing actor", func(t *testing.T) {
		uc, _ := newRequisicaoUC(t)
		_, err := uc.Transition(context.Background(), "req-1", entities.StatusAprovado, " ", "")
		if !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})

	t.Run("invalid transition leaves store untouched", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusPendente}, nil)

		_, err := uc.Transition(context.Background(), "req-1", entities.StatusComprado, "staff-1", "")
		uc.Wait()
		if !errors.Is(err, lifecycle.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("reject without reason", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusEmAnalise}, nil)

		_, err := uc.Transition(context.Background(), "req-1", entities.StatusRejeitado, "staff-1", "")
		if !errors.Is(err, lifecycle.ErrMissingReason) {
			t.Fatalf("expected ErrMissingReason, got %v", err)
		}
	})

	t.Run("approve persists and notifies", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusEmAnalise}, nil)
		d.repo.EXPECT().SaveTransition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, current, next entities.Requisicao) (entities.Requisicao, error) {
				if current.Status != entities.StatusEmAnalise {
					t.Fatalf("expected the read status as guard, got %s", current.Status)
				}
				if next.Status != entities.StatusAprovado || next.AprovadoEm == nil || *next.AprovadoPor != "staff-1" {
					t.Fatalf("unexpected saved requisicao: %+v", next)
				}
				return next, nil
			},
		)
		d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), entities.StatusAprovado).Return(nil)

		res, err := uc.Transition(context.Background(), "req-1", entities.StatusAprovado, "staff-1", "")
		uc.Wait()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.UpdatedAt.Equal(fixedNow) {
			t.Fatalf("expected updated_at from clock, got %v", res.UpdatedAt)
		}
	})

	t.Run("notify failure does not fail the transition", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusAprovado}, nil)
		d.repo.EXPECT().SaveTransition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(savedAsIs)
		d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), entities.StatusCotando).Return(errors.New("redis down"))

		res, err := uc.Transition(context.Background(), "req-1", entities.StatusCotando, "staff-1", "")
		uc.Wait()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusCotando {
			t.Fatalf("expected cotando, got %s", res.Status)
		}
	})

	t.Run("save error", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusAprovado}, nil)
		d.repo.EXPECT().SaveTransition(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Requisicao{}, errors.New("db"))

		_, err := uc.Transition(context.Background(), "req-1", entities.StatusCotando, "staff-1", "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("concurrent change is a conflict and is not notified", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusEmAnalise}, nil)
		d.repo.EXPECT().SaveTransition(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Requisicao{}, interfaces.ErrConcurrentUpdate)

		_, err := uc.Transition(context.Background(), "req-1", entities.StatusAprovado, "staff-1", "")
		uc.Wait()
		if !errors.Is(err, ErrRequisicaoConflict) {
			t.Fatalf("expected ErrRequisicaoConflict, got %v", err)
		}
	})

	t.Run("vanished requisicao", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusAprovado}, nil)
		d.repo.EXPECT().SaveTransition(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Requisicao{}, nil)

		_, err := uc.Transition(context.Background(), "req-1", entities.StatusCotando, "staff-1", "")
		if !errors.Is(err, ErrRequisicaoNotFound) {
			t.Fatalf("expected ErrRequisicaoNotFound, got %v", err)
		}
	})
}

func TestRequisicaoUseCase_CancelAndConfirmReceipt(t *testing.T) {
	t.Run("cancel", func(t *testing.T) {
		hook := logtest.NewGlobal()
		defer hook.Reset()
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusCotando}, nil)
		d.repo.EXPECT().SaveTransition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(savedAsIs)
		d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), entities.StatusCancelado).Return(nil)

		res, err := uc.Cancel(context.Background(), "req-1", "admin")
		uc.Wait()
		if err != nil || res.Status != entities.StatusCancelado {
			t.Fatalf("expected cancelado, got %+v / %v", res, err)
		}
		if !loggedAt(hook, logrus.WarnLevel, "[requisicao][usecase] administrative cancel") {
			t.Fatalf("expected the cancel to be logged")
		}
	})

	t.Run("cancel of a closed requisicao is refused without writing", func(t *testing.T) {
		for _, status := range []entities.RequisicaoStatus{entities.StatusRecebido, entities.StatusRejeitado, entities.StatusCancelado} {
			hook := logtest.NewGlobal()
			uc, d := newRequisicaoUC(t)
			d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: status}, nil)
			d.repo.EXPECT().SaveTransition(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := uc.Cancel(context.Background(), "req-1", "admin")
			uc.Wait()
			if !errors.Is(err, lifecycle.ErrInvalidTransition) {
				t.Fatalf("%s: expected ErrInvalidTransition, got %v", status, err)
			}
			if loggedAt(hook, logrus.WarnLevel, "[requisicao][usecase] administrative cancel") {
				t.Fatalf("%s: refused cancel must not be logged as applied", status)
			}
			hook.Reset()
		}
	})

	t.Run("confirm receipt from wrong status", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusAprovado}, nil)

		_, err := uc.ConfirmReceipt(context.Background(), "req-1", "ana@acme.com")
		if !errors.Is(err, lifecycle.ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("confirm receipt", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusEmEntrega}, nil)
		d.repo.EXPECT().SaveTransition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(savedAsIs)
		d.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), entities.StatusRecebido).Return(nil)

		res, err := uc.ConfirmReceipt(context.Background(), "req-1", "ana@acme.com")
		uc.Wait()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.RecebidoEm == nil || !res.RecebidoEm.Equal(fixedNow) {
			t.Fatalf("expected recebido_em = now, got %v", res.RecebidoEm)
		}
	})
}

func TestRequisicaoUseCase_UpdateValor(t *testing.T) {
	t.Run("non positive", func(t *testing.T) {
		uc, _ := newRequisicaoUC(t)
		_, err := uc.UpdateValor(context.Background(), "req-1", 0, "staff-1")
		if !errors.Is(err, ErrInvalidValor) {
			t.Fatalf("expected ErrInvalidValor, got %v", err)
		}
	})

	t.Run("not editable", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusAprovado}, nil)

		_, err := uc.UpdateValor(context.Background(), "req-1", 100, "staff-1")
		if !errors.Is(err, ErrValorNotEditable) {
			t.Fatalf("expected ErrValorNotEditable, got %v", err)
		}
	})

	t.Run("unchanged value writes nothing", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusCotando, Valor: floatPtr(100)}, nil)

		res, err := uc.UpdateValor(context.Background(), "req-1", 100, "staff-1")
		if err != nil || *res.Valor != 100 {
			t.Fatalf("unexpected result %+v / %v", res, err)
		}
	})

	t.Run("records history", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusComprado, Valor: floatPtr(100)}, nil)
		d.repo.EXPECT().SaveValor(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, current, next entities.Requisicao, h entities.ValorHistorico) (entities.Requisicao, error) {
				if *current.Valor != 100 || *next.Valor != 120 || !next.UpdatedAt.Equal(fixedNow) {
					t.Fatalf("unexpected snapshots %+v -> %+v", current, next)
				}
				if h.ID == "" || h.RequisicaoID != "req-1" || h.ValorAnterior == nil || *h.ValorAnterior != 100 || h.ValorNovo != 120 || h.AlteradoPor != "staff-1" {
					t.Fatalf("unexpected history entry: %+v", h)
				}
				return next, nil
			},
		)

		res, err := uc.UpdateValor(context.Background(), "req-1", 120, "staff-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *res.Valor != 120 {
			t.Fatalf("expected valor 120, got %v", *res.Valor)
		}
	})

	t.Run("failed write commits neither valor nor history", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusCotando, Valor: floatPtr(200)}, nil)
		d.repo.EXPECT().SaveValor(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Requisicao{}, errors.New("ddb throttled"))

		res, err := uc.UpdateValor(context.Background(), "req-1", 250, "staff-1")
		if err == nil || err.Error() != "ddb throttled" {
			t.Fatalf("expected ddb throttled, got %v", err)
		}
		if res.ID != "" {
			t.Fatalf("expected no requisicao on failure, got %+v", res)
		}
	})

	t.Run("concurrent change", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusCotando}, nil)
		d.repo.EXPECT().SaveValor(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Requisicao{}, interfaces.ErrConcurrentUpdate)

		_, err := uc.UpdateValor(context.Background(), "req-1", 250, "staff-1")
		if !errors.Is(err, ErrRequisicaoConflict) {
			t.Fatalf("expected ErrRequisicaoConflict, got %v", err)
		}
	})
}

func TestRequisicaoUseCase_UpdateCompra(t *testing.T) {
	t.Run("closed requisicao rejects forecast", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusRecebido}, nil)

		previsao := fixedNow.Add(72 * time.Hour)
		_, err := uc.UpdateCompra(context.Background(), "req-1", UpdateCompraInput{PrevisaoEntrega: &previsao})
		if !errors.Is(err, ErrRequisicaoClosed) {
			t.Fatalf("expected ErrRequisicaoClosed, got %v", err)
		}
	})

	t.Run("partial update", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusCotando, CompradorNome: strPtr("Bia")}, nil)
		d.repo.EXPECT().SaveCompra(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(savedAsIs)

		res, err := uc.UpdateCompra(context.Background(), "req-1", UpdateCompraInput{FornecedorNome: strPtr(" Kalunga ")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Fornecedor() != "Kalunga" || *res.CompradorNome != "Bia" {
			t.Fatalf("unexpected result %+v", res)
		}
	})
}

func TestRequisicaoUseCase_ListValorHistorico(t *testing.T) {
	uc, d := newRequisicaoUC(t)
	d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1"}, nil)
	d.historico.EXPECT().ListByRequisicaoID(gomock.Any(), "req-1").Return([]entities.ValorHistorico{
		{ID: "h2", CreatedAt: fixedNow},
		{ID: "h1", CreatedAt: fixedNow.Add(-time.Hour)},
	}, nil)

	res, err := uc.ListValorHistorico(context.Background(), "req-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 2 || res[0].ID != "h1" {
		t.Fatalf("expected oldest first, got %+v", res)
	}
}

func TestRequisicaoUseCase_EvaluateSLA(t *testing.T) {
	uc, d := newRequisicaoUC(t)
	previsao := fixedNow.Add(-48 * time.Hour)
	d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusComprado, PrevisaoEntrega: &previsao}, nil)

	_, info, err := uc.EvaluateSLA(context.Background(), "req-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !info.IsOverdue || info.OverdueBy != 2 {
		t.Fatalf("expected overdue by 2, got %+v", info)
	}
}

func TestRequisicaoUseCase_Delete(t *testing.T) {
	t.Run("only cancelled", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusPendente}, nil)

		if err := uc.Delete(context.Background(), "req-1"); !errors.Is(err, ErrDeleteNotAllowed) {
			t.Fatalf("expected ErrDeleteNotAllowed, got %v", err)
		}
	})

	t.Run("deletes history then requisicao", func(t *testing.T) {
		uc, d := newRequisicaoUC(t)
		d.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requisicao{ID: "req-1", Status: entities.StatusCancelado}, nil)
		gomock.InOrder(
			d.historico.EXPECT().DeleteByRequisicaoID(gomock.Any(), "req-1").Return(nil),
			d.repo.EXPECT().Delete(gomock.Any(), "req-1").Return(nil),
		)

		if err := uc.Delete(context.Background(), "req-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
