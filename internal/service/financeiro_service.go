package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Alexdguimaraes/controle-faccao/internal/apierror"
	"github.com/Alexdguimaraes/controle-faccao/internal/dto"
	"github.com/Alexdguimaraes/controle-faccao/internal/model"
	"github.com/Alexdguimaraes/controle-faccao/internal/repository"

	"gorm.io/gorm"
)

type FinanceiroService interface {
	ListarTitulos(ctx context.Context, filter dto.FinanceiroFilter) ([]dto.TituloResponse, error)
	GetTotais(ctx context.Context, idCliente string) (*dto.TotaisResponse, error)
	GetRecebidoMensal(ctx context.Context, banco string, ano, mes int) (*dto.RecebidoMensalResponse, error)
	Liquidar(ctx context.Context, id int64, banco string) (*dto.TituloResponse, error)
}

type financeiroService struct {
	repo repository.FinanceiroRepository
}

func NewFinanceiroService(repo repository.FinanceiroRepository) FinanceiroService {
	return &financeiroService{repo: repo}
}

func (s *financeiroService) ListarTitulos(ctx context.Context, filter dto.FinanceiroFilter) ([]dto.TituloResponse, error) {
	titulos, err := s.repo.ListTitulos(ctx, filter)
	if err != nil {
		return nil, apierror.Persistence("erro ao listar títulos", err)
	}

	out := make([]dto.TituloResponse, 0, len(titulos))
	for _, t := range titulos {
		out = append(out, dto.TituloResponse{
			ID:              t.ID,
			IDRemessa:       t.IDRemessa,
			Quantidade:      t.Quantidade,
			ValorReceber:    t.ValorReceber,
			DataEntrega:     t.DataEntrega,
			DataVencimento:  t.DataVencimento,
			Status:          t.Status,
			Banco:           t.Banco,
			DataRecebimento: t.DataRecebimento,
			ClienteNome:     t.ClienteNome,
		})
	}
	return out, nil
}

// GetTotais nunca erra por ausência de títulos: sem linhas, os dois totais
// saem zerados.
func (s *financeiroService) GetTotais(ctx context.Context, idCliente string) (*dto.TotaisResponse, error) {
	pendente, recebido, err := s.repo.Totais(ctx, idCliente)
	if err != nil {
		return nil, apierror.Persistence("erro ao calcular totais", err)
	}
	return &dto.TotaisResponse{Pendente: pendente, Recebido: recebido}, nil
}

// GetRecebidoMensal soma os títulos recebidos pelo banco no intervalo
// semiaberto [ano-mes-01, mês seguinte-01). Dezembro vira janeiro do ano
// seguinte; o limite semiaberto dispensa saber quantos dias o mês tem.
func (s *financeiroService) GetRecebidoMensal(ctx context.Context, banco string, ano, mes int) (*dto.RecebidoMensalResponse, error) {
	if banco == "" {
		return nil, apierror.Validation("banco é obrigatório")
	}
	if mes < 1 || mes > 12 {
		return nil, apierror.Validation("mês deve estar entre 1 e 12")
	}
	if ano <= 0 {
		return nil, apierror.Validation("ano inválido")
	}

	inicio := fmt.Sprintf("%04d-%02d-01", ano, mes)
	var fim string
	if mes == 12 {
		fim = fmt.Sprintf("%04d-01-01", ano+1)
	} else {
		fim = fmt.Sprintf("%04d-%02d-01", ano, mes+1)
	}

	total, err := s.repo.RecebidoPeriodo(ctx, banco, inicio, fim)
	if err != nil {
		return nil, apierror.Persistence("erro ao somar recebidos do período", err)
	}
	return &dto.RecebidoMensalResponse{Banco: banco, Ano: ano, Mes: mes, Total: total}, nil
}

// Liquidar é a transição única Pendente → Recebido. Liquidar um título já
// recebido é sucesso idempotente: banco e data do primeiro recebimento são
// preservados — a camada de apresentação reenvia em rede instável e o
// reenvio não pode trocar o canal nem a data.
func (s *financeiroService) Liquidar(ctx context.Context, id int64, banco string) (*dto.TituloResponse, error) {
	if banco == "" {
		return nil, apierror.Validation("banco é obrigatório")
	}

	titulo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound(fmt.Sprintf("título %d não encontrado", id))
		}
		return nil, apierror.Persistence("erro ao buscar título", err)
	}

	if titulo.Status == model.TituloRecebido {
		return financeiroToResponse(titulo), nil
	}

	rows, err := s.repo.Liquidar(ctx, id, banco, hoje())
	if err != nil {
		return nil, apierror.Persistence("erro ao liquidar título", err)
	}
	if rows == 0 {
		// Corrida com outra liquidação: se o título já está recebido, o
		// resultado idempotente vale; qualquer outro estado é anômalo.
		atual, ferr := s.repo.FindByID(ctx, id)
		if ferr == nil && atual.Status == model.TituloRecebido {
			return financeiroToResponse(atual), nil
		}
		return nil, apierror.InvalidState(fmt.Sprintf("título %d não está pendente", id))
	}

	atual, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.Persistence("erro ao reler título liquidado", err)
	}
	return financeiroToResponse(atual), nil
}

// ── Mapeamento ────────────────────────────────────────────────────────────────

func tituloToResponse(f *model.Financeiro) dto.TituloResponse {
	return *financeiroToResponse(f)
}

func financeiroToResponse(f *model.Financeiro) *dto.TituloResponse {
	return &dto.TituloResponse{
		ID:              f.ID,
		IDRemessa:       f.IDRemessa,
		Quantidade:      f.Quantidade,
		ValorReceber:    f.ValorReceber,
		DataEntrega:     f.DataEntrega,
		DataVencimento:  f.DataVencimento,
		Status:          f.Status,
		Banco:           f.Banco,
		DataRecebimento: f.DataRecebimento,
	}
}
