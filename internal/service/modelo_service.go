package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Alexdguimaraes/controle-faccao/internal/apierror"
	"github.com/Alexdguimaraes/controle-faccao/internal/dto"
	"github.com/Alexdguimaraes/controle-faccao/internal/model"
	"github.com/Alexdguimaraes/controle-faccao/internal/repository"

	"gorm.io/gorm"
)

// ModeloService mantém o catálogo de custo por modelo. O custo daqui só
// pré-preenche a criação de OP — a remessa grava a própria cópia.
type ModeloService interface {
	Cadastrar(ctx context.Context, req dto.CadastrarModeloRequest) (*dto.ModeloResponse, error)
	ListarTodos(ctx context.Context) ([]dto.ModeloResponse, error)
	BuscarPorNome(ctx context.Context, nome string) (*dto.ModeloResponse, error)
}

type modeloService struct {
	repo repository.ModeloRepository
}

func NewModeloService(repo repository.ModeloRepository) ModeloService {
	return &modeloService{repo: repo}
}

func (s *modeloService) Cadastrar(ctx context.Context, req dto.CadastrarModeloRequest) (*dto.ModeloResponse, error) {
	nome := strings.TrimSpace(req.Modelo)
	if nome == "" {
		return nil, apierror.Validation("modelo é obrigatório")
	}
	if req.CustoUnitario.IsNegative() {
		return nil, apierror.Validation("custo unitário não pode ser negativo")
	}

	if _, err := s.repo.FindByNome(ctx, nome); err == nil {
		return nil, apierror.InvalidState(fmt.Sprintf("modelo %s já cadastrado", nome))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Persistence("erro ao consultar modelo", err)
	}

	m := model.Modelo{Modelo: nome, CustoUnitario: req.CustoUnitario}
	if err := s.repo.Create(ctx, &m); err != nil {
		return nil, apierror.Persistence("erro ao cadastrar modelo", err)
	}
	return &dto.ModeloResponse{Modelo: m.Modelo, CustoUnitario: m.CustoUnitario}, nil
}

func (s *modeloService) ListarTodos(ctx context.Context) ([]dto.ModeloResponse, error) {
	modelos, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Persistence("erro ao listar modelos", err)
	}
	out := make([]dto.ModeloResponse, 0, len(modelos))
	for _, m := range modelos {
		out = append(out, dto.ModeloResponse{Modelo: m.Modelo, CustoUnitario: m.CustoUnitario})
	}
	return out, nil
}

func (s *modeloService) BuscarPorNome(ctx context.Context, nome string) (*dto.ModeloResponse, error) {
	m, err := s.repo.FindByNome(ctx, nome)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound(fmt.Sprintf("modelo %s não encontrado", nome))
		}
		return nil, apierror.Persistence("erro ao buscar modelo", err)
	}
	return &dto.ModeloResponse{Modelo: m.Modelo, CustoUnitario: m.CustoUnitario}, nil
}
