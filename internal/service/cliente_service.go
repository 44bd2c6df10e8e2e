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

type ClienteService interface {
	Cadastrar(ctx context.Context, req dto.CadastrarClienteRequest) (*dto.ClienteResponse, error)
	ListarTodos(ctx context.Context) ([]dto.ClienteResponse, error)
	BuscarPorID(ctx context.Context, id string) (*dto.ClienteResponse, error)
	Resumo(ctx context.Context) (*dto.ResumoClientesResponse, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

// Cadastrar registra um cliente. O identificador é normalizado para
// maiúsculas; depois do cadastro o registro é imutável neste núcleo.
func (s *clienteService) Cadastrar(ctx context.Context, req dto.CadastrarClienteRequest) (*dto.ClienteResponse, error) {
	id := strings.ToUpper(strings.TrimSpace(req.IDCliente))
	if id == "" {
		return nil, apierror.Validation("id_cliente é obrigatório")
	}
	if strings.TrimSpace(req.Nome) == "" {
		return nil, apierror.Validation("nome é obrigatório")
	}

	if _, err := s.repo.FindByID(ctx, id); err == nil {
		return nil, apierror.InvalidState(fmt.Sprintf("cliente %s já cadastrado", id))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Persistence("erro ao consultar cliente", err)
	}

	banco := req.BancoPreferencial
	if banco == "" {
		banco = model.BancoPadrao
	}

	cliente := model.Cliente{
		IDCliente:         id,
		Nome:              req.Nome,
		Telefone:          req.Telefone,
		Email:             req.Email,
		BancoPreferencial: banco,
	}
	if err := s.repo.Create(ctx, &cliente); err != nil {
		return nil, apierror.Persistence("erro ao cadastrar cliente", err)
	}

	return clienteToResponse(&cliente), nil
}

func (s *clienteService) ListarTodos(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Persistence("erro ao listar clientes", err)
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		out = append(out, *clienteToResponse(&clientes[i]))
	}
	return out, nil
}

func (s *clienteService) BuscarPorID(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, strings.ToUpper(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound(fmt.Sprintf("cliente %s não encontrado", id))
		}
		return nil, apierror.Persistence("erro ao buscar cliente", err)
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Resumo(ctx context.Context) (*dto.ResumoClientesResponse, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, apierror.Persistence("erro ao contar clientes", err)
	}
	return &dto.ResumoClientesResponse{Total: total}, nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		IDCliente:         c.IDCliente,
		Nome:              c.Nome,
		Telefone:          c.Telefone,
		Email:             c.Email,
		BancoPreferencial: c.BancoPreferencial,
	}
}
