package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Alexdguimaraes/controle-faccao/internal/apierror"
	"github.com/Alexdguimaraes/controle-faccao/internal/dto"
	"github.com/Alexdguimaraes/controle-faccao/internal/model"
	"github.com/Alexdguimaraes/controle-faccao/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RemessaService interface {
	Criar(ctx context.Context, req dto.CriarRemessaRequest) (*dto.RemessaResponse, error)
	RegistrarEntrega(ctx context.Context, idRemessa string, req dto.RegistrarEntregaRequest) (*dto.EntregaResponse, error)
	Listar(ctx context.Context, filter dto.RemessaFilter) ([]dto.RemessaResponse, error)
	BuscarPorID(ctx context.Context, id string) (*dto.RemessaResponse, error)
	ListarAtrasadas(ctx context.Context) ([]dto.RemessaResponse, error)
	Estatisticas(ctx context.Context) (*dto.EstatisticasResponse, error)
}

type remessaService struct {
	repo        repository.RemessaRepository
	configRepo  repository.ConfigRepository
	finRepo     repository.FinanceiroRepository
	clienteRepo repository.ClienteRepository
}

func NewRemessaService(
	repo repository.RemessaRepository,
	configRepo repository.ConfigRepository,
	finRepo repository.FinanceiroRepository,
	clienteRepo repository.ClienteRepository,
) RemessaService {
	return &remessaService{
		repo:        repo,
		configRepo:  configRepo,
		finRepo:     finRepo,
		clienteRepo: clienteRepo,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// hoje / emDias: datas em texto YYYY-MM-DD, como todo o restante do schema.
func hoje() string { return time.Now().Format("2006-01-02") }

func emDias(dias int) string { return time.Now().AddDate(0, 0, dias).Format("2006-01-02") }

// ── Criar ─────────────────────────────────────────────────────────────────────
// Gera o próximo id OP-%04d e insere a remessa na MESMA transação: se o
// insert falhar o contador não avança, e um contador avançado sempre tem a
// OP correspondente gravada.

func (s *remessaService) Criar(ctx context.Context, req dto.CriarRemessaRequest) (*dto.RemessaResponse, error) {
	if req.IDCliente == "" {
		return nil, apierror.Validation("id_cliente é obrigatório")
	}
	if req.Modelo == "" {
		return nil, apierror.Validation("modelo é obrigatório")
	}
	if req.Quantidade <= 0 {
		return nil, apierror.Validation("quantidade deve ser maior que zero")
	}
	if req.CustoUnitario.IsNegative() {
		return nil, apierror.Validation("custo unitário não pode ser negativo")
	}

	if _, err := s.clienteRepo.FindByID(ctx, req.IDCliente); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound(fmt.Sprintf("cliente %s não encontrado", req.IDCliente))
		}
		return nil, apierror.Persistence("erro ao consultar cliente", err)
	}

	prazo := req.PrazoDias
	if prazo <= 0 {
		prazo = model.PrazoPadraoDias
	}

	var remessa model.Remessa
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		id, err := s.configRepo.NextRemessaIDTx(tx)
		if err != nil {
			return err
		}

		remessa = model.Remessa{
			IDRemessa:      id,
			IDCliente:      req.IDCliente,
			Modelo:         req.Modelo,
			Quantidade:     req.Quantidade,
			CustoUnitario:  req.CustoUnitario,
			SaldoMontar:    req.Quantidade,
			Entregue:       0,
			PrazoDias:      prazo,
			DataCriacao:    hoje(),
			ClienteDestino: req.ClienteDestino,
			DataPrevista:   emDias(prazo),
			Status:         model.RemessaEmAberto,
		}
		return s.repo.CreateTx(tx, &remessa)
	})
	if txErr != nil {
		return nil, apierror.Persistence("erro ao criar OP", txErr)
	}

	return remessaToResponse(&remessa), nil
}

// ── RegistrarEntrega ──────────────────────────────────────────────────────────
// A quantidade efetiva é min(pedida, saldo): quem pede além do saldo não
// recebe erro, a entrega é reduzida ao restante (leniência documentada).
// Baixa do saldo e criação do título são uma unidade atômica — em falha,
// nenhum dos dois fica visível.
//
// A baixa é um compare-and-swap guardado no saldo lido: se outra entrega
// alterou o saldo entre a leitura e o update, a transação é refeita com o
// saldo novo, evitando baixa dupla do mesmo saldo.

const maxEntregaTentativas = 3

var errSaldoDesatualizado = errors.New("saldo alterado por outra entrega")

func (s *remessaService) RegistrarEntrega(ctx context.Context, idRemessa string, req dto.RegistrarEntregaRequest) (*dto.EntregaResponse, error) {
	if req.Quantidade <= 0 {
		return nil, apierror.Validation("quantidade deve ser maior que zero")
	}

	for tentativa := 0; tentativa < maxEntregaTentativas; tentativa++ {
		remessa, err := s.repo.FindByID(ctx, idRemessa)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.NotFound(fmt.Sprintf("OP %s não encontrada", idRemessa))
			}
			return nil, apierror.Persistence("erro ao buscar OP", err)
		}

		efetiva := req.Quantidade
		if efetiva > remessa.SaldoMontar {
			efetiva = remessa.SaldoMontar
		}

		novoSaldo := remessa.SaldoMontar - efetiva
		novoEntregue := remessa.Entregue + efetiva
		status := model.RemessaEmAberto
		if novoSaldo == 0 {
			status = model.RemessaEntregue
		}

		// Valor pelo custo gravado na OP, nunca pelo preço atual do modelo.
		valor := remessa.CustoUnitario.Mul(decimal.NewFromInt(int64(efetiva)))

		titulo := model.Financeiro{
			IDRemessa:      idRemessa,
			Quantidade:     efetiva,
			ValorReceber:   valor,
			DataEntrega:    hoje(),
			DataVencimento: emDias(model.PrazoVencimentoDias),
			Status:         model.TituloPendente,
		}

		txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
			rows, err := s.repo.UpdateSaldoTx(tx, idRemessa, remessa.SaldoMontar, novoSaldo, novoEntregue, status)
			if err != nil {
				return err
			}
			if rows == 0 {
				return errSaldoDesatualizado
			}
			return s.finRepo.CreateTx(tx, &titulo)
		})
		if errors.Is(txErr, errSaldoDesatualizado) {
			continue
		}
		if txErr != nil {
			return nil, apierror.Persistence("erro ao registrar entrega", txErr)
		}

		return &dto.EntregaResponse{
			IDRemessa:  idRemessa,
			Quantidade: efetiva,
			Finalizada: novoSaldo == 0,
			SaldoAtual: novoSaldo,
			Entregue:   novoEntregue,
			Status:     status,
			Valor:      valor,
			Titulo:     tituloToResponse(&titulo),
		}, nil
	}

	return nil, apierror.Persistence("entregas concorrentes demais para a OP "+idRemessa, nil)
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func (s *remessaService) Listar(ctx context.Context, filter dto.RemessaFilter) ([]dto.RemessaResponse, error) {
	remessas, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apierror.Persistence("erro ao listar OPs", err)
	}
	return remessasToResponse(remessas), nil
}

func (s *remessaService) BuscarPorID(ctx context.Context, id string) (*dto.RemessaResponse, error) {
	remessa, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound(fmt.Sprintf("OP %s não encontrada", id))
		}
		return nil, apierror.Persistence("erro ao buscar OP", err)
	}
	return remessaToResponse(remessa), nil
}

// ListarAtrasadas é uma projeção somente-leitura: atraso é calculado pela
// data, nunca gravado como status.
func (s *remessaService) ListarAtrasadas(ctx context.Context) ([]dto.RemessaResponse, error) {
	remessas, err := s.repo.ListAtrasadas(ctx, hoje())
	if err != nil {
		return nil, apierror.Persistence("erro ao listar OPs atrasadas", err)
	}
	return remessasToResponse(remessas), nil
}

func (s *remessaService) Estatisticas(ctx context.Context) (*dto.EstatisticasResponse, error) {
	stats, err := s.repo.Estatisticas(ctx)
	if err != nil {
		return nil, apierror.Persistence("erro ao calcular estatísticas", err)
	}
	return &dto.EstatisticasResponse{
		TotalOps:   stats.TotalOps,
		TotalSaldo: stats.TotalSaldo,
		ValorSaldo: stats.ValorSaldo,
	}, nil
}

// ── Mapeamento ────────────────────────────────────────────────────────────────

func remessaToResponse(r *model.Remessa) *dto.RemessaResponse {
	return &dto.RemessaResponse{
		IDRemessa:      r.IDRemessa,
		IDCliente:      r.IDCliente,
		Modelo:         r.Modelo,
		Quantidade:     r.Quantidade,
		CustoUnitario:  r.CustoUnitario,
		SaldoMontar:    r.SaldoMontar,
		Entregue:       r.Entregue,
		PrazoDias:      r.PrazoDias,
		DataCriacao:    r.DataCriacao,
		ClienteDestino: r.ClienteDestino,
		DataPrevista:   r.DataPrevista,
		Status:         r.Status,
		ValorTotal:     r.ValorTotal(),
		SaldoValor:     r.SaldoValor(),
	}
}

func remessasToResponse(remessas []model.Remessa) []dto.RemessaResponse {
	out := make([]dto.RemessaResponse, 0, len(remessas))
	for i := range remessas {
		out = append(out, *remessaToResponse(&remessas[i]))
	}
	return out
}
