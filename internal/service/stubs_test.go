package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/Alexdguimaraes/controle-faccao/internal/dto"
	"github.com/Alexdguimaraes/controle-faccao/internal/model"
	"github.com/Alexdguimaraes/controle-faccao/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────
// In-memory repositories. DB() returns nil, so runTx executes the callback
// directly (unit test mode).

type stubClienteRepo struct {
	clientes map[string]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[string]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	r.clientes[c.IDCliente] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id string) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *stubClienteRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.clientes)), nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// stubConfigRepo holds the OP counter in memory.
type stubConfigRepo struct {
	contador int
}

func (r *stubConfigRepo) NextRemessaIDTx(_ *gorm.DB) (string, error) {
	r.contador++
	return fmt.Sprintf("OP-%04d", r.contador), nil
}

var _ repository.ConfigRepository = (*stubConfigRepo)(nil)

// stubRemessaRepo honors the compare-and-swap contract of UpdateSaldoTx.
type stubRemessaRepo struct {
	remessas map[string]*model.Remessa
}

func newStubRemessaRepo() *stubRemessaRepo {
	return &stubRemessaRepo{remessas: make(map[string]*model.Remessa)}
}

func (r *stubRemessaRepo) DB() *gorm.DB { return nil }

func (r *stubRemessaRepo) FindByID(_ context.Context, id string) (*model.Remessa, error) {
	rem, ok := r.remessas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *rem
	return &cp, nil
}

func (r *stubRemessaRepo) FindByIDTx(_ *gorm.DB, id string) (*model.Remessa, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubRemessaRepo) List(_ context.Context, filter dto.RemessaFilter) ([]model.Remessa, error) {
	var out []model.Remessa
	for _, rem := range r.remessas {
		if filter.IDCliente != "" && rem.IDCliente != filter.IDCliente {
			continue
		}
		if filter.Status != "" && rem.Status != filter.Status {
			continue
		}
		out = append(out, *rem)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DataCriacao > out[j].DataCriacao })
	return out, nil
}

func (r *stubRemessaRepo) ListAtrasadas(_ context.Context, hoje string) ([]model.Remessa, error) {
	var out []model.Remessa
	for _, rem := range r.remessas {
		if rem.DataPrevista < hoje && rem.SaldoMontar > 0 && rem.Status != model.RemessaEntregue {
			out = append(out, *rem)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DataPrevista < out[j].DataPrevista })
	return out, nil
}

func (r *stubRemessaRepo) Estatisticas(_ context.Context) (*repository.RemessaEstatisticas, error) {
	stats := &repository.RemessaEstatisticas{ValorSaldo: decimal.Zero}
	for _, rem := range r.remessas {
		if rem.SaldoMontar > 0 {
			stats.TotalOps++
			stats.TotalSaldo += int64(rem.SaldoMontar)
			stats.ValorSaldo = stats.ValorSaldo.Add(rem.SaldoValor())
		}
	}
	return stats, nil
}

func (r *stubRemessaRepo) CreateTx(_ *gorm.DB, rem *model.Remessa) error {
	cp := *rem
	r.remessas[rem.IDRemessa] = &cp
	return nil
}

func (r *stubRemessaRepo) UpdateSaldoTx(_ *gorm.DB, id string, saldoAtual, novoSaldo, novoEntregue int, status string) (int64, error) {
	rem, ok := r.remessas[id]
	if !ok || rem.SaldoMontar != saldoAtual {
		return 0, nil
	}
	rem.SaldoMontar = novoSaldo
	rem.Entregue = novoEntregue
	rem.Status = status
	return 1, nil
}

var _ repository.RemessaRepository = (*stubRemessaRepo)(nil)

// entregaConcorrenteRepo simula outra entrega gravada entre a leitura do
// saldo e o update guardado: enquanto houver interferências restantes, aplica
// a entrega externa direto no estado antes de delegar, de modo que o
// compare-and-swap da tentativa corrente encontre o saldo já alterado.
type entregaConcorrenteRepo struct {
	*stubRemessaRepo
	idRemessa  string
	quantidade int
	restantes  int
}

func (r *entregaConcorrenteRepo) UpdateSaldoTx(tx *gorm.DB, id string, saldoAtual, novoSaldo, novoEntregue int, status string) (int64, error) {
	if r.restantes > 0 {
		r.restantes--
		rem := r.remessas[r.idRemessa]
		efetiva := r.quantidade
		if efetiva > rem.SaldoMontar {
			efetiva = rem.SaldoMontar
		}
		rem.SaldoMontar -= efetiva
		rem.Entregue += efetiva
		if rem.SaldoMontar == 0 {
			rem.Status = model.RemessaEntregue
		}
	}
	return r.stubRemessaRepo.UpdateSaldoTx(tx, id, saldoAtual, novoSaldo, novoEntregue, status)
}

var _ repository.RemessaRepository = (*entregaConcorrenteRepo)(nil)

// stubFinanceiroRepo keeps titles in insertion order and knows which client
// owns each remessa so Totais can scope by client like the SQL join does.
type stubFinanceiroRepo struct {
	titulos   map[int64]*model.Financeiro
	seq       int64
	remessaDe map[string]string // id_remessa → id_cliente
	nomeDe    map[string]string // id_cliente → nome
}

func newStubFinanceiroRepo() *stubFinanceiroRepo {
	return &stubFinanceiroRepo{
		titulos:   make(map[int64]*model.Financeiro),
		remessaDe: make(map[string]string),
		nomeDe:    make(map[string]string),
	}
}

func (r *stubFinanceiroRepo) DB() *gorm.DB { return nil }

func (r *stubFinanceiroRepo) CreateTx(_ *gorm.DB, f *model.Financeiro) error {
	r.seq++
	f.ID = r.seq
	cp := *f
	r.titulos[f.ID] = &cp
	return nil
}

func (r *stubFinanceiroRepo) FindByID(_ context.Context, id int64) (*model.Financeiro, error) {
	f, ok := r.titulos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *stubFinanceiroRepo) ListTitulos(_ context.Context, filter dto.FinanceiroFilter) ([]repository.TituloComCliente, error) {
	var out []repository.TituloComCliente
	for _, f := range r.titulos {
		idCliente := r.remessaDe[f.IDRemessa]
		if filter.IDCliente != "" && idCliente != filter.IDCliente {
			continue
		}
		if filter.Status != "" && f.Status != filter.Status {
			continue
		}
		out = append(out, repository.TituloComCliente{
			ID:              f.ID,
			IDRemessa:       f.IDRemessa,
			Quantidade:      f.Quantidade,
			ValorReceber:    f.ValorReceber,
			DataEntrega:     f.DataEntrega,
			DataVencimento:  f.DataVencimento,
			Status:          f.Status,
			Banco:           f.Banco,
			DataRecebimento: f.DataRecebimento,
			ClienteNome:     r.nomeDe[idCliente],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DataVencimento != out[j].DataVencimento {
			return out[i].DataVencimento < out[j].DataVencimento
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *stubFinanceiroRepo) Totais(_ context.Context, idCliente string) (decimal.Decimal, decimal.Decimal, error) {
	pendente, recebido := decimal.Zero, decimal.Zero
	for _, f := range r.titulos {
		if idCliente != "" && r.remessaDe[f.IDRemessa] != idCliente {
			continue
		}
		switch f.Status {
		case model.TituloPendente:
			pendente = pendente.Add(f.ValorReceber)
		case model.TituloRecebido:
			recebido = recebido.Add(f.ValorReceber)
		}
	}
	return pendente, recebido, nil
}

func (r *stubFinanceiroRepo) RecebidoPeriodo(_ context.Context, banco, inicio, fim string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, f := range r.titulos {
		if f.Status != model.TituloRecebido || f.Banco == nil || *f.Banco != banco {
			continue
		}
		if f.DataRecebimento == nil || *f.DataRecebimento < inicio || *f.DataRecebimento >= fim {
			continue
		}
		total = total.Add(f.ValorReceber)
	}
	return total, nil
}

func (r *stubFinanceiroRepo) Liquidar(_ context.Context, id int64, banco, dataRecebimento string) (int64, error) {
	f, ok := r.titulos[id]
	if !ok || f.Status != model.TituloPendente {
		return 0, nil
	}
	f.Status = model.TituloRecebido
	f.Banco = &banco
	f.DataRecebimento = &dataRecebimento
	return 1, nil
}

var _ repository.FinanceiroRepository = (*stubFinanceiroRepo)(nil)
