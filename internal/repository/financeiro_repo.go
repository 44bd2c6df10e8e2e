package repository

import (
	"context"

	"github.com/Alexdguimaraes/controle-faccao/internal/dto"
	"github.com/Alexdguimaraes/controle-faccao/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TituloComCliente is the typed projection of a receivable joined with the
// owning client's name (financeiro → remessa → cliente).
type TituloComCliente struct {
	ID              int64
	IDRemessa       string `gorm:"column:id_remessa"`
	Quantidade      int
	ValorReceber    decimal.Decimal
	DataEntrega     string
	DataVencimento  string
	Status          string
	Banco           *string
	DataRecebimento *string
	ClienteNome     string
}

// FinanceiroRepository defines the data access contract for receivables.
type FinanceiroRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Financeiro, error)
	ListTitulos(ctx context.Context, filter dto.FinanceiroFilter) ([]TituloComCliente, error)
	// Totais soma valor_receber por status, opcionalmente restrito às OPs de
	// um cliente. Conjuntos vazios retornam zero, nunca erro.
	Totais(ctx context.Context, idCliente string) (pendente, recebido decimal.Decimal, err error)
	// RecebidoPeriodo soma os títulos recebidos pelo banco no intervalo
	// semiaberto [inicio, fim) de datas YYYY-MM-DD.
	RecebidoPeriodo(ctx context.Context, banco, inicio, fim string) (decimal.Decimal, error)
	// Liquidar marca o título como recebido, guardado em status = Pendente.
	// Returns the number of rows updated: 0 means the título was not pending.
	Liquidar(ctx context.Context, id int64, banco, dataRecebimento string) (int64, error)

	// Used inside transactions — callers must pass the tx instance
	CreateTx(tx *gorm.DB, f *model.Financeiro) error

	DB() *gorm.DB
}

type financeiroRepo struct{ db *gorm.DB }

func NewFinanceiroRepository(db *gorm.DB) FinanceiroRepository { return &financeiroRepo{db: db} }

func (r *financeiroRepo) DB() *gorm.DB { return r.db }

func (r *financeiroRepo) FindByID(ctx context.Context, id int64) (*model.Financeiro, error) {
	var f model.Financeiro
	err := r.db.WithContext(ctx).First(&f, id).Error
	return &f, err
}

func (r *financeiroRepo) CreateTx(tx *gorm.DB, f *model.Financeiro) error {
	return tx.Create(f).Error
}

func (r *financeiroRepo) ListTitulos(ctx context.Context, filter dto.FinanceiroFilter) ([]TituloComCliente, error) {
	var titulos []TituloComCliente

	q := r.db.WithContext(ctx).Model(&model.Financeiro{}).
		Select(`financeiro.id, financeiro.id_remessa, financeiro.quantidade,
			financeiro.valor_receber, financeiro.data_entrega, financeiro.data_vencimento,
			financeiro.status, financeiro.banco, financeiro.data_recebimento,
			COALESCE(clientes.nome, '') AS cliente_nome`).
		Joins("LEFT JOIN remessas ON remessas.id_remessa = financeiro.id_remessa").
		Joins("LEFT JOIN clientes ON clientes.id_cliente = remessas.id_cliente")

	if filter.IDCliente != "" {
		q = q.Where("remessas.id_cliente = ?", filter.IDCliente)
	}
	if filter.Status != "" {
		q = q.Where("financeiro.status = ?", filter.Status)
	}

	err := q.Order("financeiro.data_vencimento ASC, financeiro.id ASC").Scan(&titulos).Error
	return titulos, err
}

func (r *financeiroRepo) Totais(ctx context.Context, idCliente string) (decimal.Decimal, decimal.Decimal, error) {
	var row struct {
		Pendente decimal.Decimal
		Recebido decimal.Decimal
	}

	q := r.db.WithContext(ctx).Model(&model.Financeiro{}).
		Select(`COALESCE(SUM(CASE WHEN financeiro.status = ? THEN financeiro.valor_receber ELSE 0 END), 0) AS pendente,
			COALESCE(SUM(CASE WHEN financeiro.status = ? THEN financeiro.valor_receber ELSE 0 END), 0) AS recebido`,
			model.TituloPendente, model.TituloRecebido).
		Joins("LEFT JOIN remessas ON remessas.id_remessa = financeiro.id_remessa")

	if idCliente != "" {
		q = q.Where("remessas.id_cliente = ?", idCliente)
	}

	if err := q.Scan(&row).Error; err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return row.Pendente, row.Recebido, nil
}

func (r *financeiroRepo) RecebidoPeriodo(ctx context.Context, banco, inicio, fim string) (decimal.Decimal, error) {
	var row struct{ Total decimal.Decimal }
	err := r.db.WithContext(ctx).Model(&model.Financeiro{}).
		Select("COALESCE(SUM(valor_receber), 0) AS total").
		Where("status = ? AND banco = ? AND data_recebimento >= ? AND data_recebimento < ?",
			model.TituloRecebido, banco, inicio, fim).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

func (r *financeiroRepo) Liquidar(ctx context.Context, id int64, banco, dataRecebimento string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Financeiro{}).
		Where("id = ? AND status = ?", id, model.TituloPendente).
		Updates(map[string]interface{}{
			"status":           model.TituloRecebido,
			"banco":            banco,
			"data_recebimento": dataRecebimento,
		})
	return res.RowsAffected, res.Error
}
