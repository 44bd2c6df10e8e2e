package repository

import (
	"context"

	"github.com/Alexdguimaraes/controle-faccao/internal/dto"
	"github.com/Alexdguimaraes/controle-faccao/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RemessaEstatisticas agrega as OPs com saldo em aberto.
type RemessaEstatisticas struct {
	TotalOps   int64
	TotalSaldo int64
	ValorSaldo decimal.Decimal
}

// RemessaRepository defines the data access contract for OPs.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via mocks.
type RemessaRepository interface {
	FindByID(ctx context.Context, id string) (*model.Remessa, error)
	List(ctx context.Context, filter dto.RemessaFilter) ([]model.Remessa, error)
	// ListAtrasadas: data_prevista < hoje, saldo em aberto, não entregue.
	// Ordered by data_prevista ascending — most overdue first.
	ListAtrasadas(ctx context.Context, hoje string) ([]model.Remessa, error)
	Estatisticas(ctx context.Context) (*RemessaEstatisticas, error)

	// Used inside transactions — callers must pass the tx instance
	CreateTx(tx *gorm.DB, r *model.Remessa) error
	FindByIDTx(tx *gorm.DB, id string) (*model.Remessa, error)
	// UpdateSaldoTx applies the delivery as a compare-and-swap guarded on the
	// current saldo. Returns the number of rows updated: 0 means another
	// registration changed the balance first and the caller must retry.
	UpdateSaldoTx(tx *gorm.DB, id string, saldoAtual, novoSaldo, novoEntregue int, status string) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type remessaRepo struct{ db *gorm.DB }

func NewRemessaRepository(db *gorm.DB) RemessaRepository { return &remessaRepo{db: db} }

func (r *remessaRepo) DB() *gorm.DB { return r.db }

func (r *remessaRepo) FindByID(ctx context.Context, id string) (*model.Remessa, error) {
	var rem model.Remessa
	err := r.db.WithContext(ctx).Where("id_remessa = ?", id).First(&rem).Error
	return &rem, err
}

func (r *remessaRepo) FindByIDTx(tx *gorm.DB, id string) (*model.Remessa, error) {
	var rem model.Remessa
	err := tx.Where("id_remessa = ?", id).First(&rem).Error
	return &rem, err
}

func (r *remessaRepo) List(ctx context.Context, filter dto.RemessaFilter) ([]model.Remessa, error) {
	var remessas []model.Remessa

	q := r.db.WithContext(ctx).Model(&model.Remessa{})
	if filter.IDCliente != "" {
		q = q.Where("id_cliente = ?", filter.IDCliente)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	err := q.Order("data_criacao DESC, id_remessa DESC").Find(&remessas).Error
	return remessas, err
}

func (r *remessaRepo) ListAtrasadas(ctx context.Context, hoje string) ([]model.Remessa, error) {
	var remessas []model.Remessa
	err := r.db.WithContext(ctx).
		Where("data_prevista < ? AND saldo_montar > 0 AND status <> ?", hoje, model.RemessaEntregue).
		Order("data_prevista ASC").
		Find(&remessas).Error
	return remessas, err
}

func (r *remessaRepo) Estatisticas(ctx context.Context) (*RemessaEstatisticas, error) {
	var row struct {
		TotalOps   int64
		TotalSaldo int64
		ValorSaldo decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.Remessa{}).
		Select(`COUNT(*) AS total_ops,
			COALESCE(SUM(saldo_montar), 0) AS total_saldo,
			COALESCE(SUM(saldo_montar * custo_unitario), 0) AS valor_saldo`).
		Where("saldo_montar > 0").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &RemessaEstatisticas{
		TotalOps:   row.TotalOps,
		TotalSaldo: row.TotalSaldo,
		ValorSaldo: row.ValorSaldo,
	}, nil
}

func (r *remessaRepo) CreateTx(tx *gorm.DB, rem *model.Remessa) error {
	return tx.Create(rem).Error
}

func (r *remessaRepo) UpdateSaldoTx(tx *gorm.DB, id string, saldoAtual, novoSaldo, novoEntregue int, status string) (int64, error) {
	res := tx.Model(&model.Remessa{}).
		Where("id_remessa = ? AND saldo_montar = ?", id, saldoAtual).
		Updates(map[string]interface{}{
			"saldo_montar": novoSaldo,
			"entregue":     novoEntregue,
			"status":       status,
		})
	return res.RowsAffected, res.Error
}
