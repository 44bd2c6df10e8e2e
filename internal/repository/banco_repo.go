package repository

import (
	"context"

	"github.com/Alexdguimaraes/controle-faccao/internal/model"

	"gorm.io/gorm"
)

type BancoRepository interface {
	List(ctx context.Context) ([]model.Banco, error)
}

type bancoRepo struct{ db *gorm.DB }

func NewBancoRepository(db *gorm.DB) BancoRepository { return &bancoRepo{db: db} }

func (r *bancoRepo) List(ctx context.Context) ([]model.Banco, error) {
	var bancos []model.Banco
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&bancos).Error
	return bancos, err
}
