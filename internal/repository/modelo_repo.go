package repository

import (
	"context"

	"github.com/Alexdguimaraes/controle-faccao/internal/model"

	"gorm.io/gorm"
)

type ModeloRepository interface {
	Create(ctx context.Context, m *model.Modelo) error
	FindByNome(ctx context.Context, nome string) (*model.Modelo, error)
	List(ctx context.Context) ([]model.Modelo, error)
}

type modeloRepo struct{ db *gorm.DB }

func NewModeloRepository(db *gorm.DB) ModeloRepository { return &modeloRepo{db: db} }

func (r *modeloRepo) Create(ctx context.Context, m *model.Modelo) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *modeloRepo) FindByNome(ctx context.Context, nome string) (*model.Modelo, error) {
	var m model.Modelo
	err := r.db.WithContext(ctx).Where("modelo = ?", nome).First(&m).Error
	return &m, err
}

func (r *modeloRepo) List(ctx context.Context) ([]model.Modelo, error) {
	var modelos []model.Modelo
	err := r.db.WithContext(ctx).Order("modelo ASC").Find(&modelos).Error
	return modelos, err
}
