package repository

import (
	"fmt"
	"strconv"

	"github.com/Alexdguimaraes/controle-faccao/internal/model"

	"gorm.io/gorm"
)

// ConfigRepository persists the OP sequence counter.
type ConfigRepository interface {
	// NextRemessaIDTx reads the counter, advances it, and returns the new id
	// formatted as OP-%04d. It MUST run inside the same transaction as the
	// remessa insert that consumes the id: a rolled-back insert rolls the
	// counter back with it, and a committed counter always has its OP.
	NextRemessaIDTx(tx *gorm.DB) (string, error)
}

type configRepo struct{ db *gorm.DB }

func NewConfigRepository(db *gorm.DB) ConfigRepository { return &configRepo{db: db} }

func (r *configRepo) NextRemessaIDTx(tx *gorm.DB) (string, error) {
	var cfg model.Configuracao
	if err := tx.Where("chave = ?", model.ChaveUltimoIDRemessa).First(&cfg).Error; err != nil {
		return "", err
	}

	ultimo, err := strconv.Atoi(cfg.Valor)
	if err != nil {
		return "", fmt.Errorf("contador de OP corrompido (%q): %w", cfg.Valor, err)
	}
	novo := ultimo + 1

	err = tx.Model(&model.Configuracao{}).
		Where("chave = ?", model.ChaveUltimoIDRemessa).
		Update("valor", strconv.Itoa(novo)).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("OP-%04d", novo), nil
}
