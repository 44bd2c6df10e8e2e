package model

import "github.com/shopspring/decimal"

// Banco é um canal de recebimento. LimiteMensal é o teto informal de
// movimentação por mês, comparado com o total recebido no dashboard.
type Banco struct {
	Nome         string          `gorm:"primaryKey"`
	LimiteMensal decimal.Decimal `gorm:"type:decimal(12,2);not null;default:5000"`
}

func (Banco) TableName() string { return "bancos" }
