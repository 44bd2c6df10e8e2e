package model

import "github.com/shopspring/decimal"

// Modelo é o catálogo de custo por modelo de peça. Serve apenas para
// pré-preencher o custo ao criar uma OP — a remessa sempre grava a própria
// cópia do custo, então alterações posteriores aqui não afetam OPs abertas.
type Modelo struct {
	Modelo        string          `gorm:"primaryKey"`
	CustoUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (Modelo) TableName() string { return "modelos" }
