package model

import "github.com/shopspring/decimal"

// Status de título financeiro.
const (
	TituloPendente = "Pendente"
	TituloRecebido = "Recebido"
)

// PrazoVencimentoDias é a carência entre a entrega e o vencimento do título.
const PrazoVencimentoDias = 7

// Financeiro é um título a receber, criado uma única vez por entrega
// registrada. Títulos nunca são editados fora da liquidação e nunca são
// excluídos — transição única Pendente → Recebido.
type Financeiro struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	IDRemessa       string `gorm:"column:id_remessa;index;not null"`
	Quantidade      int    `gorm:"not null"`
	ValorReceber    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DataEntrega     string `gorm:"type:varchar(10);not null"`
	DataVencimento  string `gorm:"type:varchar(10);index"`
	Status          string `gorm:"type:varchar(20);not null;default:'Pendente'"`
	Banco           *string
	DataRecebimento *string `gorm:"type:varchar(10)"`

	Remessa *Remessa `gorm:"foreignKey:IDRemessa;references:IDRemessa"`
}

func (Financeiro) TableName() string { return "financeiro" }
