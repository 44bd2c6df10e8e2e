package model

import "github.com/shopspring/decimal"

// Status de remessa.
const (
	RemessaEmAberto = "Em Aberto"
	RemessaEntregue = "Entregue"
)

// PrazoPadraoDias é o prazo de montagem aplicado quando a OP não informa um.
const PrazoPadraoDias = 30

// Remessa é uma ordem de produção (OP) de um cliente, montada em parcelas.
// Invariantes mantidas pelo RemessaService:
//   - SaldoMontar + Entregue == Quantidade
//   - Status == "Entregue" ⟺ SaldoMontar == 0
//
// Datas são texto YYYY-MM-DD; a ordenação lexical coincide com a cronológica.
type Remessa struct {
	IDRemessa      string `gorm:"column:id_remessa;primaryKey"`
	IDCliente      string `gorm:"column:id_cliente;index;not null"`
	Modelo         string `gorm:"not null"`
	Quantidade     int    `gorm:"not null"`
	CustoUnitario  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SaldoMontar    int    `gorm:"not null;default:0"`
	Entregue       int    `gorm:"not null;default:0"`
	PrazoDias      int    `gorm:"not null;default:30"`
	DataCriacao    string `gorm:"type:varchar(10);not null"`
	ClienteDestino *string
	DataPrevista   string `gorm:"type:varchar(10);index"`
	Status         string `gorm:"type:varchar(20);not null;default:'Em Aberto'"`

	Cliente *Cliente `gorm:"foreignKey:IDCliente;references:IDCliente"`
}

func (Remessa) TableName() string { return "remessas" }

// ValorTotal é o valor cheio da OP (quantidade × custo unitário).
func (r *Remessa) ValorTotal() decimal.Decimal {
	return r.CustoUnitario.Mul(decimal.NewFromInt(int64(r.Quantidade)))
}

// SaldoValor é o valor das peças ainda não montadas.
func (r *Remessa) SaldoValor() decimal.Decimal {
	return r.CustoUnitario.Mul(decimal.NewFromInt(int64(r.SaldoMontar)))
}
