package model

// BancoPadrao é o banco usado quando o cliente não informa preferência.
const BancoPadrao = "Caixa"

// Cliente é o cadastro mínimo de um cliente da facção.
// Imutável após o cadastro — não existe operação de edição ou exclusão.
type Cliente struct {
	IDCliente         string `gorm:"column:id_cliente;primaryKey"`
	Nome              string `gorm:"not null"`
	Telefone          *string
	Email             *string
	BancoPreferencial string `gorm:"not null;default:'Caixa'"`
}

func (Cliente) TableName() string { return "clientes" }
