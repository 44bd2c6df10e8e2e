package dto

import "github.com/shopspring/decimal"

// FinanceiroFilter is bound from the query string of GET /v1/financeiro.
type FinanceiroFilter struct {
	IDCliente string `form:"id_cliente"`
	Status    string `form:"status" validate:"omitempty,oneof=Pendente Recebido"`
}

// TituloResponse is the joined receivable + client-name projection.
type TituloResponse struct {
	ID              int64           `json:"id"`
	IDRemessa       string          `json:"id_remessa"`
	Quantidade      int             `json:"quantidade"`
	ValorReceber    decimal.Decimal `json:"valor_receber"`
	DataEntrega     string          `json:"data_entrega"`
	DataVencimento  string          `json:"data_vencimento"`
	Status          string          `json:"status"`
	Banco           *string         `json:"banco"`
	DataRecebimento *string         `json:"data_recebimento"`
	ClienteNome     string          `json:"cliente_nome"`
}

// TotaisResponse: somas por status, zeradas quando não há títulos.
type TotaisResponse struct {
	Pendente decimal.Decimal `json:"pendente"`
	Recebido decimal.Decimal `json:"recebido"`
}

type LiquidarRequest struct {
	Banco string `json:"banco" validate:"required"`
}

type RecebidoMensalResponse struct {
	Banco string          `json:"banco"`
	Ano   int             `json:"ano"`
	Mes   int             `json:"mes"`
	Total decimal.Decimal `json:"total"`
}
