package dto

import "github.com/shopspring/decimal"

// ─── Filter ─────────────────────────────────────────────────────────────────

// RemessaFilter is bound from the query string of GET /v1/remessas.
type RemessaFilter struct {
	IDCliente string `form:"id_cliente"`
	Status    string `form:"status" validate:"omitempty,oneof='Em Aberto' Entregue"`
}

// ─── Request DTOs ───────────────────────────────────────────────────────────

type CriarRemessaRequest struct {
	IDCliente     string          `json:"id_cliente" validate:"required"`
	Modelo        string          `json:"modelo"     validate:"required"`
	Quantidade    int             `json:"quantidade" validate:"required,min=1"`
	CustoUnitario decimal.Decimal `json:"custo_unitario" validate:"min=0"`
	// PrazoDias: dias até a data prevista de conclusão; 0 assume o padrão (30).
	PrazoDias      int     `json:"prazo_dias" validate:"omitempty,min=1"`
	ClienteDestino *string `json:"cliente_destino"`
}

type RegistrarEntregaRequest struct {
	Quantidade int `json:"quantidade" validate:"required,min=1"`
}

// ─── Response DTOs ──────────────────────────────────────────────────────────

type RemessaResponse struct {
	IDRemessa      string          `json:"id_remessa"`
	IDCliente      string          `json:"id_cliente"`
	Modelo         string          `json:"modelo"`
	Quantidade     int             `json:"quantidade"`
	CustoUnitario  decimal.Decimal `json:"custo_unitario"`
	SaldoMontar    int             `json:"saldo_montar"`
	Entregue       int             `json:"entregue"`
	PrazoDias      int             `json:"prazo_dias"`
	DataCriacao    string          `json:"data_criacao"`
	ClienteDestino *string         `json:"cliente_destino"`
	DataPrevista   string          `json:"data_prevista"`
	Status         string          `json:"status"`
	ValorTotal     decimal.Decimal `json:"valor_total"`
	SaldoValor     decimal.Decimal `json:"saldo_valor"`
}

// EntregaResponse reports the outcome of a delivery registration. Quantidade
// is the effective amount after clamping to the outstanding balance.
type EntregaResponse struct {
	IDRemessa  string          `json:"id_remessa"`
	Quantidade int             `json:"quantidade"`
	Finalizada bool            `json:"finalizada"`
	Titulo     TituloResponse  `json:"titulo"`
	SaldoAtual int             `json:"saldo_atual"`
	Entregue   int             `json:"entregue"`
	Status     string          `json:"status"`
	Valor      decimal.Decimal `json:"valor"`
}

// EstatisticasResponse agrega as OPs em aberto para o dashboard.
type EstatisticasResponse struct {
	TotalOps   int64           `json:"total_ops"`
	TotalSaldo int64           `json:"total_saldo"`
	ValorSaldo decimal.Decimal `json:"valor_saldo"`
}
