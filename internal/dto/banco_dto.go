package dto

import "github.com/shopspring/decimal"

// BancoResponse lista cada canal de recebimento com o total já recebido no
// mês corrente, para comparação com o limite mensal.
type BancoResponse struct {
	Nome         string          `json:"nome"`
	LimiteMensal decimal.Decimal `json:"limite_mensal"`
	RecebidoMes  decimal.Decimal `json:"recebido_mes"`
}
