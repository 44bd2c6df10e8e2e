package dto

import "github.com/shopspring/decimal"

type CadastrarModeloRequest struct {
	Modelo        string          `json:"modelo"         validate:"required"`
	CustoUnitario decimal.Decimal `json:"custo_unitario" validate:"min=0"`
}

type ModeloResponse struct {
	Modelo        string          `json:"modelo"`
	CustoUnitario decimal.Decimal `json:"custo_unitario"`
}
