package dto

// CadastrarClienteRequest é o corpo de POST /v1/clientes.
// O id_cliente é atribuído pelo usuário e normalizado para maiúsculas.
type CadastrarClienteRequest struct {
	IDCliente         string  `json:"id_cliente" validate:"required"`
	Nome              string  `json:"nome"       validate:"required"`
	Telefone          *string `json:"telefone"`
	Email             *string `json:"email"      validate:"omitempty,email"`
	BancoPreferencial string  `json:"banco_preferencial"`
}

type ClienteResponse struct {
	IDCliente         string  `json:"id_cliente"`
	Nome              string  `json:"nome"`
	Telefone          *string `json:"telefone"`
	Email             *string `json:"email"`
	BancoPreferencial string  `json:"banco_preferencial"`
}

// ResumoClientesResponse alimenta o card de clientes do dashboard.
type ResumoClientesResponse struct {
	Total int64 `json:"total"`
}
