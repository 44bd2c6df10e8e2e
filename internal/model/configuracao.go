package model

// ChaveUltimoIDRemessa guarda o último número sequencial de OP emitido.
const ChaveUltimoIDRemessa = "ultimo_id_remessa"

// Configuracao é um par chave/valor persistido — hoje só carrega o contador
// de OPs, que precisa sobreviver a reinícios do processo.
type Configuracao struct {
	Chave string `gorm:"primaryKey"`
	Valor string
}

func (Configuracao) TableName() string { return "configuracoes" }
