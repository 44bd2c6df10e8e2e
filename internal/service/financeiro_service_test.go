package service

import (
	"context"
	"testing"
	"time"

	"github.com/Alexdguimaraes/controle-faccao/internal/apierror"
	"github.com/Alexdguimaraes/controle-faccao/internal/dto"
	"github.com/Alexdguimaraes/controle-faccao/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTitulo(repo *stubFinanceiroRepo, idRemessa, valor string) *model.Financeiro {
	hoje := time.Now().Format("2006-01-02")
	t := &model.Financeiro{
		IDRemessa:      idRemessa,
		Quantidade:     1,
		ValorReceber:   decimal.RequireFromString(valor),
		DataEntrega:    hoje,
		DataVencimento: hoje,
		Status:         model.TituloPendente,
	}
	_ = repo.CreateTx(nil, t)
	return t
}

func seedRecebido(repo *stubFinanceiroRepo, idRemessa, valor, banco, data string) {
	t := seedTitulo(repo, idRemessa, valor)
	stored := repo.titulos[t.ID]
	stored.Status = model.TituloRecebido
	stored.Banco = &banco
	stored.DataRecebimento = &data
}

// Fluxo ponta a ponta: cria a OP, entrega em duas parcelas e liquida o
// primeiro título, conferindo os totais a cada passo.
func TestTotais_FluxoEntregaELiquidacao(t *testing.T) {
	f := newRemessaFixture(t)
	ctx := context.Background()
	finSvc := NewFinanceiroService(f.finRepo)

	op := f.criar(t, 100, "10.00")
	e1, err := f.svc.RegistrarEntrega(ctx, op.IDRemessa, dto.RegistrarEntregaRequest{Quantidade: 40})
	require.NoError(t, err)
	_, err = f.svc.RegistrarEntrega(ctx, op.IDRemessa, dto.RegistrarEntregaRequest{Quantidade: 70})
	require.NoError(t, err)

	totais, err := finSvc.GetTotais(ctx, "")
	require.NoError(t, err)
	assert.True(t, totais.Pendente.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, totais.Recebido.IsZero())

	liquidado, err := finSvc.Liquidar(ctx, e1.Titulo.ID, "Caixa")
	require.NoError(t, err)
	assert.Equal(t, model.TituloRecebido, liquidado.Status)
	require.NotNil(t, liquidado.Banco)
	assert.Equal(t, "Caixa", *liquidado.Banco)
	require.NotNil(t, liquidado.DataRecebimento)
	assert.Equal(t, time.Now().Format("2006-01-02"), *liquidado.DataRecebimento)

	totais, err = finSvc.GetTotais(ctx, "")
	require.NoError(t, err)
	assert.True(t, totais.Pendente.Equal(decimal.RequireFromString("600.00")))
	assert.True(t, totais.Recebido.Equal(decimal.RequireFromString("400.00")))
}

func TestGetTotais_VazioRetornaZero(t *testing.T) {
	svc := NewFinanceiroService(newStubFinanceiroRepo())

	totais, err := svc.GetTotais(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, totais.Pendente.IsZero())
	assert.True(t, totais.Recebido.IsZero())
}

func TestGetTotais_PorCliente(t *testing.T) {
	repo := newStubFinanceiroRepo()
	repo.remessaDe["OP-0001"] = "CL01"
	repo.remessaDe["OP-0002"] = "CL02"
	seedTitulo(repo, "OP-0001", "150.00")
	seedTitulo(repo, "OP-0002", "999.00")
	svc := NewFinanceiroService(repo)

	totais, err := svc.GetTotais(context.Background(), "CL01")
	require.NoError(t, err)
	assert.True(t, totais.Pendente.Equal(decimal.RequireFromString("150.00")))
	assert.True(t, totais.Recebido.IsZero())
}

func TestLiquidar_Idempotente(t *testing.T) {
	repo := newStubFinanceiroRepo()
	titulo := seedTitulo(repo, "OP-0001", "250.00")
	svc := NewFinanceiroService(repo)
	ctx := context.Background()

	primeiro, err := svc.Liquidar(ctx, titulo.ID, "Caixa")
	require.NoError(t, err)

	// Reenvio com outro banco: sucesso idempotente, banco e data do primeiro
	// recebimento preservados.
	segundo, err := svc.Liquidar(ctx, titulo.ID, "Nubank")
	require.NoError(t, err)
	assert.Equal(t, model.TituloRecebido, segundo.Status)
	require.NotNil(t, segundo.Banco)
	assert.Equal(t, "Caixa", *segundo.Banco)
	assert.Equal(t, *primeiro.DataRecebimento, *segundo.DataRecebimento)
}

func TestLiquidar_TocaApenasUmTitulo(t *testing.T) {
	repo := newStubFinanceiroRepo()
	alvo := seedTitulo(repo, "OP-0001", "100.00")
	outro := seedTitulo(repo, "OP-0002", "200.00")
	svc := NewFinanceiroService(repo)

	_, err := svc.Liquidar(context.Background(), alvo.ID, "Caixa")
	require.NoError(t, err)

	intacto, err := repo.FindByID(context.Background(), outro.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TituloPendente, intacto.Status)
	assert.Nil(t, intacto.Banco)
	assert.Nil(t, intacto.DataRecebimento)
}

func TestLiquidar_NaoEncontrado(t *testing.T) {
	svc := NewFinanceiroService(newStubFinanceiroRepo())

	_, err := svc.Liquidar(context.Background(), 42, "Caixa")
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

func TestLiquidar_BancoObrigatorio(t *testing.T) {
	repo := newStubFinanceiroRepo()
	titulo := seedTitulo(repo, "OP-0001", "100.00")
	svc := NewFinanceiroService(repo)

	_, err := svc.Liquidar(context.Background(), titulo.ID, "")
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}

func TestGetRecebidoMensal_LimitesDoMes(t *testing.T) {
	repo := newStubFinanceiroRepo()
	// Dezembro conta do dia 1 ao 31; 1º de janeiro já é do mês seguinte.
	seedRecebido(repo, "OP-0001", "100.00", "Caixa", "2025-12-01")
	seedRecebido(repo, "OP-0002", "200.00", "Caixa", "2025-12-31")
	seedRecebido(repo, "OP-0003", "400.00", "Caixa", "2026-01-01")
	seedRecebido(repo, "OP-0004", "800.00", "Nubank", "2025-12-15")
	svc := NewFinanceiroService(repo)

	resp, err := svc.GetRecebidoMensal(context.Background(), "Caixa", 2025, 12)
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("300.00")))

	resp, err = svc.GetRecebidoMensal(context.Background(), "Caixa", 2026, 1)
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("400.00")))
}

func TestGetRecebidoMensal_Validacao(t *testing.T) {
	svc := NewFinanceiroService(newStubFinanceiroRepo())
	ctx := context.Background()

	cases := []struct {
		name  string
		banco string
		ano   int
		mes   int
	}{
		{"sem banco", "", 2025, 6},
		{"mes zero", "Caixa", 2025, 0},
		{"mes treze", "Caixa", 2025, 13},
		{"ano zero", "Caixa", 0, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.GetRecebidoMensal(ctx, tc.banco, tc.ano, tc.mes)
			require.Error(t, err)
			assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
		})
	}
}

func TestListarTitulos_OrdenadosPorVencimento(t *testing.T) {
	repo := newStubFinanceiroRepo()
	repo.remessaDe["OP-0001"] = "CL01"
	repo.nomeDe["CL01"] = "Maria Confecções"

	tardio := seedTitulo(repo, "OP-0001", "100.00")
	repo.titulos[tardio.ID].DataVencimento = "2026-09-20"
	cedo := seedTitulo(repo, "OP-0001", "200.00")
	repo.titulos[cedo.ID].DataVencimento = "2026-09-05"

	svc := NewFinanceiroService(repo)
	titulos, err := svc.ListarTitulos(context.Background(), dto.FinanceiroFilter{})
	require.NoError(t, err)
	require.Len(t, titulos, 2)
	assert.Equal(t, cedo.ID, titulos[0].ID)
	assert.Equal(t, tardio.ID, titulos[1].ID)
	assert.Equal(t, "Maria Confecções", titulos[0].ClienteNome)
}
