package handler

import (
	"net/http"
	"strconv"

	"github.com/Alexdguimaraes/controle-faccao/internal/apierror"
	"github.com/Alexdguimaraes/controle-faccao/internal/dto"
	"github.com/Alexdguimaraes/controle-faccao/internal/service"

	"github.com/gin-gonic/gin"
)

type FinanceiroHandler struct{ svc service.FinanceiroService }

func NewFinanceiroHandler(svc service.FinanceiroService) *FinanceiroHandler {
	return &FinanceiroHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar títulos a receber
// @Description  Títulos com o nome do cliente, ordenados por vencimento.
// @Tags         financeiro
// @Produce      json
// @Param        id_cliente query string false "Filtrar por cliente"
// @Param        status     query string false "Pendente | Recebido"
// @Success      200 {array} dto.TituloResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/financeiro [get]
func (h *FinanceiroHandler) Listar(c *gin.Context) {
	var filter dto.FinanceiroFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListarTitulos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Totais godoc
// @Summary      Totais pendente/recebido
// @Description  Somas por status, opcionalmente restritas a um cliente. Sem títulos, retorna zeros.
// @Tags         financeiro
// @Produce      json
// @Param        id_cliente query string false "Filtrar por cliente"
// @Success      200 {object} dto.TotaisResponse
// @Router       /v1/financeiro/totais [get]
func (h *FinanceiroHandler) Totais(c *gin.Context) {
	resp, err := h.svc.GetTotais(c.Request.Context(), c.Query("id_cliente"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecebidoMensal godoc
// @Summary      Total recebido por banco no mês
// @Description  Soma dos títulos recebidos pelo banco dentro do mês (intervalo semiaberto; dezembro vira janeiro do ano seguinte).
// @Tags         financeiro
// @Produce      json
// @Param        banco query string true "Canal de recebimento"
// @Param        ano   query int    true "Ano"
// @Param        mes   query int    true "Mês (1-12)"
// @Success      200 {object} dto.RecebidoMensalResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/financeiro/recebido-mensal [get]
func (h *FinanceiroHandler) RecebidoMensal(c *gin.Context) {
	ano, err := strconv.Atoi(c.Query("ano"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ano inválido"))
		return
	}
	mes, err := strconv.Atoi(c.Query("mes"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("mês inválido"))
		return
	}
	resp, svcErr := h.svc.GetRecebidoMensal(c.Request.Context(), c.Query("banco"), ano, mes)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Liquidar godoc
// @Summary      Liquidar título
// @Description  Transição única Pendente → Recebido, gravando banco e data. Reenvio sobre título já recebido é sucesso idempotente.
// @Tags         financeiro
// @Accept       json
// @Produce      json
// @Param        id   path int                 true "Id do título"
// @Param        body body dto.LiquidarRequest true "Banco de recebimento"
// @Success      200  {object} dto.TituloResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/financeiro/{id}/liquidar [post]
func (h *FinanceiroHandler) Liquidar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("id de título inválido"))
		return
	}
	var req dto.LiquidarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, svcErr := h.svc.Liquidar(c.Request.Context(), id, req.Banco)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}
