package handler

import (
	"net/http"

	"github.com/Alexdguimaraes/controle-faccao/internal/apierror"
	"github.com/Alexdguimaraes/controle-faccao/internal/dto"
	"github.com/Alexdguimaraes/controle-faccao/internal/service"

	"github.com/gin-gonic/gin"
)

type RemessasHandler struct{ svc service.RemessaService }

func NewRemessasHandler(svc service.RemessaService) *RemessasHandler {
	return &RemessasHandler{svc: svc}
}

// Criar godoc
// @Summary      Criar OP
// @Description  Cria uma remessa com id sequencial OP-%04d. O contador avança na mesma transação do insert.
// @Tags         remessas
// @Accept       json
// @Produce      json
// @Param        body body dto.CriarRemessaRequest true "Dados da OP"
// @Success      201  {object} dto.RemessaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/remessas [post]
func (h *RemessasHandler) Criar(c *gin.Context) {
	var req dto.CriarRemessaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar OPs
// @Description  Retorna as remessas filtradas por cliente e status, mais recentes primeiro.
// @Tags         remessas
// @Produce      json
// @Param        id_cliente query string false "Filtrar por cliente"
// @Param        status     query string false "Em Aberto | Entregue"
// @Success      200 {array} dto.RemessaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/remessas [get]
func (h *RemessasHandler) Listar(c *gin.Context) {
	var filter dto.RemessaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarPorID godoc
// @Summary      Buscar OP por id
// @Tags         remessas
// @Produce      json
// @Param        id path string true "Identificador da OP (OP-0001)"
// @Success      200 {object} dto.RemessaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/remessas/{id} [get]
func (h *RemessasHandler) BuscarPorID(c *gin.Context) {
	resp, err := h.svc.BuscarPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarEntrega godoc
// @Summary      Registrar entrega
// @Description  Baixa o saldo da OP e cria o título a receber na mesma transação. Quantidade acima do saldo é reduzida ao restante.
// @Tags         remessas
// @Accept       json
// @Produce      json
// @Param        id   path string                      true "Identificador da OP"
// @Param        body body dto.RegistrarEntregaRequest true "Quantidade entregue"
// @Success      201  {object} dto.EntregaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/remessas/{id}/entregas [post]
func (h *RemessasHandler) RegistrarEntrega(c *gin.Context) {
	var req dto.RegistrarEntregaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarEntrega(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarAtrasadas godoc
// @Summary      Listar OPs atrasadas
// @Description  OPs com data prevista vencida e saldo em aberto, mais atrasadas primeiro. Projeção calculada — nada é gravado.
// @Tags         remessas
// @Produce      json
// @Success      200 {array} dto.RemessaResponse
// @Router       /v1/remessas/atrasadas [get]
func (h *RemessasHandler) ListarAtrasadas(c *gin.Context) {
	resp, err := h.svc.ListarAtrasadas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Estatisticas godoc
// @Summary      Estatísticas de OPs em aberto
// @Tags         remessas
// @Produce      json
// @Success      200 {object} dto.EstatisticasResponse
// @Router       /v1/remessas/estatisticas [get]
func (h *RemessasHandler) Estatisticas(c *gin.Context) {
	resp, err := h.svc.Estatisticas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
