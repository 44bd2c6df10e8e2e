package handler

import (
	"net/http"

	"github.com/Alexdguimaraes/controle-faccao/internal/dto"
	"github.com/Alexdguimaraes/controle-faccao/internal/service"

	"github.com/gin-gonic/gin"
)

type ModelosHandler struct{ svc service.ModeloService }

func NewModelosHandler(svc service.ModeloService) *ModelosHandler {
	return &ModelosHandler{svc: svc}
}

// Cadastrar godoc
// @Summary      Cadastrar modelo
// @Description  Registra um modelo com o custo unitário usado para pré-preencher novas OPs.
// @Tags         modelos
// @Accept       json
// @Produce      json
// @Param        body body dto.CadastrarModeloRequest true "Modelo e custo"
// @Success      201  {object} dto.ModeloResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/modelos [post]
func (h *ModelosHandler) Cadastrar(c *gin.Context) {
	var req dto.CadastrarModeloRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Cadastrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar modelos
// @Tags         modelos
// @Produce      json
// @Success      200 {array} dto.ModeloResponse
// @Router       /v1/modelos [get]
func (h *ModelosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarTodos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarPorNome godoc
// @Summary      Buscar modelo por nome
// @Description  Custo unitário do modelo, para pré-preencher a criação de OPs.
// @Tags         modelos
// @Produce      json
// @Param        nome path string true "Nome do modelo"
// @Success      200 {object} dto.ModeloResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/modelos/{nome} [get]
func (h *ModelosHandler) BuscarPorNome(c *gin.Context) {
	resp, err := h.svc.BuscarPorNome(c.Request.Context(), c.Param("nome"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
