package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Alexdguimaraes/controle-faccao/internal/dto"
	"github.com/Alexdguimaraes/controle-faccao/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const resumoCacheTTL = 5 * time.Minute

// ClientesHandler expõe o cadastro de clientes. O resumo do dashboard passa
// por um cache read-through no Redis quando ele está configurado.
type ClientesHandler struct {
	svc service.ClienteService
	rdb *redis.Client // nil quando o cache está desativado
}

func NewClientesHandler(svc service.ClienteService, rdb *redis.Client) *ClientesHandler {
	return &ClientesHandler{svc: svc, rdb: rdb}
}

// Cadastrar godoc
// @Summary      Cadastrar cliente
// @Description  Registra um cliente. O id_cliente é normalizado para maiúsculas; o banco preferencial assume 'Caixa' quando omitido.
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body body dto.CadastrarClienteRequest true "Dados do cliente"
// @Success      201  {object} dto.ClienteResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/clientes [post]
func (h *ClientesHandler) Cadastrar(c *gin.Context) {
	var req dto.CadastrarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Cadastrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidateResumo(c.Request.Context())
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar clientes
// @Description  Retorna todos os clientes ordenados por nome.
// @Tags         clientes
// @Produce      json
// @Success      200 {array} dto.ClienteResponse
// @Router       /v1/clientes [get]
func (h *ClientesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarTodos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarPorID godoc
// @Summary      Buscar cliente por id
// @Tags         clientes
// @Produce      json
// @Param        id path string true "Identificador do cliente"
// @Success      200 {object} dto.ClienteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/{id} [get]
func (h *ClientesHandler) BuscarPorID(c *gin.Context) {
	resp, err := h.svc.BuscarPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Resumo godoc
// @Summary      Resumo de clientes para o dashboard
// @Tags         clientes
// @Produce      json
// @Success      200 {object} dto.ResumoClientesResponse
// @Router       /v1/clientes/resumo [get]
func (h *ClientesHandler) Resumo(c *gin.Context) {
	ctx := c.Request.Context()
	const cacheKey = "resumo:clientes"

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.ResumoClientesResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	resp, err := h.svc.Resumo(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	// Populate cache — best effort, ignore errors
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, resumoCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) invalidateResumo(ctx context.Context) {
	if h.rdb != nil {
		_ = h.rdb.Del(ctx, "resumo:clientes").Err()
	}
}
