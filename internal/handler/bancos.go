package handler

import (
	"net/http"
	"time"

	"github.com/Alexdguimaraes/controle-faccao/internal/apierror"
	"github.com/Alexdguimaraes/controle-faccao/internal/dto"
	"github.com/Alexdguimaraes/controle-faccao/internal/repository"
	"github.com/Alexdguimaraes/controle-faccao/internal/service"

	"github.com/gin-gonic/gin"
)

// BancosHandler lista os canais de recebimento com o total já recebido no
// mês corrente, lado a lado com o limite mensal de cada banco.
type BancosHandler struct {
	repo repository.BancoRepository
	fin  service.FinanceiroService
}

func NewBancosHandler(repo repository.BancoRepository, fin service.FinanceiroService) *BancosHandler {
	return &BancosHandler{repo: repo, fin: fin}
}

// Listar godoc
// @Summary      Listar bancos
// @Description  Bancos com limite mensal e total recebido no mês corrente.
// @Tags         bancos
// @Produce      json
// @Success      200 {array} dto.BancoResponse
// @Router       /v1/bancos [get]
func (h *BancosHandler) Listar(c *gin.Context) {
	ctx := c.Request.Context()

	bancos, err := h.repo.List(ctx)
	if err != nil {
		respondError(c, apierror.Persistence("erro ao listar bancos", err))
		return
	}

	agora := time.Now()
	out := make([]dto.BancoResponse, 0, len(bancos))
	for _, b := range bancos {
		recebido, err := h.fin.GetRecebidoMensal(ctx, b.Nome, agora.Year(), int(agora.Month()))
		if err != nil {
			respondError(c, err)
			return
		}
		out = append(out, dto.BancoResponse{
			Nome:         b.Nome,
			LimiteMensal: b.LimiteMensal,
			RecebidoMes:  recebido.Total,
		})
	}
	c.JSON(http.StatusOK, out)
}
