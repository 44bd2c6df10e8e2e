package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Alexdguimaraes/controle-faccao/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type falhaBancoRepo struct{ err error }

func (r *falhaBancoRepo) List(_ context.Context) ([]model.Banco, error) {
	return nil, r.err
}

func TestListarBancos_FalhaDeBancoNaoVazaDetalhe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewBancosHandler(&falhaBancoRepo{err: errors.New("database is locked (SQLITE_BUSY)")}, nil)

	r := gin.New()
	r.GET("/v1/bancos", h.Listar)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/bancos", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "erro ao listar bancos")
	assert.NotContains(t, w.Body.String(), "SQLITE_BUSY")
}
