package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS libera o painel local para chamar a API. Não há autenticação aqui,
// então os únicos headers que os clientes enviam são o corpo JSON e o id de
// correlação; a API só expõe GET e POST.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
