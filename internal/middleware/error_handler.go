package middleware

import (
	"net/http"
	"time"

	"github.com/Alexdguimaraes/controle-faccao/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorHandler resolve erros pendurados no contexto que nenhum handler
// respondeu. Erros tipados do apierror saem com o status da sua categoria;
// qualquer outro vira 500 com mensagem genérica. O texto interno (causas de
// banco, caminhos, DSN) fica apenas no log do servidor.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := apierror.StatusCode(err)

		detalhe := err.Error()
		evt := log.Warn()
		if status == http.StatusInternalServerError {
			detalhe = "Erro interno do servidor"
			evt = log.Error()
		}
		evt.
			Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Err(err).
			Msg("erro não respondido pelo handler")

		c.AbortWithStatusJSON(status, apierror.New(detalhe))
	}
}

// Recovery converte pânicos em 500 sem derrubar o processo. A stack fica no
// log; o cliente recebe só a mensagem genérica.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Interface("panic", r).
					Msg("pânico recuperado")
				c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor"))
			}
		}()
		c.Next()
	}
}

// Logger registra cada requisição com o request_id de correlação. O nível
// acompanha o status: 5xx em error, 4xx em warn, o resto em info.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		evt := log.Info()
		switch {
		case status >= http.StatusInternalServerError:
			evt = log.Error()
		case status >= http.StatusBadRequest:
			evt = log.Warn()
		}
		evt.
			Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("ip", c.ClientIP()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
