package apikey

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware exige a chave de escrita em requisições que não sejam GET.
// Requisições GET passam direto; as demais são barradas antes de qualquer
// validação ou acesso ao banco.
func Middleware(cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		if !cfg.Authorize(c.GetHeader(HeaderName)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": "Unauthorized",
			})
			return
		}

		c.Next()
	}
}
