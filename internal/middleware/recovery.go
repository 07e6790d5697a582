package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorLogger recovers panics as 500 and logs every 5xx response.
func ErrorLogger() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("panic on %s %s: %v", c.Request.Method, c.FullPath(), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success":    false,
			"error_code": "internal_error",
			"message":    "Erro interno do servidor.",
		})
	})
}

func ServerErrorLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if status := c.Writer.Status(); status >= http.StatusInternalServerError {
			log.Printf("%d on %s %s errors=%v", status, c.Request.Method, c.FullPath(), c.Errors.String())
		}
	}
}
