package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muftipurwa/portfolio-api/pkg/apperror"
	"github.com/muftipurwa/portfolio-api/pkg/logger"
)

// ErrorMiddleware turns errors collected with c.Error into JSON responses.
// Storage detail stays in the logs; the client sees the taxonomy only.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		if status == http.StatusInternalServerError {
			log.Error("Request failed", err)
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.AbortWithStatusJSON(status, appErr.ToJSON())
			return
		}
		c.AbortWithStatusJSON(status, gin.H{"error": "internal server error"})
	}
}

// CORSMiddleware opens the API to the browser client. The service is
// single-tenant and unauthenticated, so a permissive policy is fine.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
