package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	corsAllowHeaders = "Content-Type"
	corsAllowMethods = "GET, POST, PATCH, DELETE"
)

// CORS разрешает запросы с любого origin (preflight обрабатывает gin-contrib/cors)
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:    []string{"Content-Type"},
		MaxAge:          12 * time.Hour,
	})
}

// CORSHeaders добавляет CORS-заголовки к каждому ответу, в том числе без заголовка Origin
func CORSHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		c.Next()
	}
}
