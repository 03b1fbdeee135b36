package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader - заголовок с идентификатором запроса
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey - ключ идентификатора запроса в контексте Gin
	RequestIDKey = "request_id"
)

// RequestID передает X-Request-ID клиента или генерирует новый
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}
