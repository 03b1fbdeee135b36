package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ExtractUintParam создает middleware для извлечения и валидации числового параметра URL.
// paramName - имя параметра в URL (например, "id").
// contextKey - ключ, под которым значение будет сохранено в контексте Gin.
// Нечисловой ID означает несуществующий ресурс, поэтому ответ - 404.
func ExtractUintParam(paramName, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param(paramName)
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "Not found."})
			return
		}
		// Сохраняем как uint для единообразия
		c.Set(contextKey, uint(id))
		c.Next()
	}
}

// GetUintParam возвращает значение, сохраненное ExtractUintParam
func GetUintParam(c *gin.Context, contextKey string) (uint, bool) {
	value, exists := c.Get(contextKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
