package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

// pageFromQuery читает номер страницы; отсутствующее или нечисловое значение -> 1
func pageFromQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

// bindOptionalJSON разбирает тело запроса; пустое тело допустимо и оставляет значения по умолчанию
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
