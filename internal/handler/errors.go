package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// Сообщения стандартного конверта ошибки
const (
	msgBadRequest       = "Bad request."
	msgNotFound         = "Not found."
	msgMethodNotAllowed = "Method not allowed."
	msgInternalError    = "Internal server error."
)

// abortWithMessage завершает запрос с конвертом {"message": ...}
func abortWithMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Message: message})
}

// handleError преобразует ошибку операции чтения в HTTP ответ
func handleError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		abortWithMessage(c, http.StatusNotFound, msgNotFound)
	case errors.As(err, &validationErr):
		abortWithMessage(c, http.StatusUnprocessableEntity, validationErr.Message)
	case errors.Is(err, apperrors.ErrBadRequest):
		abortWithMessage(c, http.StatusBadRequest, msgBadRequest)
	default:
		log.Printf("[Handler] Ошибка обработки %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		abortWithMessage(c, http.StatusInternalServerError, msgInternalError)
	}
}

// handleWriteError преобразует ошибку операции записи: сбой хранилища -> 500 с пустым телом
func handleWriteError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrBadRequest) {
		handleError(c, err)
		return
	}
	log.Printf("[Handler] Ошибка записи %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.AbortWithStatus(http.StatusInternalServerError)
}
