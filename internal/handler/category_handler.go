package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/handler/dto"
	"github.com/yourusername/trivia-bank/internal/middleware"
	"github.com/yourusername/trivia-bank/internal/service"
)

// CategoryIDKey - ключ ID категории в контексте Gin
const CategoryIDKey = "categoryID"

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GetCategories возвращает все категории в виде {"id": "type"}
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: categories})
}

// GetCategoryQuestions возвращает страницу вопросов категории
func (h *CategoryHandler) GetCategoryQuestions(c *gin.Context) {
	categoryID, ok := middleware.GetUintParam(c, CategoryIDKey)
	if !ok {
		abortWithMessage(c, http.StatusNotFound, msgNotFound)
		return
	}

	questions, total, err := h.categoryService.ListCategoryQuestions(c.Request.Context(), categoryID, pageFromQuery(c))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(questions, total, &categoryID))
}
