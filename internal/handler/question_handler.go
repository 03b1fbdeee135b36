package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/handler/dto"
	"github.com/yourusername/trivia-bank/internal/middleware"
	"github.com/yourusername/trivia-bank/internal/service"
)

// QuestionIDKey - ключ ID вопроса в контексте Gin
const QuestionIDKey = "questionID"

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// GetQuestions возвращает страницу всех вопросов и справочник категорий
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	page, err := h.questionService.ListQuestions(c.Request.Context(), pageFromQuery(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuestionPageResponse(page))
}

// CreateQuestion создает вопрос и возвращает его ID
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, msgBadRequest)
		return
	}

	id, err := h.questionService.CreateQuestion(c.Request.Context(), req.ToInput())
	if err != nil {
		handleWriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateQuestionResponse{ID: id})
}

// DeleteQuestion удаляет вопрос; успешный ответ без тела
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, ok := middleware.GetUintParam(c, QuestionIDKey)
	if !ok {
		abortWithMessage(c, http.StatusNotFound, msgNotFound)
		return
	}

	if err := h.questionService.DeleteQuestion(c.Request.Context(), questionID); err != nil {
		handleWriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SearchQuestions ищет вопросы по подстроке. Номер страницы берется из тела, затем из query.
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req dto.SearchQuestionsRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, msgBadRequest)
		return
	}

	page := pageFromQuery(c)
	if req.Page != nil {
		page = int(*req.Page)
	}

	questions, total, err := h.questionService.SearchQuestions(c.Request.Context(), req.Query, page)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(questions, total, nil))
}
