package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/handler/dto"
	"github.com/yourusername/trivia-bank/internal/service"
)

// QuizHandler обрабатывает запросы викторины
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// NextQuestion возвращает случайный еще не заданный вопрос или null, если вопросы закончились
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req dto.QuizRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, msgBadRequest)
		return
	}

	question, err := h.quizService.NextQuestion(c.Request.Context(), req.QuizCategory.CategoryID(), req.PreviousIDs())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuizResponse{Question: dto.NewQuestionResponse(question)})
}
