package dto

import (
	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/service"
)

// QuestionResponse - вопрос в ответе API (category - ID категории)
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestionResponse преобразует entity.Question в QuestionResponse
func NewQuestionResponse(q *entity.Question) *QuestionResponse {
	if q == nil {
		return nil
	}
	return &QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

// NewQuestionResponses преобразует список вопросов (пустой список -> [])
func NewQuestionResponses(questions []entity.Question) []QuestionResponse {
	result := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		result = append(result, *NewQuestionResponse(&questions[i]))
	}
	return result
}

// CategoriesResponse - ответ GET /api/categories
type CategoriesResponse struct {
	Categories map[uint]string `json:"categories"`
}

// QuestionPageResponse - ответ GET /api/questions
type QuestionPageResponse struct {
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	Categories      map[uint]string    `json:"categories"`
	CurrentCategory *uint              `json:"current_category"`
}

// NewQuestionPageResponse формирует ответ общего списка вопросов
func NewQuestionPageResponse(page *service.QuestionPage) QuestionPageResponse {
	categories := page.Categories
	if categories == nil {
		categories = map[uint]string{}
	}
	return QuestionPageResponse{
		Questions:      NewQuestionResponses(page.Questions),
		TotalQuestions: page.Total,
		Categories:     categories,
	}
}

// QuestionListResponse - ответ поиска и списка вопросов категории
type QuestionListResponse struct {
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	CurrentCategory *uint              `json:"current_category"`
}

// NewQuestionListResponse формирует ответ; currentCategory == nil сериализуется как null
func NewQuestionListResponse(questions []entity.Question, total int64, currentCategory *uint) QuestionListResponse {
	return QuestionListResponse{
		Questions:       NewQuestionResponses(questions),
		TotalQuestions:  total,
		CurrentCategory: currentCategory,
	}
}

// CreateQuestionRequest - тело POST /api/questions
type CreateQuestionRequest struct {
	Question   string      `json:"question"`
	Answer     string      `json:"answer"`
	Category   FlexibleInt `json:"category"`
	Difficulty FlexibleInt `json:"difficulty"`
}

// ToInput преобразует запрос во входные данные сервиса
func (r CreateQuestionRequest) ToInput() service.QuestionInput {
	return service.QuestionInput{
		Question:   r.Question,
		Answer:     r.Answer,
		Category:   r.Category.Uint(),
		Difficulty: int(r.Difficulty),
	}
}

// CreateQuestionResponse - ответ на создание вопроса
type CreateQuestionResponse struct {
	ID uint `json:"id"`
}

// SearchQuestionsRequest - тело POST /api/questions/search
type SearchQuestionsRequest struct {
	Query string       `json:"q"`
	Page  *FlexibleInt `json:"page"`
}

// QuizRequest - тело POST /api/quizzes
type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category"`
	PreviousQuestions []FlexibleInt `json:"previous_questions"`
}

// PreviousIDs возвращает уже заданные вопросы; значения <= 0 и нераспознанные пропускаются
func (r *QuizRequest) PreviousIDs() []uint {
	ids := make([]uint, 0, len(r.PreviousQuestions))
	for _, v := range r.PreviousQuestions {
		if v > 0 {
			ids = append(ids, v.Uint())
		}
	}
	return ids
}

// QuizResponse - ответ викторины (question == null, когда вопросы закончились)
type QuizResponse struct {
	Question *QuestionResponse `json:"question"`
}

// ErrorResponse - стандартный конверт ошибки
type ErrorResponse struct {
	Message string `json:"message"`
}
