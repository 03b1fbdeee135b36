package service

import (
	"context"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// QuizService выдает вопросы викторины
type QuizService struct {
	categoryRepo repository.CategoryRepository
	selector     *QuizSelector
}

// NewQuizService создает новый сервис викторины
func NewQuizService(categoryRepo repository.CategoryRepository, questionRepo repository.QuestionRepository, rng RandomSource) *QuizService {
	return &QuizService{
		categoryRepo: categoryRepo,
		selector:     NewQuizSelector(questionRepo, rng),
	}
}

// NextQuestion возвращает случайный еще не заданный вопрос категории (nil - любой категории).
// nil без ошибки означает, что вопросы закончились. Неизвестная категория -> ErrNotFound.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID *uint, previous []uint) (*entity.Question, error) {
	if categoryID != nil {
		exists, err := s.categoryRepo.Exists(ctx, *categoryID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.ErrNotFound
		}
	}
	return s.selector.Select(ctx, categoryID, previous)
}
