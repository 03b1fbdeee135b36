package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
	"github.com/yourusername/trivia-bank/internal/events"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// QuestionPage - страница общего списка вопросов
type QuestionPage struct {
	Questions  []entity.Question
	Total      int64
	Categories map[uint]string
}

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	validator    *QuestionValidator
	publisher    events.EventPublisher
}

// NewQuestionService создает новый сервис вопросов. При publisher == nil события не публикуются.
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	publisher events.EventPublisher,
) *QuestionService {
	if publisher == nil {
		publisher = events.NewNoOpPublisher()
	}
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		validator:    NewQuestionValidator(categoryRepo),
		publisher:    publisher,
	}
}

// ListQuestions возвращает страницу всех вопросов вместе со справочником категорий
func (s *QuestionService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	questions, total, err := Paginate(ctx, func(ctx context.Context, offset, limit int) ([]entity.Question, int64, error) {
		return s.questionRepo.List(ctx, repository.QuestionFilter{}, offset, limit)
	}, page, PageStrict)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &QuestionPage{
		Questions:  questions,
		Total:      total,
		Categories: entity.CategoryMap(categories),
	}, nil
}

// SearchQuestions ищет подстроку в тексте вопроса без учета регистра.
// Страница за пределами выборки дает пустой список, а не ErrNotFound.
func (s *QuestionService) SearchQuestions(ctx context.Context, term string, page int) ([]entity.Question, int64, error) {
	filter := repository.QuestionFilter{Search: term}
	return Paginate(ctx, func(ctx context.Context, offset, limit int) ([]entity.Question, int64, error) {
		return s.questionRepo.List(ctx, filter, offset, limit)
	}, page, PageLenient)
}

// CreateQuestion проверяет и сохраняет вопрос, возвращая его ID
func (s *QuestionService) CreateQuestion(ctx context.Context, input QuestionInput) (uint, error) {
	if err := s.validator.Validate(ctx, input); err != nil {
		return 0, err
	}

	question := &entity.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		CategoryID: input.Category,
		Difficulty: input.Difficulty,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return 0, err
		}
		log.Printf("[QuestionService] Ошибка при создании вопроса: %v", err)
		return 0, fmt.Errorf("failed to create question: %w", err)
	}

	log.Printf("[QuestionService] Создан вопрос ID=%d (категория %d)", question.ID, question.CategoryID)
	s.publish(ctx, events.NewQuestionCreatedEvent(*question))
	return question.ID, nil
}

// DeleteQuestion удаляет вопрос (ErrNotFound, если его нет)
func (s *QuestionService) DeleteQuestion(ctx context.Context, questionID uint) error {
	deleted, err := s.questionRepo.Delete(ctx, questionID)
	if err != nil {
		log.Printf("[QuestionService] Ошибка при удалении вопроса ID=%d: %v", questionID, err)
		return fmt.Errorf("failed to delete question %d: %w", questionID, err)
	}
	if !deleted {
		return apperrors.ErrNotFound
	}

	log.Printf("[QuestionService] Удален вопрос ID=%d", questionID)
	s.publish(ctx, events.NewQuestionDeletedEvent(questionID))
	return nil
}

// publish публикует событие; ошибка публикации не влияет на результат операции
func (s *QuestionService) publish(ctx context.Context, event *events.QuestionEvent) {
	if err := s.publisher.PublishQuestionEvent(ctx, event); err != nil {
		log.Printf("[QuestionService] Не удалось опубликовать событие %s для вопроса ID=%d: %v", event.Type, event.QuestionID, err)
	}
}
