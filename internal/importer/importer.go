package importer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
	"github.com/yourusername/trivia-bank/internal/service"
)

// CategoryResolver находит категорию по названию
type CategoryResolver interface {
	ResolveCategory(ctx context.Context, categoryType string, create bool) (*entity.Category, error)
}

// QuestionCreator создает вопрос с полной валидацией
type QuestionCreator interface {
	CreateQuestion(ctx context.Context, input service.QuestionInput) (uint, error)
}

// RowError - ошибка валидации одной строки
type RowError struct {
	Row     int
	Message string
}

// Result - итог импорта
type Result struct {
	Created []uint
	Failed  []RowError
}

// Importer загружает вопросы из строк листа через сервис вопросов
type Importer struct {
	categories       CategoryResolver
	questions        QuestionCreator
	createCategories bool
}

// NewImporter создает импортер. createCategories разрешает создавать неизвестные категории по названию.
func NewImporter(categories CategoryResolver, questions QuestionCreator, createCategories bool) *Importer {
	return &Importer{
		categories:       categories,
		questions:        questions,
		createCategories: createCategories,
	}
}

// Import создает вопросы построчно. Ошибки валидации строк собираются в Result.Failed,
// ошибка хранилища прерывает импорт (уже созданные вопросы остаются в Result.Created).
func (i *Importer) Import(ctx context.Context, rows []Row) (*Result, error) {
	result := &Result{}

	for _, row := range rows {
		categoryID, err := i.categoryID(ctx, row.Category)
		if err != nil {
			return result, fmt.Errorf("row %d: %w", row.Number, err)
		}

		difficulty, err := strconv.Atoi(row.Difficulty)
		if err != nil {
			difficulty = 0
		}

		id, err := i.questions.CreateQuestion(ctx, service.QuestionInput{
			Question:   row.Question,
			Answer:     row.Answer,
			Category:   categoryID,
			Difficulty: difficulty,
		})
		if err != nil {
			var validationErr *apperrors.ValidationError
			if errors.As(err, &validationErr) {
				result.Failed = append(result.Failed, RowError{Row: row.Number, Message: validationErr.Message})
				continue
			}
			return result, fmt.Errorf("row %d: %w", row.Number, err)
		}
		result.Created = append(result.Created, id)
	}

	log.Printf("[Importer] Импорт завершен: создано %d, с ошибками %d", len(result.Created), len(result.Failed))
	return result, nil
}

// categoryID возвращает ID категории из колонки category (число или название).
// Ненайденное название дает 0, как нераспознанная категория в JSON:
// строка проходит через валидатор и получает полное сообщение об ошибках.
func (i *Importer) categoryID(ctx context.Context, value string) (uint, error) {
	if value == "" {
		return 0, nil
	}
	if n, err := strconv.ParseUint(value, 10, 32); err == nil {
		return uint(n), nil
	}

	category, err := i.categories.ResolveCategory(ctx, value, i.createCategories)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return category.ID, nil
}
