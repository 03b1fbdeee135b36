package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// QuestionInput - данные нового вопроса. Нулевые значения считаются незаполненными.
type QuestionInput struct {
	Question   string `validate:"required"`
	Answer     string `validate:"required"`
	Category   uint   `validate:"required"`
	Difficulty int    `validate:"required"`
}

// difficultyRangeTag - правило диапазона сложности
var difficultyRangeTag = fmt.Sprintf("min=%d,max=%d", entity.MinDifficulty, entity.MaxDifficulty)

// QuestionValidator проверяет новый вопрос.
// Все три проверки выполняются всегда, сообщения склеиваются в фиксированном порядке.
type QuestionValidator struct {
	validate     *validator.Validate
	categoryRepo repository.CategoryRepository
}

// NewQuestionValidator создает валидатор вопросов
func NewQuestionValidator(categoryRepo repository.CategoryRepository) *QuestionValidator {
	return &QuestionValidator{
		validate:     validator.New(),
		categoryRepo: categoryRepo,
	}
}

// Validate возвращает nil, *apperrors.ValidationError или ошибку хранилища
func (v *QuestionValidator) Validate(ctx context.Context, input QuestionInput) error {
	var msg strings.Builder

	if err := v.validate.Struct(input); err != nil {
		msg.WriteString(apperrors.MsgEmptyRequiredField)
	}

	categoryExists := false
	if input.Category != 0 {
		exists, err := v.categoryRepo.Exists(ctx, input.Category)
		if err != nil {
			return fmt.Errorf("failed to check category %d: %w", input.Category, err)
		}
		categoryExists = exists
	}
	if !categoryExists {
		msg.WriteString(apperrors.MsgCategoryNotExist)
	}

	if err := v.validate.Var(input.Difficulty, difficultyRangeTag); err != nil {
		msg.WriteString(apperrors.MsgDifficultyOutOfRange)
	}

	if msg.Len() > 0 {
		return apperrors.NewValidationError(msg.String())
	}
	return nil
}
