package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись, категория или страница не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrBadRequest используется, когда тело запроса не удалось разобрать.
	ErrBadRequest = errors.New("bad request")
)

// Сегменты сообщения валидации вопроса. Порядок и пробелы являются частью API.
const (
	MsgEmptyRequiredField   = "There is an empty required field. "
	MsgCategoryNotExist     = "Category doesn't exist. "
	MsgDifficultyOutOfRange = "Difficulty range is between 1 to 5."
)

// ValidationError несет итоговое сообщение для ответа 422.
// errors.Is(err, ErrValidation) возвращает true для любой ValidationError.
type ValidationError struct {
	Message string
}

// NewValidationError создает ошибку валидации с готовым сообщением
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is позволяет сравнивать ValidationError с ErrValidation через errors.Is
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
