package repository

import (
	"context"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// QuestionFilter описывает выборку вопросов.
// Пустой фильтр означает все вопросы.
type QuestionFilter struct {
	// CategoryID ограничивает выборку одной категорией (nil - все категории)
	CategoryID *uint
	// Search - подстрока текста вопроса без учета регистра (пустая строка - без фильтра)
	Search string
	// ExcludeIDs - вопросы, которые нужно исключить (уже заданные в викторине)
	ExcludeIDs []uint
}

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	GetByID(ctx context.Context, id uint) (*entity.Question, error)
	// Delete удаляет вопрос и сообщает, существовал ли он
	Delete(ctx context.Context, id uint) (bool, error)
	// List возвращает страницу вопросов в порядке id и общее число подходящих строк
	List(ctx context.Context, filter QuestionFilter, offset, limit int) ([]entity.Question, int64, error)
	// Count возвращает число вопросов, подходящих под фильтр
	Count(ctx context.Context, filter QuestionFilter) (int64, error)
	// FindNth возвращает n-й (с нуля) вопрос выборки в порядке id или nil, если его нет
	FindNth(ctx context.Context, filter QuestionFilter, n int) (*entity.Question, error)
}
