package repository

import (
	"context"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	List(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id uint) (*entity.Category, error)
	// FindByType ищет категорию по названию без учета регистра
	FindByType(ctx context.Context, categoryType string) (*entity.Category, error)
	Exists(ctx context.Context, id uint) (bool, error)
	// Delete удаляет категорию вместе со всеми ее вопросами
	Delete(ctx context.Context, id uint) (bool, error)
}
