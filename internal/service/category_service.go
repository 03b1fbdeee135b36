package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
)

// CategoryService предоставляет методы для работы с категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	questionRepo repository.QuestionRepository
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(categoryRepo repository.CategoryRepository, questionRepo repository.QuestionRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
	}
}

// ListCategories возвращает все категории в виде id -> type
func (s *CategoryService) ListCategories(ctx context.Context) (map[uint]string, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return entity.CategoryMap(categories), nil
}

// ListCategoryQuestions возвращает страницу вопросов категории.
// Неизвестная категория и страница за пределами выборки -> ErrNotFound.
func (s *CategoryService) ListCategoryQuestions(ctx context.Context, categoryID uint, page int) ([]entity.Question, int64, error) {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, 0, err
	}

	filter := repository.QuestionFilter{CategoryID: &categoryID}
	return Paginate(ctx, func(ctx context.Context, offset, limit int) ([]entity.Question, int64, error) {
		return s.questionRepo.List(ctx, filter, offset, limit)
	}, page, PageStrict)
}

// ResolveCategory находит категорию по названию без учета регистра.
// Если категории нет и create == true, она создается.
func (s *CategoryService) ResolveCategory(ctx context.Context, categoryType string, create bool) (*entity.Category, error) {
	categoryType = strings.TrimSpace(categoryType)

	category, err := s.categoryRepo.FindByType(ctx, categoryType)
	if err == nil || !create || categoryType == "" {
		return category, err
	}

	category = &entity.Category{Type: categoryType}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category %q: %w", categoryType, err)
	}
	return category, nil
}

// DeleteCategory удаляет категорию вместе с ее вопросами
func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID uint) (bool, error) {
	return s.categoryRepo.Delete(ctx, categoryID)
}
