package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// CategoryRepo реализует repository.CategoryRepository
type CategoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo создает новый репозиторий категорий
func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

// Create создает новую категорию
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// List возвращает все категории в порядке id
func (r *CategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	err := r.db.WithContext(ctx).Order("id").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID возвращает категорию по ID
func (r *CategoryRepo) GetByID(ctx context.Context, id uint) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindByType ищет категорию по названию без учета регистра
func (r *CategoryRepo) FindByType(ctx context.Context, categoryType string) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).
		Where("LOWER(type) = LOWER(?)", categoryType).
		Order("id").
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Exists проверяет наличие категории
func (r *CategoryRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Category{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete удаляет категорию и ее вопросы в одной транзакции
func (r *CategoryRepo) Delete(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&entity.Question{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entity.Category{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
