package gormrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос.
// Несуществующая категория (нарушение внешнего ключа) возвращается как ошибка валидации.
func (r *QuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	err := r.db.WithContext(ctx).Create(question).Error
	if isForeignKeyViolation(err) {
		return apperrors.NewValidationError(apperrors.MsgCategoryNotExist)
	}
	return err
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.WithContext(ctx).First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Delete удаляет вопрос и сообщает, существовал ли он
func (r *QuestionRepo) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&entity.Question{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// List возвращает страницу вопросов в порядке id и общее число подходящих вопросов
func (r *QuestionRepo) List(ctx context.Context, filter repository.QuestionFilter, offset, limit int) ([]entity.Question, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	questions := make([]entity.Question, 0, limit)
	if total == 0 || int64(offset) >= total {
		return questions, total, nil
	}

	err := r.filtered(ctx, filter).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

// Count возвращает число вопросов, подходящих под фильтр
func (r *QuestionRepo) Count(ctx context.Context, filter repository.QuestionFilter) (int64, error) {
	var count int64
	err := r.filtered(ctx, filter).Count(&count).Error
	return count, err
}

// FindNth возвращает n-й (с нуля) вопрос выборки в порядке id или nil, если его нет
func (r *QuestionRepo) FindNth(ctx context.Context, filter repository.QuestionFilter, n int) (*entity.Question, error) {
	var questions []entity.Question
	err := r.filtered(ctx, filter).
		Order("id").
		Offset(n).
		Limit(1).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, nil
	}
	return &questions[0], nil
}

// filtered строит запрос с условиями фильтра
func (r *QuestionRepo) filtered(ctx context.Context, filter repository.QuestionFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.Question{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	if filter.Search != "" {
		query = query.Where(`LOWER(question) LIKE LOWER(?) ESCAPE '\'`, "%"+escapeLike(filter.Search)+"%")
	}

	// Исключаем уже заданные в викторине вопросы
	if len(filter.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", filter.ExcludeIDs)
	}

	return query
}
