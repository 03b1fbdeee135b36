package gormrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
	"github.com/yourusername/trivia-bank/pkg/database"
)

// setupTestDB поднимает SQLite в памяти со схемой и начальными данными
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLiteDB(database.InMemorySQLite, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, database.MigrateDB(db, database.DriverSQLite))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func questionIDs(questions []entity.Question) []uint {
	ids := make([]uint, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}

func uintPtr(v uint) *uint { return &v }

func TestCategoryRepo_List(t *testing.T) {
	repo := NewCategoryRepo(setupTestDB(t))

	categories, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 6)
	assert.Equal(t, uint(1), categories[0].ID)
	assert.Equal(t, "science", categories[0].Type)
	assert.Equal(t, "sports", categories[5].Type)
}

func TestCategoryRepo_GetByIDAndExists(t *testing.T) {
	repo := NewCategoryRepo(setupTestDB(t))
	ctx := context.Background()

	category, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "geography", category.Type)

	_, err = repo.GetByID(ctx, 1000)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	exists, err := repo.Exists(ctx, 2)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, 1000)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCategoryRepo_FindByType_CaseInsensitive(t *testing.T) {
	repo := NewCategoryRepo(setupTestDB(t))
	ctx := context.Background()

	category, err := repo.FindByType(ctx, "HiStOrY")
	require.NoError(t, err)
	assert.Equal(t, uint(4), category.ID)

	_, err = repo.FindByType(ctx, "cooking")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCategoryRepo_CreateAndDeleteCascade(t *testing.T) {
	db := setupTestDB(t)
	categories := NewCategoryRepo(db)
	questions := NewQuestionRepo(db)
	ctx := context.Background()

	category := &entity.Category{Type: "cooking"}
	require.NoError(t, categories.Create(ctx, category))
	require.NotZero(t, category.ID)

	question := &entity.Question{Question: "Main ingredient of guacamole?", Answer: "Avocado", CategoryID: category.ID, Difficulty: 1}
	require.NoError(t, questions.Create(ctx, question))

	deleted, err := categories.Delete(ctx, category.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = questions.GetByID(ctx, question.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	deleted, err = categories.Delete(ctx, category.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestQuestionRepo_List_Pagination(t *testing.T) {
	repo := NewQuestionRepo(setupTestDB(t))
	ctx := context.Background()

	page, total, err := repo.List(ctx, repository.QuestionFilter{}, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(19), total)
	assert.Equal(t, []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, questionIDs(page))

	page, total, err = repo.List(ctx, repository.QuestionFilter{}, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(19), total)
	assert.Equal(t, []uint{11, 12, 13, 14, 15, 16, 17, 18, 19}, questionIDs(page))

	page, total, err = repo.List(ctx, repository.QuestionFilter{}, 20, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(19), total)
	assert.Empty(t, page)
}

func TestQuestionRepo_List_Filters(t *testing.T) {
	repo := NewQuestionRepo(setupTestDB(t))
	ctx := context.Background()

	tests := []struct {
		name   string
		filter repository.QuestionFilter
		want   []uint
	}{
		{
			name:   "Категория",
			filter: repository.QuestionFilter{CategoryID: uintPtr(1)},
			want:   []uint{16, 17, 18},
		},
		{
			name:   "Поиск без учета регистра",
			filter: repository.QuestionFilter{Search: "TITLE"},
			want:   []uint{3, 5},
		},
		{
			name:   "Поиск по одному совпадению",
			filter: repository.QuestionFilter{Search: "indian"},
			want:   []uint{11},
		},
		{
			name:   "Спецсимволы LIKE ищутся буквально",
			filter: repository.QuestionFilter{Search: "%"},
			want:   []uint{},
		},
		{
			name:   "Исключение ID",
			filter: repository.QuestionFilter{CategoryID: uintPtr(1), ExcludeIDs: []uint{16, 18}},
			want:   []uint{17},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, total, err := repo.List(ctx, tt.filter, 0, 10)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), total)
			assert.Equal(t, tt.want, questionIDs(page))
		})
	}
}

func TestQuestionRepo_CountAndFindNth(t *testing.T) {
	repo := NewQuestionRepo(setupTestDB(t))
	ctx := context.Background()
	filter := repository.QuestionFilter{CategoryID: uintPtr(2), ExcludeIDs: []uint{13}}

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	question, err := repo.FindNth(ctx, filter, 1)
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, uint(14), question.ID)

	question, err = repo.FindNth(ctx, filter, 3)
	require.NoError(t, err)
	assert.Nil(t, question)
}

func TestQuestionRepo_Create(t *testing.T) {
	repo := NewQuestionRepo(setupTestDB(t))
	ctx := context.Background()

	question := &entity.Question{Question: "Heaviest planet?", Answer: "Jupiter", CategoryID: 1, Difficulty: 2}
	require.NoError(t, repo.Create(ctx, question))
	assert.Equal(t, uint(20), question.ID)

	stored, err := repo.GetByID(ctx, question.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jupiter", stored.Answer)
	assert.Equal(t, uint(1), stored.CategoryID)
}

func TestQuestionRepo_SearchNonASCIICaseInsensitive(t *testing.T) {
	repo := NewQuestionRepo(setupTestDB(t))
	ctx := context.Background()

	question := &entity.Question{Question: "Где находится ÜBERSEE-Museum?", Answer: "Бремен", CategoryID: 3, Difficulty: 2}
	require.NoError(t, repo.Create(ctx, question))

	for _, term := range []string{"übersee", "ГДЕ НАХОДИТСЯ", "Übersee-museum"} {
		page, total, err := repo.List(ctx, repository.QuestionFilter{Search: term}, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total, term)
		assert.Equal(t, []uint{question.ID}, questionIDs(page), term)
	}
}

func TestCategoryRepo_FindByTypeNonASCII(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepo(db)
	ctx := context.Background()

	created := &entity.Category{Type: "Кухня"}
	require.NoError(t, repo.Create(ctx, created))

	found, err := repo.FindByType(ctx, "КУХНЯ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestQuestionRepo_Create_UnknownCategory(t *testing.T) {
	repo := NewQuestionRepo(setupTestDB(t))

	err := repo.Create(context.Background(), &entity.Question{Question: "Q", Answer: "A", CategoryID: 1000, Difficulty: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, apperrors.MsgCategoryNotExist, err.Error())
}

func TestQuestionRepo_Delete(t *testing.T) {
	repo := NewQuestionRepo(setupTestDB(t))
	ctx := context.Background()

	deleted, err := repo.Delete(ctx, 5)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetByID(ctx, 5)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	deleted, err = repo.Delete(ctx, 5)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
}
