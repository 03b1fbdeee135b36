package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
)

func TestQuizSelector_Select(t *testing.T) {
	ctx := context.Background()

	t.Run("Пустая выборка - nil без ошибки", func(t *testing.T) {
		// Arrange
		repo := new(MockQuestionRepository)
		filter := repository.QuestionFilter{CategoryID: uintPtr(1), ExcludeIDs: []uint{16, 17, 18}}
		repo.On("Count", ctx, filter).Return(int64(0), nil).Once()
		selector := NewQuizSelector(repo, &fixedRandom{})

		// Act
		question, err := selector.Select(ctx, uintPtr(1), []uint{16, 17, 18})

		// Assert
		require.NoError(t, err)
		assert.Nil(t, question)
		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "FindNth", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Индекс берется из источника случайных чисел", func(t *testing.T) {
		// Arrange
		repo := new(MockQuestionRepository)
		filter := repository.QuestionFilter{ExcludeIDs: []uint{1}}
		expected := &entity.Question{ID: 7}
		repo.On("Count", ctx, filter).Return(int64(18), nil).Once()
		repo.On("FindNth", ctx, filter, 5).Return(expected, nil).Once()
		rng := &fixedRandom{value: 5}
		selector := NewQuizSelector(repo, rng)

		// Act
		question, err := selector.Select(ctx, nil, []uint{1})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, expected, question)
		assert.Equal(t, 18, rng.lastN)
		repo.AssertExpectations(t)
	})

	t.Run("Кандидат исчез - повторная попытка", func(t *testing.T) {
		// Arrange
		repo := new(MockQuestionRepository)
		filter := repository.QuestionFilter{}
		repo.On("Count", ctx, filter).Return(int64(2), nil).Once()
		repo.On("FindNth", ctx, filter, 1).Return(nil, nil).Once()
		repo.On("Count", ctx, filter).Return(int64(1), nil).Once()
		repo.On("FindNth", ctx, filter, 0).Return(&entity.Question{ID: 3}, nil).Once()
		rng := &sequenceRandom{values: []int{1, 0}}
		selector := NewQuizSelector(repo, rng)

		// Act
		question, err := selector.Select(ctx, nil, nil)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, question)
		assert.Equal(t, uint(3), question.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Ошибка хранилища", func(t *testing.T) {
		repo := new(MockQuestionRepository)
		dbErr := errors.New("db down")
		repo.On("Count", ctx, repository.QuestionFilter{}).Return(int64(0), dbErr).Once()
		selector := NewQuizSelector(repo, &fixedRandom{})

		_, err := selector.Select(ctx, nil, nil)

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestRandomSource_SeededIsReproducible(t *testing.T) {
	a := NewRandomSource(42)
	b := NewRandomSource(42)
	for i := 0; i < 20; i++ {
		v := a.Intn(19)
		assert.Equal(t, v, b.Intn(19))
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 19)
	}
}

// sequenceRandom возвращает значения по порядку
type sequenceRandom struct {
	values []int
	pos    int
}

func (r *sequenceRandom) Intn(n int) int {
	v := r.values[r.pos]
	r.pos++
	return v
}
