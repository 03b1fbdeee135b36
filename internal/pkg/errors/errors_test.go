package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_MatchesSentinel(t *testing.T) {
	err := NewValidationError(MsgCategoryNotExist)

	assert.True(t, errors.Is(err, ErrValidation), "ValidationError должна совпадать с ErrValidation")
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "Category doesn't exist. ", err.Error())
}

func TestValidationError_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create question: %w", NewValidationError(MsgDifficultyOutOfRange))

	var vErr *ValidationError
	assert.True(t, errors.As(wrapped, &vErr))
	assert.Equal(t, MsgDifficultyOutOfRange, vErr.Message)
	assert.True(t, errors.Is(wrapped, ErrValidation))
}
