package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryMap(t *testing.T) {
	categories := []Category{
		{ID: 1, Type: "science"},
		{ID: 2, Type: "art"},
		{ID: 6, Type: "sports"},
	}

	result := CategoryMap(categories)

	assert.Len(t, result, 3)
	assert.Equal(t, "science", result[1])
	assert.Equal(t, "art", result[2])
	assert.Equal(t, "sports", result[6])
}

func TestCategoryMap_Empty(t *testing.T) {
	result := CategoryMap(nil)

	assert.NotNil(t, result, "Пустой список должен давать пустую, а не nil карту")
	assert.Empty(t, result)
}
