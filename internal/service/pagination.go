package service

import (
	"context"
	"math"

	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// QuestionsPerPage - фиксированный размер страницы
const QuestionsPerPage = 10

// PagePolicy определяет поведение при странице за пределами выборки
type PagePolicy int

const (
	// PageStrict: страница за пределами выборки -> ErrNotFound (списки вопросов).
	// Первая страница (offset 0) допустима всегда, в том числе для пустой выборки.
	PageStrict PagePolicy = iota
	// PageLenient: страница за пределами выборки -> пустой список (поиск)
	PageLenient
)

// maxPage - наибольшая страница, смещение которой помещается в int
const maxPage = math.MaxInt/QuestionsPerPage + 1

// FetchPage загружает срез выборки и общее число подходящих записей
type FetchPage[T any] func(ctx context.Context, offset, limit int) ([]T, int64, error)

// Paginate возвращает страницу page (с единицы) и общее число записей выборки
func Paginate[T any](ctx context.Context, fetch FetchPage[T], page int, policy PagePolicy) ([]T, int64, error) {
	if page < 1 {
		if policy == PageStrict {
			return nil, 0, apperrors.ErrNotFound
		}
		page = 1
	}

	if page > maxPage {
		if policy == PageStrict {
			return nil, 0, apperrors.ErrNotFound
		}
		// Нужен только общий счетчик
		_, total, err := fetch(ctx, 0, QuestionsPerPage)
		if err != nil {
			return nil, 0, err
		}
		return []T{}, total, nil
	}

	offset := (page - 1) * QuestionsPerPage
	items, total, err := fetch(ctx, offset, QuestionsPerPage)
	if err != nil {
		return nil, 0, err
	}

	if policy == PageStrict && offset > 0 && int64(offset) >= total {
		return nil, 0, apperrors.ErrNotFound
	}

	if items == nil {
		items = []T{}
	}
	return items, total, nil
}
