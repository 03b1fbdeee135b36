package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
)

// maxSelectAttempts ограничивает повторы, если выбранный вопрос удалили между подсчетом и выборкой
const maxSelectAttempts = 3

// RandomSource - источник случайных чисел для выбора вопроса
type RandomSource interface {
	// Intn возвращает число в [0, n)
	Intn(n int) int
}

// lockedRand делает *rand.Rand безопасным для конкурентных запросов
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource создает потокобезопасный источник с заданным seed
func NewRandomSource(seed int64) RandomSource {
	return &lockedRand{rnd: rand.New(rand.NewSource(seed))}
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

// QuizSelector выбирает случайный еще не заданный вопрос
type QuizSelector struct {
	questionRepo repository.QuestionRepository
	rng          RandomSource
}

// NewQuizSelector создает селектор. При rng == nil используется источник, инициализированный временем.
func NewQuizSelector(questionRepo repository.QuestionRepository, rng RandomSource) *QuizSelector {
	if rng == nil {
		rng = NewRandomSource(time.Now().UnixNano())
	}
	return &QuizSelector{questionRepo: questionRepo, rng: rng}
}

// Select возвращает равновероятно выбранный вопрос категории categoryID (nil - все категории),
// не входящий в previous. Пустая выборка -> nil без ошибки (викторина закончилась).
func (s *QuizSelector) Select(ctx context.Context, categoryID *uint, previous []uint) (*entity.Question, error) {
	filter := repository.QuestionFilter{
		CategoryID: categoryID,
		ExcludeIDs: previous,
	}

	for attempt := 1; attempt <= maxSelectAttempts; attempt++ {
		count, err := s.questionRepo.Count(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to count quiz candidates: %w", err)
		}
		if count == 0 {
			return nil, nil
		}

		question, err := s.questionRepo.FindNth(ctx, filter, s.rng.Intn(int(count)))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch quiz candidate: %w", err)
		}
		if question != nil {
			return question, nil
		}

		log.Printf("[QuizSelector] Кандидат исчез между подсчетом и выборкой (попытка %d/%d)", attempt, maxSelectAttempts)
	}

	return nil, nil
}
