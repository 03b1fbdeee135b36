package events

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// EventType определяет тип события о вопросе
type EventType string

const (
	EventQuestionCreated EventType = "question.created"
	EventQuestionDeleted EventType = "question.deleted"
)

// QuestionEvent - событие об изменении банка вопросов
type QuestionEvent struct {
	ID         string           `json:"id"`
	Type       EventType        `json:"type"`
	QuestionID uint             `json:"question_id"`
	Question   *entity.Question `json:"question,omitempty"`
	Timestamp  time.Time        `json:"timestamp"`
}

// NewQuestionCreatedEvent создает событие о новом вопросе
func NewQuestionCreatedEvent(question entity.Question) *QuestionEvent {
	return &QuestionEvent{
		ID:         watermill.NewUUID(),
		Type:       EventQuestionCreated,
		QuestionID: question.ID,
		Question:   &question,
		Timestamp:  time.Now().UTC(),
	}
}

// NewQuestionDeletedEvent создает событие об удалении вопроса
func NewQuestionDeletedEvent(questionID uint) *QuestionEvent {
	return &QuestionEvent{
		ID:         watermill.NewUUID(),
		Type:       EventQuestionDeleted,
		QuestionID: questionID,
		Timestamp:  time.Now().UTC(),
	}
}
