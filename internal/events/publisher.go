package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/yourusername/trivia-bank/internal/config"
)

// EventPublisher публикует события о вопросах
type EventPublisher interface {
	PublishQuestionEvent(ctx context.Context, event *QuestionEvent) error
	Close() error
}

// WatermillPublisher публикует события через любой watermill message.Publisher (gochannel, Kafka)
type WatermillPublisher struct {
	publisher message.Publisher
	topic     string
}

// NewWatermillPublisher оборачивает watermill publisher
func NewWatermillPublisher(publisher message.Publisher, topic string) *WatermillPublisher {
	return &WatermillPublisher{publisher: publisher, topic: topic}
}

// NewPublisher создает publisher по конфигурации:
// выключено -> NoOp, есть брокеры Kafka -> Kafka, иначе внутренний gochannel
func NewPublisher(cfg config.EventsConfig) (EventPublisher, error) {
	if !cfg.Enabled {
		log.Println("[Events] Публикация событий отключена")
		return NewNoOpPublisher(), nil
	}

	logger := watermill.NewStdLogger(false, false)

	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := kafka.NewPublisher(kafka.PublisherConfig{
			Brokers:   cfg.KafkaBrokers,
			Marshaler: kafka.DefaultMarshaler{},
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Kafka publisher: %w", err)
		}
		log.Printf("[Events] События публикуются в Kafka %v, топик %s", cfg.KafkaBrokers, cfg.Topic)
		return NewWatermillPublisher(publisher, cfg.Topic), nil
	}

	log.Printf("[Events] События публикуются во внутренний канал, топик %s", cfg.Topic)
	return NewWatermillPublisher(gochannel.NewGoChannel(gochannel.Config{}, logger), cfg.Topic), nil
}

// PublishQuestionEvent сериализует событие в JSON и публикует его в топик
func (p *WatermillPublisher) PublishQuestionEvent(ctx context.Context, event *QuestionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal question event: %w", err)
	}

	msg := message.NewMessage(event.ID, payload)
	msg.Metadata.Set("event_type", string(event.Type))
	msg.Metadata.Set("timestamp", event.Timestamp.Format(time.RFC3339))
	msg.SetContext(ctx)

	if err := p.publisher.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("failed to publish question event %s: %w", event.Type, err)
	}
	return nil
}

// Close закрывает publisher
func (p *WatermillPublisher) Close() error {
	return p.publisher.Close()
}

// NoOpPublisher - заглушка, которая ничего не публикует
type NoOpPublisher struct{}

// NewNoOpPublisher создает новый NoOpPublisher
func NewNoOpPublisher() *NoOpPublisher {
	return &NoOpPublisher{}
}

// PublishQuestionEvent ничего не делает
func (p *NoOpPublisher) PublishQuestionEvent(ctx context.Context, event *QuestionEvent) error {
	return nil
}

// Close ничего не делает
func (p *NoOpPublisher) Close() error {
	return nil
}
