package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/toyboxhq/toybox/internal/domain"
	pkgkafka "github.com/toyboxhq/toybox/pkg/kafka"
)

// Kafka topics for toy domain events.
var (
	TopicToyCreated = pkgkafka.Topic("toy", "created")
	TopicToyUpdated = pkgkafka.Topic("toy", "updated")
	TopicToyDeleted = pkgkafka.Topic("toy", "deleted")
)

// Aggregate type constant.
const AggregateTypeToy = "toy"

// Source identifier for events originating from this service.
const SourceToyBox = "toybox"

// ToyEventData is the payload for toy.created and toy.updated events.
type ToyEventData struct {
	ID         string  `json:"id"`
	SKU        string  `json:"sku"`
	Name       string  `json:"name"`
	Slug       string  `json:"slug"`
	CategoryID *string `json:"category_id,omitempty"`
	BrandID    *string `json:"brand_id,omitempty"`
	Price      int64   `json:"price"`
}

// ToyDeletedData is the payload for a toy.deleted event.
type ToyDeletedData struct {
	ID string `json:"id"`
}

// Publisher is the subset of the Kafka producer used by this package,
// abstracted for tests.
type Publisher interface {
	Publish(ctx context.Context, topic string, event *pkgkafka.Event) error
}

// Producer publishes toy domain events to Kafka.
type Producer struct {
	kafka  Publisher
	logger *slog.Logger
}

// NewProducer creates a new event producer.
func NewProducer(kafka Publisher, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishToyCreated publishes a toy.created event.
func (p *Producer) PublishToyCreated(ctx context.Context, toy *domain.Toy) error {
	return p.publishToy(ctx, TopicToyCreated, toy)
}

// PublishToyUpdated publishes a toy.updated event.
func (p *Producer) PublishToyUpdated(ctx context.Context, toy *domain.Toy) error {
	return p.publishToy(ctx, TopicToyUpdated, toy)
}

// PublishToyDeleted publishes a toy.deleted event.
func (p *Producer) PublishToyDeleted(ctx context.Context, id string) error {
	event, err := pkgkafka.NewEvent(TopicToyDeleted, id, AggregateTypeToy, SourceToyBox, ToyDeletedData{ID: id})
	if err != nil {
		return fmt.Errorf("create toy.deleted event: %w", err)
	}
	return p.kafka.Publish(ctx, TopicToyDeleted, event)
}

func (p *Producer) publishToy(ctx context.Context, topic string, toy *domain.Toy) error {
	data := ToyEventData{
		ID:         toy.ID,
		SKU:        toy.SKU,
		Name:       toy.Name,
		Slug:       toy.Slug,
		CategoryID: toy.CategoryID,
		BrandID:    toy.BrandID,
		Price:      toy.Price,
	}

	event, err := pkgkafka.NewEvent(topic, toy.ID, AggregateTypeToy, SourceToyBox, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", topic, err)
	}

	return p.kafka.Publish(ctx, topic, event)
}
