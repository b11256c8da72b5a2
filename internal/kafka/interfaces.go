package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// ReaderInterface wraps the Kafka reader so consumers can be tested
// without a broker.
type ReaderInterface interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// WriterInterface wraps the Kafka writer.
type WriterInterface interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type EventProducer interface {
	SendEvent(ctx context.Context, event Event) error
	Close() error
}

type EventConsumer interface {
	Consume(ctx context.Context, handler func(context.Context, Event) error)
	Close() error
}
