package queue

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"proapp/internal/config"
)

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	writer MessageWriter
	log    *zap.Logger
}

// NewProducer returns nil when kafka is disabled. A nil *Producer is valid
// and skips every publish.
func NewProducer(cfg *config.Config, log *zap.Logger) *Producer {
	if log == nil {
		log = zap.NewNop()
	}
	if !cfg.Kafka.Enabled {
		log.Warn("kafka disabled, email jobs will be dropped")
		return nil
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Kafka.Brokers...),
		Topic:        cfg.Kafka.EmailTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		WriteTimeout: 10 * time.Second,
	}
	return NewProducerWithWriter(w, log)
}

func NewProducerWithWriter(w MessageWriter, log *zap.Logger) *Producer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Producer{writer: w, log: log.Named("kafka.producer")}
}

func (p *Producer) Publish(ctx context.Context, key, value []byte) error {
	// never fail the caller because kafka is missing
	if p == nil || p.writer == nil {
		zap.L().Warn("kafka producer not ready, skip publish", zap.ByteString("key", key))
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
		Time:  time.Now(),
	})
}

func (p *Producer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
