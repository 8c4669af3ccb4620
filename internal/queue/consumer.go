package queue

import (
	"context"
	"errors"
	"io"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"proapp/internal/config"
)

// MessageReader is satisfied by *kafka.Reader.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

type Consumer struct {
	reader MessageReader
	log    *zap.Logger
}

func NewConsumer(cfg *config.Config, log *zap.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		GroupID:  cfg.Kafka.GroupID,
		Topic:    cfg.Kafka.EmailTopic,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	return NewConsumerWithReader(reader, log)
}

func NewConsumerWithReader(r MessageReader, log *zap.Logger) *Consumer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Consumer{reader: r, log: log.Named("kafka.consumer")}
}

// Listen decodes messages into out until ctx is cancelled or the reader is
// closed, then closes out. Sending blocks while out is full, which holds
// back the reader.
func (c *Consumer) Listen(ctx context.Context, out chan<- EmailJob) error {
	defer close(out)
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			c.log.Error("read error", zap.Error(err))
			return err
		}

		job, err := DecodeEmailJob(msg.Value)
		if err != nil {
			c.log.Warn("dropping malformed job", zap.Int64("offset", msg.Offset), zap.Error(err))
			continue
		}
		c.log.Debug("received job", zap.String("id", job.ID), zap.String("type", job.Type))

		select {
		case out <- job:
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
