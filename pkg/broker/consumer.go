package broker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/psigiovana/contratos-assinados/pkg/logger"
)

const (
	handleAttempts = 3
	handleBackoff  = 2 * time.Second
)

type Handler func(ctx context.Context, m kafka.Message) error

type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer reads a consumer group and commits each message once its handler
// succeeded or ran out of attempts.
type Consumer struct {
	l        *slog.Logger
	r        reader
	wg       *sync.WaitGroup
	handlers map[string]Handler
	backoff  time.Duration
}

func NewConsumer(l *slog.Logger, brokers []string, groupID string, topics ...string) *Consumer {
	l = l.WithGroup("kafka").With("group_id", groupID)

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		GroupTopics: topics,
		Logger:      &infoLogger{l: l},
		ErrorLogger: &errorLogger{l: l},
	})

	return newConsumer(l, r, handleBackoff)
}

func newConsumer(l *slog.Logger, r reader, backoff time.Duration) *Consumer {
	return &Consumer{
		l:        l,
		r:        r,
		wg:       &sync.WaitGroup{},
		handlers: make(map[string]Handler),
		backoff:  backoff,
	}
}

func (c *Consumer) Handle(topic string, handler Handler) *Consumer {
	c.handlers[topic] = handler
	return c
}

func (c *Consumer) Consume(ctx context.Context) *Consumer {
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		for {
			m, err := c.r.FetchMessage(ctx)
			if err != nil {
				if errors.Is(err, io.EOF) || ctx.Err() != nil {
					c.l.Info("consumer stopped")
					return
				}

				c.l.Error("fetch kafka message", "error", err)

				continue
			}

			c.dispatch(ctx, m)

			err = c.r.CommitMessages(ctx, m)
			if err != nil && ctx.Err() == nil {
				c.l.Error("commit kafka message", "error", err, "topic", m.Topic, "offset", m.Offset)
			}
		}
	}()

	return c
}

func (c *Consumer) dispatch(ctx context.Context, m kafka.Message) {
	ctx = logger.SetRequestID(ctx, fmt.Sprintf("%s-%d-%d", m.Topic, m.Partition, m.Offset))

	handler, ok := c.handlers[m.Topic]
	if !ok {
		c.l.WarnContext(ctx, "kafka handler not found", "topic", m.Topic)
		return
	}

	for attempt := 1; ; attempt++ {
		err := handler(ctx, m)
		if err == nil {
			return
		}

		if attempt == handleAttempts {
			c.l.ErrorContext(ctx, "drop kafka message", "error", err, "topic", m.Topic, "offset", m.Offset)
			return
		}

		c.l.WarnContext(ctx, "handle kafka message", "error", err, "attempt", attempt)

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.backoff * time.Duration(attempt)):
		}
	}
}

func (c *Consumer) Close() {
	err := c.r.Close()
	if err != nil {
		c.l.Error(fmt.Sprintf("close kafka reader: %s", err))
	}

	c.wg.Wait()
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
