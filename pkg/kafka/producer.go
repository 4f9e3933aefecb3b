package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
)

var ErrProducerClosed = errors.New("kafka producer is closed")

type Message struct {
	Key     string
	Value   []byte
	Headers map[string]string
}

func (m Message) toKafka() kafka.Message {
	headers := make([]kafka.Header, 0, len(m.Headers))
	for k, v := range m.Headers {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}

	return kafka.Message{
		Key:     []byte(m.Key),
		Value:   m.Value,
		Headers: headers,
		Time:    time.Now(),
	}
}

type Producer interface {
	Produce(ctx context.Context, msgs ...Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type producer struct {
	writer messageWriter
	topic  string
	closed atomic.Bool
}

type Config struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration

	// Async makes Produce return once messages are buffered; delivery
	// failures are only logged.
	Async  bool
	Logger *slog.Logger
}

func NewProducer(cfg Config) (Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka: at least one broker is required")
	}

	if cfg.Topic == "" {
		return nil, errors.New("kafka: topic is required")
	}

	if cfg.BatchTimeout <= 0 {
		cfg.BatchTimeout = 50 * time.Millisecond
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  3,
		Async:        cfg.Async,
		Transport: &kafka.Transport{
			Dial: func(ctx context.Context, network string, address string) (net.Conn, error) {
				dialer := &kafka.Dialer{
					Timeout:   10 * time.Second,
					DualStack: true,
					KeepAlive: 30 * time.Second,
				}

				return dialer.DialContext(ctx, network, address)
			},
		},
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			logger.Error("kafka producer error", slog.String("detail", fmt.Sprintf(msg, args...)))
		}),
	}

	if cfg.Async {
		writer.Completion = func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Error("kafka async delivery failed", slog.Int("messages", len(messages)), slog.String("error", err.Error()))
			}
		}
	}

	return newProducer(writer, cfg.Topic), nil
}

func newProducer(w messageWriter, topic string) *producer {
	return &producer{writer: w, topic: topic}
}

func (p *producer) Produce(ctx context.Context, msgs ...Message) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}

	if len(msgs) == 0 {
		return nil
	}

	out := make([]kafka.Message, len(msgs))
	for i, m := range msgs {
		out[i] = m.toKafka()
	}

	if err := p.writer.WriteMessages(ctx, out...); err != nil {
		return fmt.Errorf("failed to produce to %s: %w", p.topic, err)
	}

	return nil
}

func (p *producer) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}

	return p.writer.Close()
}
