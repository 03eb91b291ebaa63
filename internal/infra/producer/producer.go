package producer

//go:generate mockgen -source=producer.go -destination=mock/mock_writer.go -package=mock_producer

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// Writer kafka.Writer 的最小介面, 方便測試替換
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// IEventPublisher 發布領域事件
type IEventPublisher interface {
	// Publish 同步送出單一事件
	// 錯誤:
	//   - ErrPublisherClosed: publisher 已關閉
	//   - 序列化或 kafka 寫入錯誤
	Publish(ctx context.Context, event model.Event) error
	Close() error
}

var ErrPublisherClosed = fmt.Errorf("event publisher is closed")

const EventTypeHeader = "event_type"

type KafkaEventPublisher struct {
	writer       Writer
	writeTimeout time.Duration
	closed       atomic.Bool
}

var _ IEventPublisher = (*KafkaEventPublisher)(nil)

// NewKafkaEventPublisher 依設定建立 kafka writer
func NewKafkaEventPublisher(cfg *Config) (*KafkaEventPublisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		BatchSize:              cfg.BatchSize,
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequiredAcks(cfg.RequiredAcks),
		MaxAttempts:            cfg.RetryAttempts,
		AllowAutoTopicCreation: true,
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
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			log.Error().Msgf("kafka producer error: "+msg, args...)
		}),
	}

	return NewEventPublisherWithWriter(writer, cfg.WriteTimeout), nil
}

// NewEventPublisherWithWriter 直接注入 writer
func NewEventPublisherWithWriter(writer Writer, writeTimeout time.Duration) *KafkaEventPublisher {
	if writer == nil {
		panic("NewEventPublisherWithWriter: writer cannot be nil")
	}
	return &KafkaEventPublisher{writer: writer, writeTimeout: writeTimeout}
}

func (p *KafkaEventPublisher) Publish(ctx context.Context, event model.Event) error {
	if p.closed.Load() {
		return ErrPublisherClosed
	}

	msg, err := convertToMessage(event)
	if err != nil {
		return err
	}

	if p.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.writeTimeout)
		defer cancel()
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaEventPublisher) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.writer.Close()
}

func convertToMessage(event model.Event) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(event.Key()),
		Value: value,
		Headers: []kafka.Header{
			{
				Key:   EventTypeHeader,
				Value: []byte(event.Type()),
			},
		},
		Time: time.Now().UTC(),
	}, nil
}

// NoopPublisher 未設定 kafka 時使用
type NoopPublisher struct{}

var _ IEventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(ctx context.Context, event model.Event) error {
	log.Debug().Str("event_type", string(event.Type())).Str("key", event.Key()).Msg("event dropped, no broker configured")
	return nil
}

func (NoopPublisher) Close() error { return nil }
