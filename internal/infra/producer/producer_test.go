package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	mock_producer "github.com/Sathish182603/Gleam-Heaven/internal/infra/producer/mock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "default ok", modify: func(c *Config) {}},
		{name: "no brokers", modify: func(c *Config) { c.Brokers = nil }, wantErr: true},
		{name: "no topic", modify: func(c *Config) { c.Topic = "" }, wantErr: true},
		{name: "bad batch size", modify: func(c *Config) { c.BatchSize = 0 }, wantErr: true},
		{name: "bad acks", modify: func(c *Config) { c.RequiredAcks = 2 }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig([]string{"localhost:9092"}, "gleam-heaven.events")
			tc.modify(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPublishWritesEventMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := mock_producer.NewMockWriter(ctrl)
	publisher := NewEventPublisherWithWriter(writer, time.Second)

	productID := uuid.New()
	event := model.ProductSavedEvent{
		BaseEvent:    model.NewBaseEvent(model.ProductSavedEventName, productID.String()),
		ProductID:    productID,
		Name:         "Solitaire Ring",
		MetalType:    model.MetalGold,
		PricePerGram: decimal.NewFromInt(6000),
		Price:        decimal.NewFromInt(60000),
		Created:      true,
	}

	var written []kafka.Message
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, msgs ...kafka.Message) error {
			_, hasDeadline := ctx.Deadline()
			require.True(t, hasDeadline)
			written = append(written, msgs...)
			return nil
		}).Times(1)

	require.NoError(t, publisher.Publish(context.Background(), event))
	require.Len(t, written, 1)

	msg := written[0]
	require.Equal(t, productID.String(), string(msg.Key))
	require.Len(t, msg.Headers, 1)
	require.Equal(t, EventTypeHeader, msg.Headers[0].Key)
	require.Equal(t, string(model.ProductSavedEventName), string(msg.Headers[0].Value))

	var decoded model.ProductSavedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	require.Equal(t, productID, decoded.ProductID)
	require.True(t, decimal.NewFromInt(60000).Equal(decoded.Price))
}

func TestPublishPropagatesWriterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := mock_producer.NewMockWriter(ctrl)
	publisher := NewEventPublisherWithWriter(writer, 0)

	writeErr := errors.New("broker unavailable")
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(writeErr)

	event := model.ProductDeletedEvent{
		BaseEvent: model.NewBaseEvent(model.ProductDeletedEventName, uuid.NewString()),
	}
	require.ErrorIs(t, publisher.Publish(context.Background(), event), writeErr)
}

func TestPublishAfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := mock_producer.NewMockWriter(ctrl)
	writer.EXPECT().Close().Return(nil).Times(1)
	publisher := NewEventPublisherWithWriter(writer, time.Second)

	require.NoError(t, publisher.Close())
	require.NoError(t, publisher.Close())

	event := model.ProductDeletedEvent{
		BaseEvent: model.NewBaseEvent(model.ProductDeletedEventName, uuid.NewString()),
	}
	require.ErrorIs(t, publisher.Publish(context.Background(), event), ErrPublisherClosed)
}

func TestNoopPublisher(t *testing.T) {
	var publisher IEventPublisher = NoopPublisher{}
	event := model.ProductDeletedEvent{
		BaseEvent: model.NewBaseEvent(model.ProductDeletedEventName, uuid.NewString()),
	}
	require.NoError(t, publisher.Publish(context.Background(), event))
	require.NoError(t, publisher.Close())
}

func TestNewKafkaEventPublisherRejectsBadConfig(t *testing.T) {
	_, err := NewKafkaEventPublisher(&Config{})
	require.Error(t, err)
}
