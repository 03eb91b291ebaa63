package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	MetalRateUpdatedEventName           EventType = "MetalRateUpdated"
	ProductSavedEventName               EventType = "ProductSaved"
	ProductDeletedEventName             EventType = "ProductDeleted"
	DesignRequestStatusChangedEventName EventType = "DesignRequestStatusChanged"
)

type BaseEvent struct {
	EventID     string    `json:"eventId"`
	AggregateID string    `json:"aggregateId"`
	CreatedAt   time.Time `json:"createdAt"`
	EventType   EventType `json:"eventType"`
}

func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		EventID:     uuid.NewString(),
		AggregateID: aggregateID,
		CreatedAt:   time.Now().UTC(),
		EventType:   eventType,
	}
}

func (e BaseEvent) Type() EventType { return e.EventType }
func (e BaseEvent) GetID() string   { return e.EventID }
func (e BaseEvent) Key() string     { return e.AggregateID }

type Event interface {
	Type() EventType
	GetID() string
	Key() string
}

type MetalRateUpdatedEvent struct {
	BaseEvent
	MetalType    MetalType           `json:"metalType"`
	RatePerGram  decimal.Decimal     `json:"ratePerGram"`
	PreviousRate decimal.NullDecimal `json:"previousRate"`
	UpdatedBy    uuid.UUID           `json:"updatedBy"`
}

type ProductSavedEvent struct {
	BaseEvent
	ProductID    uuid.UUID       `json:"productId"`
	Name         string          `json:"name"`
	MetalType    MetalType       `json:"metalType"`
	PricePerGram decimal.Decimal `json:"pricePerGram"`
	Price        decimal.Decimal `json:"price"`
	Created      bool            `json:"created"`
}

type ProductDeletedEvent struct {
	BaseEvent
	ProductID uuid.UUID `json:"productId"`
}

type DesignRequestStatusChangedEvent struct {
	BaseEvent
	RequestID uuid.UUID    `json:"requestId"`
	UserID    uuid.UUID    `json:"userId"`
	From      DesignStatus `json:"from"`
	To        DesignStatus `json:"to"`
	ChangedBy uuid.UUID    `json:"changedBy"`
}
