package producer

import (
	"errors"
	"time"
)

// Config 事件 producer 設定
type Config struct {
	Brokers       []string
	Topic         string
	BatchSize     int
	BatchTimeout  time.Duration
	RequiredAcks  int
	RetryAttempts int
	WriteTimeout  time.Duration
}

// DefaultConfig 預設: 每筆事件立即送出, 等待所有副本確認
func DefaultConfig(brokers []string, topic string) *Config {
	return &Config{
		Brokers:       brokers,
		Topic:         topic,
		BatchSize:     1,
		BatchTimeout:  10 * time.Millisecond,
		RequiredAcks:  -1,
		RetryAttempts: 3,
		WriteTimeout:  5 * time.Second,
	}
}

func (c *Config) Validate() error {
	if len(c.Brokers) == 0 {
		return errors.New("kafka brokers cannot be empty")
	}
	if c.Topic == "" {
		return errors.New("kafka topic cannot be empty")
	}
	if c.BatchSize <= 0 {
		return errors.New("kafka batch size must be positive")
	}
	if c.RequiredAcks < -1 || c.RequiredAcks > 1 {
		return errors.New("kafka required acks must be -1, 0 or 1")
	}
	return nil
}
