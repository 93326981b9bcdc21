package service

import (
	"context"
	"time"
)

// Event types published by the service.
const (
	EventRatingSubmitted = "rating.submitted"
)

// RatingEvent is emitted after a rating has been created or changed.
type RatingEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"`
	RatingID  int64     `json:"rating_id"`
	UserID    int64     `json:"user_id"`
	StoreID   int64     `json:"store_id"`
	Rating    int       `json:"rating"`
	Created   bool      `json:"created"`
	At        time.Time `json:"at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRatingEvent publishes a rating event for downstream consumers
	PublishRatingEvent(ctx context.Context, event *RatingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
