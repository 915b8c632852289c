package service

import (
	"context"
)

// RefreshEvent asks a worker to refresh one application
type RefreshEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	AppID     string `json:"app_id"`
	Reason    string `json:"reason,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRefreshEvent publishes a refresh job for async processing
	PublishRefreshEvent(ctx context.Context, event *RefreshEvent) error

	// Enabled is false when no queue is configured and jobs must run inline
	Enabled() bool

	// Close releases any resources held by the publisher
	Close() error
}
