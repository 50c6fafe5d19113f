package services

import (
	"context"
	"log/slog"
)

// Domain event types published after successful writes.
const (
	EventItemCreated    = "item.created"
	EventOutfitCreated  = "outfit.created"
	EventUserRegistered = "user.registered"
	EventRentalCreated  = "rental.created"
)

// EventPublisher delivers domain events to interested consumers.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

// Recorder counts domain activity for metrics.
type Recorder interface {
	EntityCreated(entity string)
	SigninFailed()
}

// publishEvent is best effort: the write has already been committed, so a
// publishing failure is logged and swallowed.
func publishEvent(ctx context.Context, publisher EventPublisher, eventType string, payload any) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, eventType, payload); err != nil {
		slog.WarnContext(ctx, "failed to publish event", "event", eventType, "error", err)
		return
	}
	slog.DebugContext(ctx, "published event", "event", eventType)
}

func recordCreated(recorder Recorder, entity string) {
	if recorder != nil {
		recorder.EntityCreated(entity)
	}
}
