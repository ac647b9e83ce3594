package notif

import (
	"context"
	"fmt"
	"log"
	"time"

	"socialfeed/internal/common"
	"socialfeed/internal/events"
)

const observerTimeout = 5 * time.Second

type LogAlertObserver struct{}

func NewLogAlertObserver() *LogAlertObserver {
	return &LogAlertObserver{}
}

func (l *LogAlertObserver) Name() string {
	return "log_observer"
}

func (l *LogAlertObserver) Update(event common.AlertEvent) error {
	log.Printf("🚨 Crisis alert: %s %s by %s", event.ContentKind, event.ContextID, event.AuthorID)
	return nil
}

// StoreAlertObserver persists alerts for human review.
type StoreAlertObserver struct {
	repo common.AlertRepository
}

func NewStoreAlertObserver(repo common.AlertRepository) *StoreAlertObserver {
	return &StoreAlertObserver{repo: repo}
}

func (s *StoreAlertObserver) Name() string {
	return "store_observer"
}

func (s *StoreAlertObserver) Update(event common.AlertEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), observerTimeout)
	defer cancel()

	if _, err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("failed to store alert: %w", err)
	}
	return nil
}

// EventAlertObserver republishes alerts as moderation.crisis_detected events.
type EventAlertObserver struct {
	emitter events.Emitter
}

func NewEventAlertObserver(emitter events.Emitter) *EventAlertObserver {
	return &EventAlertObserver{emitter: emitter}
}

func (e *EventAlertObserver) Name() string {
	return "event_observer"
}

func (e *EventAlertObserver) Update(event common.AlertEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), observerTimeout)
	defer cancel()

	return e.emitter.Emit(ctx, "moderation."+string(event.Type), map[string]interface{}{
		"contextId":   event.ContextID,
		"contentKind": string(event.ContentKind),
		"authorId":    event.AuthorID,
		"raisedAt":    event.RaisedAt.Format(time.RFC3339),
	})
}
