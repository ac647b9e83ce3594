package events

import (
	"context"
	"log"

	"socialfeed/internal/config"
)

type Emitter interface {
	Emit(ctx context.Context, eventType string, payload map[string]interface{}) error
	Close() error
}

// LogEmitter writes events to the process log. Used when no broker is configured.
type LogEmitter struct{}

func NewLogEmitter() *LogEmitter {
	return &LogEmitter{}
}

func (LogEmitter) Emit(_ context.Context, eventType string, payload map[string]interface{}) error {
	env := NewEnvelope(eventType, payload)
	body, err := env.Encode()
	if err != nil {
		return err
	}
	log.Printf("📤 Event %s (ID: %s): %s", env.RoutingKey(), env.EventID, body)
	return nil
}

func (LogEmitter) Close() error { return nil }

// NewEmitter picks RabbitMQ when enabled and falls back to the log emitter otherwise.
func NewEmitter(cfg *config.Config) Emitter {
	if !cfg.RabbitMQ.Enabled {
		log.Println("RabbitMQ disabled, events go to the log")
		return NewLogEmitter()
	}
	return NewRabbitPublisher(cfg.RabbitMQ)
}
