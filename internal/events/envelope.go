// Package events publishes domain events to the social_events topic exchange.
package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Envelope wraps every published event.
type Envelope struct {
	EventID   string
	EventType string
	Timestamp time.Time
	Payload   map[string]interface{}
}

func NewEnvelope(eventType string, payload map[string]interface{}) Envelope {
	if payload == nil {
		payload = map[string]interface{}{}
	}
	return Envelope{
		EventID:   uuid.NewString(),
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// RoutingKey is social.<eventType>.
func (e Envelope) RoutingKey() string {
	return "social." + e.EventType
}

// Encode renders the envelope as JSON. Payload values must be JSON-like
// (strings, numbers, bools, nil, slices and maps of those).
func (e Envelope) Encode() ([]byte, error) {
	payload, err := structpb.NewStruct(e.Payload)
	if err != nil {
		return nil, fmt.Errorf("invalid payload for %s: %w", e.EventType, err)
	}
	msg := &structpb.Struct{Fields: map[string]*structpb.Value{
		"eventId":   structpb.NewStringValue(e.EventID),
		"eventType": structpb.NewStringValue(e.EventType),
		"timestamp": structpb.NewStringValue(e.Timestamp.Format(time.RFC3339Nano)),
		"payload":   structpb.NewStructValue(payload),
	}}
	return protojson.Marshal(msg)
}
