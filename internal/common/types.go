package common

import (
	"time"
)

// ContentKind names the kind of user content an alert refers to.
type ContentKind string

const (
	ContentPublication ContentKind = "publication"
	ContentComment     ContentKind = "comment"
	ContentCommunity   ContentKind = "community"
)

type AlertType string

const (
	CrisisAlertType AlertType = "crisis_detected"
)

type AlertMetadata map[string]interface{}

// AlertEvent is delivered to alert observers. ContextID identifies the content that
// triggered the alert (publication id, comment id or community name).
type AlertEvent struct {
	Type        AlertType
	ContextID   string
	ContentKind ContentKind
	AuthorID    string
	RaisedAt    time.Time
	Metadata    AlertMetadata
}

type AlertResponse struct {
	ID          string        `json:"id"`
	Type        string        `json:"type"`
	ContextID   string        `json:"context_id"`
	ContentKind string        `json:"content_kind"`
	AuthorID    string        `json:"author_id,omitempty"`
	RaisedAt    time.Time     `json:"raised_at"`
	Metadata    AlertMetadata `json:"metadata,omitempty"`
}
