package common

import (
	"context"
)

type Observer interface {
	Update(event AlertEvent) error
	Name() string
}

type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	Notify(event AlertEvent)
	NotifyAsync(event AlertEvent)
}

// AlertRepository persists raised alerts for human follow-up.
type AlertRepository interface {
	Insert(ctx context.Context, event AlertEvent) (string, error)
	Recent(ctx context.Context, limit int) ([]AlertResponse, error)
}
