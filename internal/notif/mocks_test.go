package notif

import (
	"context"
	"sync"

	"socialfeed/internal/common"

	"github.com/stretchr/testify/mock"
)

type MockAlertRepository struct {
	mock.Mock
}

func (m *MockAlertRepository) Insert(ctx context.Context, event common.AlertEvent) (string, error) {
	args := m.Called(ctx, event)
	return args.String(0), args.Error(1)
}

func (m *MockAlertRepository) Recent(ctx context.Context, limit int) ([]common.AlertResponse, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]common.AlertResponse), args.Error(1)
}

type MockEmitter struct {
	mock.Mock
}

func (m *MockEmitter) Emit(ctx context.Context, eventType string, payload map[string]interface{}) error {
	args := m.Called(ctx, eventType, payload)
	return args.Error(0)
}

func (m *MockEmitter) Close() error {
	return m.Called().Error(0)
}

// recordingObserver collects every event it sees.
type recordingObserver struct {
	name  string
	err   error
	block chan struct{}

	mu     sync.Mutex
	events []common.AlertEvent
}

var _ common.Observer = (*recordingObserver)(nil)

func (r *recordingObserver) Name() string { return r.name }

func (r *recordingObserver) Update(event common.AlertEvent) error {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.err
}

func (r *recordingObserver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}
