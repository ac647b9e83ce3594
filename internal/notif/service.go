package notif

import (
	"context"
	"log"
	"sync"
	"time"

	"socialfeed/internal/common"
	"socialfeed/internal/config"
	"socialfeed/internal/events"
)

// AlertManager fans alert events out to observers from a fixed worker pool.
type AlertManager struct {
	observers    map[string]common.Observer
	eventChannel chan common.AlertEvent
	workerPool   int
	ctx          context.Context
	cancel       context.CancelFunc
	mu           sync.RWMutex
	wg           sync.WaitGroup
}

var _ common.Subject = (*AlertManager)(nil)

func NewAlertManager(workerPoolSize, bufferSize int) *AlertManager {
	if workerPoolSize < 1 {
		workerPoolSize = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	am := &AlertManager{
		observers:    make(map[string]common.Observer),
		eventChannel: make(chan common.AlertEvent, bufferSize),
		workerPool:   workerPoolSize,
		ctx:          ctx,
		cancel:       cancel,
	}

	for i := 0; i < workerPoolSize; i++ {
		am.wg.Add(1)
		go am.processEvents()
	}

	return am
}

func (am *AlertManager) Subscribe(observer common.Observer) {
	am.mu.Lock()
	defer am.mu.Unlock()
	am.observers[observer.Name()] = observer
	log.Printf("Observer %s subscribed", observer.Name())
}

func (am *AlertManager) Unsubscribe(observer common.Observer) {
	am.mu.Lock()
	defer am.mu.Unlock()
	delete(am.observers, observer.Name())
	log.Printf("Observer %s unsubscribed", observer.Name())
}

// Notify delivers synchronously. A failing observer does not stop the others.
func (am *AlertManager) Notify(event common.AlertEvent) {
	am.mu.RLock()
	observers := make([]common.Observer, 0, len(am.observers))
	for _, obs := range am.observers {
		observers = append(observers, obs)
	}
	am.mu.RUnlock()

	for _, observer := range observers {
		if err := observer.Update(event); err != nil {
			log.Printf("Observer %s update failed: %v", observer.Name(), err)
		}
	}
}

// NotifyAsync never blocks; when the queue is full the event is dropped.
func (am *AlertManager) NotifyAsync(event common.AlertEvent) {
	select {
	case <-am.ctx.Done():
		log.Printf("AlertManager stopped, dropping event: %s", event.Type)
		return
	default:
	}

	select {
	case am.eventChannel <- event:
	default:
		log.Printf("Alert channel full, dropping event: %s for %s", event.Type, event.ContextID)
	}
}

func (am *AlertManager) processEvents() {
	defer am.wg.Done()

	for {
		select {
		case event := <-am.eventChannel:
			am.Notify(event)
		case <-am.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers. The channel stays open so a late NotifyAsync cannot panic.
func (am *AlertManager) Shutdown() {
	am.cancel()
	am.wg.Wait()
	if n := len(am.eventChannel); n > 0 {
		log.Printf("AlertManager shutdown with %d undelivered alerts", n)
	}
	log.Println("AlertManager shutdown complete")
}

// CrisisService raises crisis alerts for content that passed moderation but matched a
// crisis phrase.
type CrisisService struct {
	manager *AlertManager
	store   common.AlertRepository
	now     func() time.Time
}

func NewCrisisService(cfg *config.Config, store common.AlertRepository, emitter events.Emitter) *CrisisService {
	manager := NewAlertManager(cfg.Notification.Workers, cfg.Notification.ChannelBufferSize)

	manager.Subscribe(NewLogAlertObserver())
	if !cfg.Notification.Enabled {
		return newCrisisService(manager, store)
	}
	if store != nil {
		manager.Subscribe(NewStoreAlertObserver(store))
	}
	if emitter != nil {
		manager.Subscribe(NewEventAlertObserver(emitter))
	}

	return newCrisisService(manager, store)
}

func newCrisisService(manager *AlertManager, store common.AlertRepository) *CrisisService {
	return &CrisisService{
		manager: manager,
		store:   store,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// RaiseCrisisAlert queues the alert and returns immediately.
func (s *CrisisService) RaiseCrisisAlert(contextID string, kind common.ContentKind, authorID string) {
	s.manager.NotifyAsync(common.AlertEvent{
		Type:        common.CrisisAlertType,
		ContextID:   contextID,
		ContentKind: kind,
		AuthorID:    authorID,
		RaisedAt:    s.now(),
		Metadata: common.AlertMetadata{
			"severity": "high",
		},
	})
}

// RecentAlerts lists stored alerts, newest first.
func (s *CrisisService) RecentAlerts(ctx context.Context, limit int) ([]common.AlertResponse, error) {
	if s.store == nil {
		return nil, common.Unavailable(nil, "alert store is not configured")
	}
	return s.store.Recent(ctx, limit)
}

func (s *CrisisService) Shutdown() {
	s.manager.Shutdown()
	log.Println("CrisisService shutdown complete")
}
