package events

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"socialfeed/internal/common"
	"socialfeed/internal/config"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	baseReconnectDelay = time.Second
	maxReconnectDelay  = 30 * time.Second
)

type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type session struct {
	ch     amqpChannel
	conn   io.Closer
	closed <-chan *amqp.Error
}

func dialAMQP(url string) (*session, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	return &session{
		ch:     ch,
		conn:   conn,
		closed: conn.NotifyClose(make(chan *amqp.Error, 1)),
	}, nil
}

// RabbitPublisher publishes envelopes to a durable topic exchange and reconnects
// in the background when the broker goes away.
type RabbitPublisher struct {
	cfg   config.RabbitMQConfig
	dial  func(url string) (*session, error)
	after func(time.Duration) <-chan time.Time

	mu   sync.RWMutex
	sess *session

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

func NewRabbitPublisher(cfg config.RabbitMQConfig) *RabbitPublisher {
	p := newRabbitPublisher(cfg, dialAMQP, time.After)
	p.start()
	return p
}

func newRabbitPublisher(cfg config.RabbitMQConfig, dial func(string) (*session, error), after func(time.Duration) <-chan time.Time) *RabbitPublisher {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	return &RabbitPublisher{
		cfg:   cfg,
		dial:  dial,
		after: after,
		done:  make(chan struct{}),
	}
}

func (p *RabbitPublisher) start() {
	if err := p.connect(); err != nil {
		log.Printf("❌ RabbitMQ connection failed: %v", err)
		p.wg.Add(1)
		go p.reconnect()
	}
}

func (p *RabbitPublisher) connect() error {
	log.Println("🐰 Connecting to RabbitMQ...")
	sess, err := p.dial(p.cfg.URL)
	if err != nil {
		return err
	}
	if err := sess.ch.ExchangeDeclare(p.cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		sess.ch.Close()
		sess.conn.Close()
		return err
	}

	p.mu.Lock()
	select {
	case <-p.done:
		p.mu.Unlock()
		sess.ch.Close()
		sess.conn.Close()
		return nil
	default:
	}
	p.sess = sess
	p.mu.Unlock()

	p.wg.Add(1)
	go p.watch(sess)
	log.Printf("✅ RabbitMQ connected, exchange %s", p.cfg.Exchange)
	return nil
}

func (p *RabbitPublisher) watch(sess *session) {
	defer p.wg.Done()
	select {
	case <-p.done:
		return
	case err, ok := <-sess.closed:
		if ok && err != nil {
			log.Printf("⚠️ RabbitMQ connection closed: %v", err)
		} else {
			log.Println("⚠️ RabbitMQ connection closed")
		}
	}

	p.mu.Lock()
	if p.sess == sess {
		p.sess = nil
	}
	p.mu.Unlock()

	p.wg.Add(1)
	go p.reconnect()
}

func (p *RabbitPublisher) reconnect() {
	defer p.wg.Done()
	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		delay := backoffDelay(attempt)
		log.Printf("🔄 Retrying RabbitMQ in %s (attempt %d/%d)", delay, attempt, p.cfg.MaxAttempts)
		select {
		case <-p.done:
			return
		case <-p.after(delay):
		}
		if err := p.connect(); err != nil {
			log.Printf("❌ RabbitMQ reconnect failed: %v", err)
			continue
		}
		return
	}
	log.Println("❌ Max RabbitMQ reconnect attempts reached, events will be dropped")
}

// backoffDelay doubles from one second and caps at thirty.
func backoffDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := baseReconnectDelay
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= maxReconnectDelay {
			return maxReconnectDelay
		}
	}
	return d
}

func (p *RabbitPublisher) Connected() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.sess != nil
}

func (p *RabbitPublisher) Emit(ctx context.Context, eventType string, payload map[string]interface{}) error {
	p.mu.RLock()
	sess := p.sess
	p.mu.RUnlock()
	if sess == nil {
		log.Printf("⚠️ RabbitMQ not connected, event not published: %s", eventType)
		return common.Unavailable(nil, "event broker not connected")
	}

	env := NewEnvelope(eventType, payload)
	body, err := env.Encode()
	if err != nil {
		return err
	}

	err = sess.ch.PublishWithContext(ctx, p.cfg.Exchange, env.RoutingKey(), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    env.EventID,
		Timestamp:    env.Timestamp,
		Type:         eventType,
		Body:         body,
	})
	if err != nil {
		log.Printf("❌ Failed to publish event %s: %v", eventType, err)
		return common.Unavailable(err, "failed to publish %s", eventType)
	}
	log.Printf("📤 Event published: %s (ID: %s)", eventType, env.EventID)
	return nil
}

func (p *RabbitPublisher) Close() error {
	var err error
	p.closeOnce.Do(func() {
		close(p.done)
		p.mu.Lock()
		sess := p.sess
		p.sess = nil
		p.mu.Unlock()
		if sess != nil {
			if cerr := sess.ch.Close(); cerr != nil {
				err = cerr
			}
			if cerr := sess.conn.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
		p.wg.Wait()
		log.Println("🔌 RabbitMQ disconnected")
	})
	return err
}
