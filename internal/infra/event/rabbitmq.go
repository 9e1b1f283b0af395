package event

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/DioGolang/GoRider/pkg/logger"
	"github.com/DioGolang/GoRider/pkg/metrics"
	"github.com/DioGolang/GoRider/pkg/otel"
)

// Channel is the subset of *amqp.Channel used for publishing.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	NotifyClose(c chan *amqp.Error) chan *amqp.Error
	Close() error
}

// DialFunc opens a publishing channel together with the connection that owns it.
type DialFunc func(ctx context.Context) (Channel, io.Closer, error)

// Connect dials the broker and declares the durable topic exchange events go to.
func Connect(url, exchange string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return conn, ch, nil
}

func Dialer(url, exchange string) DialFunc {
	return func(context.Context) (Channel, io.Closer, error) {
		conn, ch, err := Connect(url, exchange)
		if err != nil {
			return nil, nil, err
		}
		return ch, conn, nil
	}
}

var errPublisherClosed = errors.New("amqp publisher closed")

// AMQPPublisher publishes on a single channel. When the broker closes the
// channel the next Publish redials before sending.
type AMQPPublisher struct {
	mu       sync.Mutex
	dial     DialFunc
	exchange string
	log      logger.Logger
	metrics  metrics.Metrics

	ch      Channel
	conn    io.Closer
	closeCh chan *amqp.Error
	stopped bool
}

func NewAMQPPublisher(dial DialFunc, exchange string, log logger.Logger, m metrics.Metrics) *AMQPPublisher {
	return &AMQPPublisher{dial: dial, exchange: exchange, log: log, metrics: m}
}

// Open establishes the first channel so a misconfigured broker fails at startup.
func (p *AMQPPublisher) Open(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connect(ctx)
}

func (p *AMQPPublisher) connect(ctx context.Context) error {
	ch, conn, err := p.dial(ctx)
	if err != nil {
		return err
	}
	p.ch, p.conn = ch, conn
	p.closeCh = ch.NotifyClose(make(chan *amqp.Error, 1))
	return nil
}

// ensureChannel must be called with mu held.
func (p *AMQPPublisher) ensureChannel(ctx context.Context) error {
	if p.stopped {
		return errPublisherClosed
	}
	if p.ch != nil {
		select {
		case reason := <-p.closeCh:
			fields := []logger.Field{logger.String("exchange", p.exchange)}
			if reason != nil {
				fields = append(fields, logger.WithError(reason))
			}
			p.log.Warn(ctx, "AMQP channel closed, reconnecting", fields...)
			p.release()
		default:
			return nil
		}
	}

	if err := p.connect(ctx); err != nil {
		p.metrics.IncBrokerReconnects("failure")
		return fmt.Errorf("reconnect to broker: %w", err)
	}
	p.metrics.IncBrokerReconnects("success")
	return nil
}

func (p *AMQPPublisher) release() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.ch, p.conn, p.closeCh = nil, nil, nil
}

// Publish sends msg as a persistent JSON message carrying the trace context.
func (p *AMQPPublisher) Publish(ctx context.Context, msg Message) error {
	headers := otel.MessageHeaders(ctx)
	headers["x-event-id"] = msg.ID

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ensureChannel(ctx); err != nil {
		return err
	}
	return p.ch.PublishWithContext(
		ctx,
		p.exchange,
		msg.RoutingKey,
		false,
		false,
		amqp.Publishing{
			Headers:      headers,
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    msg.ID,
			Timestamp:    time.Now(),
			Body:         msg.Body,
		})
}

// Close releases the channel and connection. Later publishes fail.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
	p.release()
	return nil
}
