package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/byturco/ambulatory/internal/config"
	"github.com/byturco/ambulatory/internal/core/ports/in"
	"github.com/byturco/ambulatory/internal/core/ports/out"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// CacheInvalidationListener drops cached slots when another service
// mutates schedules or overrides behind our back. Without RabbitMQ the
// cache is disabled entirely, so a nil listener is a valid state.
type CacheInvalidationListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.AvailabilityUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

type ResourceType string

const (
	ResourceTypeAll          ResourceType = "_all_"
	ResourceTypeSchedule     ResourceType = "schedule"
	ResourceTypeAvailability ResourceType = "availability"
)

const actionInvalidate = "invalidate"

// InvalidationRoutingKey is the parsed form of
// "<source>.<receiver>.<resource>.<action>", e.g.
// "clinic.ambulatory.schedule.invalidate".
type InvalidationRoutingKey struct {
	Source       string
	Receiver     string
	ResourceType ResourceType
	Action       string
}

type InvalidationMessage struct {
	ID string `json:"id"`
}

func NewCacheInvalidationListener(useCase in.AvailabilityUseCase, cfg *config.Config, logger out.LoggerPort) (*CacheInvalidationListener, error) {
	logger = logger.WithModule("CacheInvalidationListener")

	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &CacheInvalidationListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *CacheInvalidationListener) Start(ctx context.Context) error {
	if err := l.channel.ExchangeDeclare(
		l.cfg.RabbitMQ.Exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("rabbitmq.exchange_declare.failed: %w", err)
	}

	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.Queue,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("rabbitmq.queue_declare.failed: %w", err)
	}

	if err := l.channel.QueueBind(
		queue.Name,
		"#."+actionInvalidate,
		l.cfg.RabbitMQ.Exchange,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("rabbitmq.queue_bind.failed: %w", err)
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("rabbitmq.consume.failed: %w", err)
	}

	l.logger.Info("rabbitmq.queue.started", out.LogFields{
		"queue":    queue.Name,
		"exchange": l.cfg.RabbitMQ.Exchange,
	})

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					l.logger.Warn("rabbitmq.consumer.channel_closed", out.LogFields{
						"queue": queue.Name,
					})
					return
				}
				if err := l.processMessage(ctx, msg); err != nil {
					l.logger.Error("rabbitmq.process_message.failed", out.LogFields{
						"routingKey": msg.RoutingKey,
						"error":      err.Error(),
					})
					msg.Nack(false, false)
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

func (l *CacheInvalidationListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}

func (l *CacheInvalidationListener) processMessage(ctx context.Context, msg amqp.Delivery) error {
	key, err := parseInvalidationRoutingKey(msg.RoutingKey)
	if err != nil {
		return err
	}

	if key.Action != actionInvalidate {
		return nil
	}

	switch key.ResourceType {
	case ResourceTypeAll:
		l.useCase.InvalidateAllSlots(ctx)
		l.logger.Info("cache.invalidated.all", out.LogFields{})
		return nil
	case ResourceTypeSchedule, ResourceTypeAvailability:
		var body InvalidationMessage
		if err := json.Unmarshal(msg.Body, &body); err != nil {
			return fmt.Errorf("failed to unmarshal message: %w", err)
		}
		scheduleID, err := uuid.Parse(body.ID)
		if err != nil {
			return fmt.Errorf("invalid schedule id %q: %w", body.ID, err)
		}
		l.useCase.InvalidateScheduleSlots(ctx, scheduleID)
		l.logger.Info("cache.invalidated.schedule", out.LogFields{
			"scheduleId": scheduleID.String(),
			"resource":   string(key.ResourceType),
		})
		return nil
	default:
		l.logger.Debug("rabbitmq.message.skipped", out.LogFields{
			"resource": string(key.ResourceType),
		})
		return nil
	}
}

func parseInvalidationRoutingKey(routingKey string) (InvalidationRoutingKey, error) {
	parts := strings.Split(routingKey, ".")
	if len(parts) < 4 {
		return InvalidationRoutingKey{}, fmt.Errorf("invalid routing key: %s", routingKey)
	}

	return InvalidationRoutingKey{
		Source:       parts[0],
		Receiver:     parts[1],
		ResourceType: ResourceType(parts[2]),
		Action:       parts[3],
	}, nil
}
