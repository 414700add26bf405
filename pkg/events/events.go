package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Event types published by the app layer.
const (
	TypeUserRegistered  = "user.registered"
	TypeChatMessageSent = "chat.message_sent"
	TypePlanAccepted    = "schedule.plan_accepted"
	TypePlanUpgraded    = "billing.plan_upgraded"
)

// Event is a domain notification for downstream consumers.
type Event struct {
	Type   string         `json:"type"`
	UserID string         `json:"userId"`
	At     int64          `json:"at"`
	Data   map[string]any `json:"data,omitempty"`
}

// Publisher emits domain events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher discards all events. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }

const eventQueue = "aura.events"

// AMQPPublisher publishes events to a durable RabbitMQ queue.
type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewAMQPPublisher connects to the broker and declares the event queue.
func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	if _, err := ch.QueueDeclare(eventQueue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", eventQueue, err)
	}
	return &AMQPPublisher{conn: conn, channel: ch}, nil
}

// Publish sends the event as persistent JSON.
func (p *AMQPPublisher) Publish(ctx context.Context, event Event) error {
	if event.At == 0 {
		event.At = time.Now().UnixMilli()
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	err = p.channel.PublishWithContext(ctx, "", eventQueue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
	})
	if err != nil {
		return fmt.Errorf("publish event %s: %w", event.Type, err)
	}
	return nil
}

// Close shuts down the channel and connection.
func (p *AMQPPublisher) Close() error {
	var lastErr error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			lastErr = err
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
