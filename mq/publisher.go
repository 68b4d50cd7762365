package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// MessageType — тип сообщения в очереди.
type MessageType string

// Типы сообщений.
const (
	MessageTypeScanCompleted MessageType = "scan.completed"
	MessageTypeScanFailed    MessageType = "scan.failed"
)

// Message — сообщение для публикации.
type Message struct {
	// ID — уникальный идентификатор сообщения.
	ID string `json:"id"`

	// Type — тип сообщения.
	Type MessageType `json:"type"`

	// Payload — полезная нагрузка.
	Payload any `json:"payload"`

	// Timestamp — время создания.
	Timestamp time.Time `json:"timestamp"`
}

// ScanCompletedPayload — payload события о завершённом скане.
type ScanCompletedPayload struct {
	ScanID uuid.UUID `json:"scan_id"`

	// Key — ключ публикации (см. validation.PublishKey).
	Key string `json:"key"`

	// Result — JSON результата скана как есть.
	Result json.RawMessage `json:"result"`
}

// ScanFailedPayload — payload события о скане с непрошедшими тестами.
type ScanFailedPayload struct {
	ScanID       uuid.UUID `json:"scan_id"`
	Table        string    `json:"table,omitempty"`
	FailureCount int       `json:"failure_count"`
	Failures     []string  `json:"failures"`
	ScanTime     string    `json:"scan_time,omitempty"`
}

// Publisher публикует события сканов в RabbitMQ.
type Publisher struct {
	conn   *Connection
	logger *slog.Logger
}

// NewPublisher создаёт новый Publisher.
func NewPublisher(conn *Connection, logger *slog.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: logger,
	}
}

// Publish публикует сообщение в exchange сканов с routing key.
func (p *Publisher) Publish(ctx context.Context, routingKey RoutingKey, msg *Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	return p.conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		err := ch.PublishWithContext(
			ctx,
			string(ExchangeScans), // exchange
			string(routingKey),    // routing key
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent, // сообщение переживёт рестарт RabbitMQ
				MessageId:    msg.ID,
				Timestamp:    msg.Timestamp,
				Body:         body,
			},
		)
		if err != nil {
			return fmt.Errorf("publish to %s/%s: %w", ExchangeScans, routingKey, err)
		}

		p.logger.Debug("published message",
			"routing_key", routingKey,
			"message_id", msg.ID,
			"type", msg.Type,
		)

		return nil
	})
}

// PublishScanCompleted публикует событие о завершённом скане.
// Потребитель: downstream-задачи, которым нужен результат.
func (p *Publisher) PublishScanCompleted(ctx context.Context, payload ScanCompletedPayload) error {
	msg := &Message{
		ID:        uuid.New().String(),
		Type:      MessageTypeScanCompleted,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	return p.Publish(ctx, RoutingKeyCompleted, msg)
}

// PublishScanFailed публикует событие о скане с непрошедшими тестами.
// Потребитель: алертинг.
func (p *Publisher) PublishScanFailed(ctx context.Context, payload ScanFailedPayload) error {
	msg := &Message{
		ID:        uuid.New().String(),
		Type:      MessageTypeScanFailed,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	return p.Publish(ctx, RoutingKeyFailed, msg)
}
