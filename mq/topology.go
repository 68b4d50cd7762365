package mq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Exchange — тип для имени обменника.
type Exchange string

// Queue — тип для имени очереди.
type Queue string

// RoutingKey — тип для ключа маршрутизации.
type RoutingKey string

// Имена обменников.
const (
	ExchangeScans Exchange = "validata.scans"
)

// Имена очередей.
const (
	QueueScansCompleted Queue = "scans.completed"
	QueueScansAlerts    Queue = "scans.alerts"
)

// Routing keys.
const (
	RoutingKeyCompleted RoutingKey = "completed"
	RoutingKeyFailed    RoutingKey = "failed"
)

// SetupTopology объявляет exchange, очереди и привязки.
// Идемпотентна: повторные вызовы безопасны.
func SetupTopology(ctx context.Context, conn *Connection) error {
	return conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		err := ch.ExchangeDeclare(
			string(ExchangeScans), // name
			"direct",              // type
			true,                  // durable
			false,                 // auto-deleted
			false,                 // internal
			false,                 // no-wait
			nil,                   // arguments
		)
		if err != nil {
			return fmt.Errorf("declare exchange %s: %w", ExchangeScans, err)
		}

		queues := []Queue{QueueScansCompleted, QueueScansAlerts}
		for _, q := range queues {
			_, err := ch.QueueDeclare(
				string(q), // name
				true,      // durable
				false,     // delete when unused
				false,     // exclusive
				false,     // no-wait
				nil,       // arguments
			)
			if err != nil {
				return fmt.Errorf("declare queue %s: %w", q, err)
			}
		}

		bindings := []struct {
			queue      Queue
			routingKey RoutingKey
		}{
			{QueueScansCompleted, RoutingKeyCompleted},
			{QueueScansAlerts, RoutingKeyFailed},
		}
		for _, b := range bindings {
			err := ch.QueueBind(
				string(b.queue),       // queue name
				string(b.routingKey),  // routing key
				string(ExchangeScans), // exchange
				false,                 // no-wait
				nil,                   // arguments
			)
			if err != nil {
				return fmt.Errorf("bind queue %s: %w", b.queue, err)
			}
		}

		return nil
	})
}
