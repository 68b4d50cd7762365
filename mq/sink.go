package mq

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/shaiso/Validata/notify"
)

// ResultSink адаптирует Publisher к validation.ResultPublisher:
// публикация результата для downstream-потребителей вне оркестратора.
type ResultSink struct {
	publisher *Publisher
}

// NewResultSink создаёт sink поверх Publisher.
func NewResultSink(publisher *Publisher) *ResultSink {
	return &ResultSink{publisher: publisher}
}

// Publish публикует JSON результата скана в scans.completed.
func (s *ResultSink) Publish(ctx context.Context, key string, value []byte) error {
	// scan_id достаём из самого результата; результат публикуется как есть.
	var header struct {
		ScanID uuid.UUID `json:"scan_id"`
	}
	_ = json.Unmarshal(value, &header)

	return s.publisher.PublishScanCompleted(ctx, ScanCompletedPayload{
		ScanID: header.ScanID,
		Key:    key,
		Result: json.RawMessage(value),
	})
}

// AlertChannel адаптирует Publisher к notify.Notifier:
// уведомления о мягких падениях уходят в очередь scans.alerts.
type AlertChannel struct {
	publisher *Publisher
}

// NewAlertChannel создаёт канал уведомлений поверх Publisher.
func NewAlertChannel(publisher *Publisher) *AlertChannel {
	return &AlertChannel{publisher: publisher}
}

// Notify публикует событие о непрошедшем скане.
func (c *AlertChannel) Notify(ctx context.Context, event notify.Event) error {
	failures := make([]string, 0, len(event.Failures))
	for _, f := range event.Failures {
		failures = append(failures, f.String())
	}

	return c.publisher.PublishScanFailed(ctx, ScanFailedPayload{
		ScanID:       event.ScanID,
		Table:        event.Table,
		FailureCount: event.FailureCount,
		Failures:     failures,
		ScanTime:     event.ScanTime,
	})
}
