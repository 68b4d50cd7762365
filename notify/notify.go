package notify

import (
	"context"

	"github.com/google/uuid"

	"github.com/shaiso/Validata/scan"
)

// Event — уведомление о скане с непрошедшими тестами.
type Event struct {
	// ScanID — идентификатор выполнения скана.
	ScanID uuid.UUID

	// Table — проверяемая таблица, если известна.
	Table string

	// FailureCount — количество непрошедших тестов.
	FailureCount int

	// Failures — сами непрошедшие тесты.
	Failures []scan.TestResult

	// ScanTime — метка времени скана.
	ScanTime string
}

// Notifier — канал доставки уведомлений.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}
