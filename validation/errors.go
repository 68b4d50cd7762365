package validation

import "errors"

// Ошибки задачи валидации.
var (
	// ErrValidationFailed — скан нашёл непрошедшие тесты,
	// и задача настроена на жёсткое падение. Полезной нагрузки
	// не несёт: это управляющий сигнал для оркестратора,
	// детали падений уже в логах.
	ErrValidationFailed = errors.New("data validation failed")

	// ErrNoPublisher — запрошена публикация результата,
	// но publisher не настроен.
	ErrNoPublisher = errors.New("result publisher is not set")
)
