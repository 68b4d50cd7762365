package warehouse

import "errors"

// Ошибки конфигурации склада.
var (
	// ErrEnvUnset — переменная окружения с connection-строкой
	// не установлена или пуста.
	ErrEnvUnset = errors.New("connection env var is not set")

	// ErrInvalidConnURL — connection-строка не разбирается как URL
	// или не содержит хоста.
	ErrInvalidConnURL = errors.New("invalid connection url")

	// ErrInvalidDict — словарь не соответствует схеме описания склада.
	ErrInvalidDict = errors.New("invalid warehouse dict")

	// ErrUnsupportedType — тип склада не поддерживается адаптером.
	ErrUnsupportedType = errors.New("unsupported warehouse type")
)
