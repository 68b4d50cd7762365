package scan

import "errors"

// Ошибки конфигурации скана.
var (
	// ErrNoEngine — builder создан без движка сканирования.
	ErrNoEngine = errors.New("scan engine is not set")

	// ErrUnknownSourceKind — источник не является ни файлом,
	// ни словарём, ни разобранным объектом.
	ErrUnknownSourceKind = errors.New("unknown source kind")

	// ErrInvalidDict — словарь не соответствует схеме описания скана.
	ErrInvalidDict = errors.New("invalid scan dict")
)
