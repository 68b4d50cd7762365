// Package telemetry обеспечивает наблюдаемость библиотеки.
//
// Включает:
//   - logging.go — structured logging через slog
//
// Prometheus метрики задач живут рядом с самими задачами
// (см. validation/metrics.go); здесь только логирование,
// чтобы все потребители использовали единый формат.
package telemetry
