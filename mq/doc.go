// Package mq публикует события сканов в RabbitMQ.
//
// Структура:
//   - connection.go — управление соединением (reconnect, graceful shutdown)
//   - topology.go   — объявление exchange, queues, bindings
//   - publisher.go  — публикация событий сканов
//   - sink.go       — адаптеры к интерфейсам validation и notify
//
// Типы сообщений:
//   - scan.completed — скан завершён (результат для downstream-потребителей)
//   - scan.failed    — скан нашёл непрошедшие тесты (алертинг)
//
// Exchange:
//   - validata.scans
package mq
