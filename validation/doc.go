// Package validation реализует задачу проверки качества данных
// для DAG-оркестраторов.
//
// # Обзор
//
// Task — мост между оркестратором и внешним движком сканирования.
// Задача получает описания склада и скана (каждое — файл, словарь или
// разобранный объект), строит скан через scan.Builder, выполняет его
// и превращает непрошедшие тесты в ошибку задачи.
//
// Жизненный цикл одного выполнения:
//
//	task := validation.New(validation.Config{...})
//	resolved, err := task.Resolve(renderCtx)   // подстановка шаблонных полей
//	err = resolved.Execute(ctx, taskContext)   // скан + оценка результата
//
// # Мягкие и жёсткие падения
//
// По умолчанию непрошедшие тесты проваливают задачу (ErrValidationFailed),
// и retry/алертинг остаются политикой оркестратора. При SoftFail задача
// завершается успешно: падения логируются и, если настроен Notifier,
// уходят уведомлением.
//
// Retry, таймаутов и частичного восстановления в задаче нет намеренно —
// единственные терминальные состояния это успех и ошибка, всё остальное
// решает оркестратор уровнем выше.
package validation
