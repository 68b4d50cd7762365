// Package scan описывает поверхность внешнего движка сканирования данных.
//
// Сам движок (генерация SQL, вычисление метрик, оценка тестов) —
// внешний компонент и в этом репозитории не реализуется. Здесь объявлено
// только то, что библиотека от него потребляет:
//
//   - Engine — фабрика сканов, реализуемая движком
//   - Builder — набор слотов конфигурации, передаваемый движку
//   - Scan — построенный скан с выполнением и патчем SQL-фильтра
//   - Result — структурированный результат скана
//
// Описание скана (Yml) и его источники (Source) — часть конфигурационного
// контракта: файл, словарь или уже разобранный объект.
package scan
