package scan

import (
	"context"

	"github.com/google/uuid"

	"github.com/shaiso/Validata/warehouse"
)

// Engine — интерфейс внешнего движка сканирования.
//
// Реализация движка получает заполненный Builder, разбирает описания
// склада и скана, подключается к складу данных и возвращает готовый
// к выполнению Scan.
type Engine interface {
	Build(ctx context.Context, b *Builder) (Scan, error)
}

// Scan — построенный движком скан.
type Scan interface {
	// FilterSQL возвращает текущий SQL-фильтр скана.
	FilterSQL() string

	// SetFilterSQL заменяет SQL-фильтр скана.
	// Используется для значений, уже отрендеренных оркестратором.
	SetFilterSQL(sql string)

	// Execute выполняет скан: вычисляет метрики и оценивает тесты.
	Execute(ctx context.Context) (*Result, error)
}

// ServerClient — аутентифицированный клиент сервера отчётов.
//
// Передаётся движку как есть; библиотека его методы не вызывает.
type ServerClient interface {
	ScanStarted(ctx context.Context, scanID uuid.UUID, scanTime string) error
	SendResult(ctx context.Context, scanID uuid.UUID, result *Result) error
}

// Builder — слоты конфигурации для построения скана.
//
// Для склада и для скана заполняется ровно один слот из трёх
// (файл / словарь / разобранный объект) — см. Source и WarehouseSource.
type Builder struct {
	// Слоты описания склада данных.
	WarehouseFile string
	WarehouseDict map[string]any
	WarehouseYml  *warehouse.Yml

	// Слоты описания скана.
	ScanFile string
	ScanDict map[string]any
	ScanYml  *Yml

	// Variables — источник переменных для подстановки движком.
	// Сюда передаётся контекст оркестратора целиком: значения в нём
	// уже отрендерены, и отдельное поле переменных не используется.
	Variables map[string]any

	// ServerClient — опциональный клиент сервера отчётов.
	ServerClient ServerClient

	// Time — метка времени скана.
	Time string

	engine Engine
}

// NewBuilder создаёт Builder с движком сканирования.
func NewBuilder(engine Engine) *Builder {
	return &Builder{engine: engine}
}

// Build строит скан, делегируя работу движку.
func (b *Builder) Build(ctx context.Context) (Scan, error) {
	if b.engine == nil {
		return nil, ErrNoEngine
	}
	return b.engine.Build(ctx, b)
}
