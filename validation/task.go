package validation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shaiso/Validata/notify"
	"github.com/shaiso/Validata/render"
	"github.com/shaiso/Validata/scan"
	"github.com/shaiso/Validata/telemetry"
)

// PublishKey — фиксированный ключ, под которым публикуется
// JSON результата скана для downstream-задач.
const PublishKey = "scan_result"

// Context — переменные выполнения от оркестратора
// (время запуска, параметры и т.д.).
//
// Передаётся движку как источник подстановки целиком: значения в нём
// уже отрендерены оркестратором, и отдельный набор переменных движка
// привёл бы ко второму, конфликтующему проходу подстановки.
type Context map[string]any

// ResultPublisher — механизм передачи результата downstream-задачам.
// Реализуется оркестратором (или mq.ResultSink).
type ResultPublisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

// Task — задача проверки качества данных.
//
// Создаётся через New и не изменяется после создания: Resolve
// возвращает новую копию, Execute состояния не мутирует. Благодаря
// этому экземпляры можно выполнять параллельно с другими задачами.
type Task struct {
	warehouse scan.WarehouseSource
	scanSrc   scan.Source

	engine       scan.Engine
	serverClient scan.ServerClient
	scanTime     string

	softFail      bool
	publishResult bool

	publisher ResultPublisher
	notifier  notify.Notifier
	logger    *slog.Logger
}

// Config — конфигурация задачи.
type Config struct {
	// Warehouse — описание склада данных (обязательно).
	Warehouse scan.WarehouseSource

	// Scan — описание скана (обязательно). Шаблонное поле:
	// рендерится в Resolve до выполнения.
	Scan scan.Source

	// Engine — внешний движок сканирования (обязательно).
	Engine scan.Engine

	// ServerClient — опциональный клиент сервера отчётов,
	// передаётся движку как есть.
	ServerClient scan.ServerClient

	// Time — метка времени скана. Шаблонное поле.
	Time string

	// SoftFail — не проваливать задачу при непрошедших тестах:
	// падения логируются и уходят уведомлением. По умолчанию false,
	// то есть непрошедшие тесты возвращают ErrValidationFailed.
	SoftFail bool

	// PublishResult — публиковать JSON результата под ключом
	// PublishKey для downstream-задач.
	PublishResult bool

	// Publisher — механизм публикации результата.
	// Обязателен только при PublishResult.
	Publisher ResultPublisher

	// Notifier — опциональный канал уведомлений о мягких падениях.
	Notifier notify.Notifier

	// Logger — логгер задачи. Если не задан, берётся логгер
	// из контекста выполнения (telemetry.FromContext).
	Logger *slog.Logger
}

// New создаёт задачу валидации.
func New(cfg Config) *Task {
	return &Task{
		warehouse:     cfg.Warehouse,
		scanSrc:       cfg.Scan,
		engine:        cfg.Engine,
		serverClient:  cfg.ServerClient,
		scanTime:      cfg.Time,
		softFail:      cfg.SoftFail,
		publishResult: cfg.PublishResult,
		publisher:     cfg.Publisher,
		notifier:      cfg.Notifier,
		logger:        cfg.Logger,
	}
}

// loggerFor возвращает логгер задачи: заданный в Config
// или логгер из контекста выполнения.
func (t *Task) loggerFor(ctx context.Context) *slog.Logger {
	if t.logger != nil {
		return t.logger
	}
	return telemetry.FromContext(ctx)
}

// Resolve возвращает копию задачи с отрендеренными шаблонными полями.
//
// Шаблонные поля — описание скана и метка времени; описание склада
// не шаблонизируется. Выполняется до Execute: так подстановка
// оркестратора становится явным шагом, а Execute работает только
// с полностью разрешёнными значениями.
func (t *Task) Resolve(rctx *render.Context) (*Task, error) {
	resolved := *t

	scanTime, err := render.Render(t.scanTime, rctx)
	if err != nil {
		return nil, fmt.Errorf("render scan time: %w", err)
	}
	resolved.scanTime = scanTime

	switch t.scanSrc.Kind {
	case scan.SourceFile:
		path, err := render.Render(t.scanSrc.File, rctx)
		if err != nil {
			return nil, fmt.Errorf("render scan file path: %w", err)
		}
		resolved.scanSrc = scan.FromFile(path)

	case scan.SourceDict:
		dict, err := render.RenderDict(t.scanSrc.Dict, rctx)
		if err != nil {
			return nil, fmt.Errorf("render scan dict: %w", err)
		}
		resolved.scanSrc = scan.FromDict(dict)

	default:
		// Yml источник — уже разобранный объект, не шаблонизируется.
	}

	return &resolved, nil
}

// Execute строит и выполняет скан, публикует результат
// и превращает непрошедшие тесты в ошибку задачи.
func (t *Task) Execute(ctx context.Context, tctx Context) error {
	start := time.Now()

	scanObj, err := t.buildScan(ctx, tctx)
	if err != nil {
		scansTotal.WithLabelValues(metricStatusError).Inc()
		return fmt.Errorf("build scan: %w", err)
	}

	// Патч SQL-фильтра для словарных сканов: значение фильтра уже
	// отрендерено оркестратором, и подстановка движка его бы испортила.
	// Перекрывает фильтр, вычисленный движком, даже если ключа нет.
	if t.scanSrc.Kind == scan.SourceDict {
		filter, _ := t.scanSrc.Dict["filter"].(string)
		scanObj.SetFilterSQL(filter)
	}

	result, err := scanObj.Execute(ctx)
	if err != nil {
		scansTotal.WithLabelValues(metricStatusError).Inc()
		return fmt.Errorf("execute scan: %w", err)
	}
	scanDuration.Observe(time.Since(start).Seconds())

	logger := t.loggerFor(ctx)

	if t.publishResult {
		if err := t.publish(ctx, logger, result); err != nil {
			return err
		}
	}

	return t.checkFailures(ctx, logger, result)
}

// buildScan заполняет Builder и строит скан через движок.
func (t *Task) buildScan(ctx context.Context, tctx Context) (scan.Scan, error) {
	b := scan.NewBuilder(t.engine)

	if err := t.warehouse.Apply(b); err != nil {
		return nil, err
	}
	if err := t.scanSrc.Apply(b); err != nil {
		return nil, err
	}

	b.Variables = tctx
	b.ServerClient = t.serverClient
	b.Time = t.scanTime

	return b.Build(ctx)
}

// publish публикует JSON результата под фиксированным ключом.
func (t *Task) publish(ctx context.Context, logger *slog.Logger, result *scan.Result) error {
	if t.publisher == nil {
		return ErrNoPublisher
	}

	body, err := result.ToJSON()
	if err != nil {
		return err
	}

	if err := t.publisher.Publish(ctx, PublishKey, body); err != nil {
		return fmt.Errorf("publish scan result: %w", err)
	}

	logger.Debug("scan result published", "key", PublishKey, "scan_id", result.ScanID)
	return nil
}

// checkFailures оценивает результат скана.
func (t *Task) checkFailures(ctx context.Context, logger *slog.Logger, result *scan.Result) error {
	logger = logger.With("scan_id", result.ScanID)

	if !result.HasTestFailures() {
		scansTotal.WithLabelValues(metricStatusPassed).Inc()
		logger.Info("scan passed, no test failures")
		return nil
	}

	count := result.TestFailureCount()
	scansTotal.WithLabelValues(metricStatusFailed).Inc()
	testFailuresTotal.Add(float64(count))

	logger.Error("scan found test failures", "failures", count)
	for _, failure := range result.TestFailures() {
		logger.Error("test failed",
			"test", failure.Test,
			"column", failure.Column,
			"values", failure.Values,
		)
	}

	if !t.softFail {
		return ErrValidationFailed
	}

	// Мягкое падение: задача завершается успешно, но команда
	// должна узнать о проблеме.
	if t.notifier != nil {
		event := notify.Event{
			ScanID:       result.ScanID,
			Table:        t.tableName(),
			FailureCount: count,
			Failures:     result.TestFailures(),
			ScanTime:     t.scanTime,
		}
		if err := t.notifier.Notify(ctx, event); err != nil {
			logger.Warn("failure notification not delivered", "error", err)
		}
	}

	return nil
}

// tableName возвращает имя проверяемой таблицы, если оно известно
// из описания скана. Для файловых источников таблица известна
// только движку.
func (t *Task) tableName() string {
	switch t.scanSrc.Kind {
	case scan.SourceDict:
		name, _ := t.scanSrc.Dict["table_name"].(string)
		return name
	case scan.SourceYml:
		if t.scanSrc.Yml != nil {
			return t.scanSrc.Yml.TableName
		}
	}
	return ""
}
