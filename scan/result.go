package scan

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Result — структурированный результат скана.
//
// Заполняется движком. Сериализуется в JSON для публикации
// результата downstream-задачам.
type Result struct {
	// ScanID — уникальный идентификатор выполнения скана.
	ScanID uuid.UUID `json:"scan_id"`

	// Measurements — вычисленные метрики.
	Measurements []Measurement `json:"measurements,omitempty"`

	// TestResults — результаты оценки тестовых выражений.
	TestResults []TestResult `json:"test_results,omitempty"`

	// Errors — ошибки движка, не связанные с тестами.
	Errors []string `json:"errors,omitempty"`
}

// Measurement — одна вычисленная метрика.
type Measurement struct {
	// Metric — имя метрики (row_count, missing_count, ...).
	Metric string `json:"metric"`

	// Column — колонка, если метрика колоночная.
	Column string `json:"column_name,omitempty"`

	// Value — вычисленное значение.
	Value any `json:"value"`
}

// TestResult — результат одного тестового выражения.
type TestResult struct {
	// Test — тестовое выражение (например, "row_count > 0").
	Test string `json:"test"`

	// Column — колонка, если тест колоночный.
	Column string `json:"column_name,omitempty"`

	// Passed — прошёл ли тест.
	Passed bool `json:"passed"`

	// Skipped — тест пропущен (метрика не вычислена).
	Skipped bool `json:"skipped,omitempty"`

	// Values — значения метрик, участвовавших в оценке.
	Values map[string]any `json:"values,omitempty"`

	// Error — ошибка оценки выражения.
	Error string `json:"error,omitempty"`
}

// Failed возвращает true, если тест был оценён и не прошёл.
func (tr TestResult) Failed() bool {
	return !tr.Passed && !tr.Skipped
}

// String возвращает представление для логирования.
func (tr TestResult) String() string {
	if tr.Column != "" {
		return fmt.Sprintf("test %q on column %q failed, values: %v", tr.Test, tr.Column, tr.Values)
	}
	return fmt.Sprintf("test %q failed, values: %v", tr.Test, tr.Values)
}

// HasTestFailures возвращает true, если хотя бы один тест не прошёл.
func (r *Result) HasTestFailures() bool {
	return r.TestFailureCount() > 0
}

// TestFailureCount возвращает количество непрошедших тестов.
func (r *Result) TestFailureCount() int {
	count := 0
	for _, tr := range r.TestResults {
		if tr.Failed() {
			count++
		}
	}
	return count
}

// TestFailures возвращает все непрошедшие тесты.
func (r *Result) TestFailures() []TestResult {
	var failures []TestResult
	for _, tr := range r.TestResults {
		if tr.Failed() {
			failures = append(failures, tr)
		}
	}
	return failures
}

// ToJSON сериализует результат в JSON.
func (r *Result) ToJSON() ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal scan result: %w", err)
	}
	return b, nil
}
