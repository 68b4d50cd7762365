package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Yml — типизированное описание скана: таблица, метрики, тесты.
type Yml struct {
	// TableName — имя проверяемой таблицы.
	TableName string `yaml:"table_name" json:"table_name" mapstructure:"table_name"`

	// Metrics — табличные метрики для вычисления.
	Metrics []string `yaml:"metrics,omitempty" json:"metrics,omitempty" mapstructure:"metrics"`

	// Columns — колоночные метрики и тесты.
	Columns map[string]ColumnYml `yaml:"columns,omitempty" json:"columns,omitempty" mapstructure:"columns"`

	// Tests — табличные тестовые выражения.
	Tests []string `yaml:"tests,omitempty" json:"tests,omitempty" mapstructure:"tests"`

	// Filter — SQL-фильтр строк (WHERE-условие без ключевого слова).
	Filter string `yaml:"filter,omitempty" json:"filter,omitempty" mapstructure:"filter"`
}

// ColumnYml — описание проверок одной колонки.
type ColumnYml struct {
	// Metrics — метрики колонки.
	Metrics []string `yaml:"metrics,omitempty" json:"metrics,omitempty" mapstructure:"metrics"`

	// Tests — тестовые выражения колонки.
	Tests []string `yaml:"tests,omitempty" json:"tests,omitempty" mapstructure:"tests"`
}

// YmlFromDict декодирует словарное представление скана в Yml.
//
// Используется, когда словарь уже прошёл подстановку оркестратора
// и дальше нужна типизированная форма.
func YmlFromDict(dict map[string]any) (*Yml, error) {
	var yml Yml
	if err := mapstructure.Decode(dict, &yml); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDict, err)
	}
	return &yml, nil
}

// LoadYmlFile читает и разбирает YAML файл с описанием скана.
func LoadYmlFile(path string) (*Yml, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scan file: %w", err)
	}

	var yml Yml
	if err := yaml.Unmarshal(data, &yml); err != nil {
		return nil, fmt.Errorf("parse scan file %s: %w", path, err)
	}
	return &yml, nil
}

// LoadDict читает YAML файл в словарь без валидации.
//
// Словарная форма нужна, чтобы оркестратор мог подставить шаблоны
// в любые поля (включая table_name) до передачи описания движку —
// сам движок шаблонизирует не все поля.
func LoadDict(dir, file string) (map[string]any, error) {
	path := filepath.Join(dir, file)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml file: %w", err)
	}

	var dict map[string]any
	if err := yaml.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("parse yaml file %s: %w", path, err)
	}
	return dict, nil
}
