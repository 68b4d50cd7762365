package warehouse

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Yml — типизированное описание склада данных.
type Yml struct {
	// Name — имя склада (для логов и сервера отчётов).
	Name string `yaml:"name" json:"name" mapstructure:"name"`

	// Connection — параметры подключения.
	Connection Connection `yaml:"connection" json:"connection" mapstructure:"connection"`
}

// Connection — параметры подключения к складу.
type Connection struct {
	// Type — тип склада: "postgres", "redshift", "snowflake", ...
	Type string `yaml:"type" json:"type" mapstructure:"type"`

	// Host — хост склада.
	Host string `yaml:"host" json:"host" mapstructure:"host"`

	// Port — порт склада.
	Port int `yaml:"port" json:"port" mapstructure:"port"`

	// Username — имя пользователя.
	Username string `yaml:"username" json:"username" mapstructure:"username"`

	// Password — пароль.
	Password string `yaml:"password" json:"password" mapstructure:"password"`

	// Database — имя базы данных.
	Database string `yaml:"database" json:"database" mapstructure:"database"`

	// Schema — схема внутри базы.
	Schema string `yaml:"schema" json:"schema" mapstructure:"schema"`
}

// YmlFromDict декодирует словарное представление склада в Yml.
func YmlFromDict(dict map[string]any) (*Yml, error) {
	var yml Yml
	if err := mapstructure.Decode(dict, &yml); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDict, err)
	}
	return &yml, nil
}

// LoadYmlFile читает и разбирает YAML файл с описанием склада.
func LoadYmlFile(path string) (*Yml, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read warehouse file: %w", err)
	}

	var yml Yml
	if err := yaml.Unmarshal(data, &yml); err != nil {
		return nil, fmt.Errorf("parse warehouse file %s: %w", path, err)
	}
	return &yml, nil
}

// Dict возвращает словарную форму описания — для движков,
// принимающих склад словарём.
func (y *Yml) Dict() map[string]any {
	return map[string]any{
		"name": y.Name,
		"connection": map[string]any{
			"type":     y.Connection.Type,
			"host":     y.Connection.Host,
			"port":     y.Connection.Port,
			"username": y.Connection.Username,
			"password": y.Connection.Password,
			"database": y.Connection.Database,
			"schema":   y.Connection.Schema,
		},
	}
}
