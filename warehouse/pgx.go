package warehouse

import (
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Настройки пула по умолчанию.
const (
	defaultMaxConns          = 10
	defaultHealthCheckPeriod = 30 * time.Second
)

// ConnString строит DSN для pgx из параметров подключения.
// Поддерживается только тип "postgres".
func (y *Yml) ConnString() (string, error) {
	c := y.Connection
	if c.Type != "postgres" {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, c.Type)
	}

	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(c.Username, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   "/" + c.Database,
	}

	if c.Schema != "" {
		q := url.Values{}
		q.Set("search_path", c.Schema)
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

// PoolConfig строит конфигурацию pgx пула для склада.
//
// Движки, принимающие готовое подключение вместо описания,
// могут открыть пул через pgxpool.NewWithConfig.
func (y *Yml) PoolConfig() (*pgxpool.Config, error) {
	dsn, err := y.ConnString()
	if err != nil {
		return nil, err
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = defaultMaxConns
	cfg.HealthCheckPeriod = defaultHealthCheckPeriod

	return cfg, nil
}
