package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
)

// Context — контекст для рендеринга шаблонов.
//
// Используется в Go templates для доступа к данным:
//   - {{ .Vars.ds }} — переменные выполнения от оркестратора
//   - {{ .Params.client_id }} — параметры запуска
//   - {{ .Env.VAR_NAME }} — переменные окружения
type Context struct {
	// Vars — переменные текущего выполнения (время запуска, интервал и т.д.).
	Vars map[string]any `json:"vars"`

	// Params — пользовательские параметры задачи.
	Params map[string]any `json:"params"`

	// Env — переменные окружения.
	Env map[string]string `json:"env"`
}

// NewContext создаёт новый контекст с переменными выполнения.
func NewContext(vars map[string]any) *Context {
	if vars == nil {
		vars = make(map[string]any)
	}
	return &Context{
		Vars:   vars,
		Params: make(map[string]any),
		Env:    make(map[string]string),
	}
}

// SetParam устанавливает параметр задачи.
func (c *Context) SetParam(key string, value any) {
	c.Params[key] = value
}

// SetEnv устанавливает переменную окружения.
func (c *Context) SetEnv(key, value string) {
	c.Env[key] = value
}

// templateFuncs — дополнительные функции для шаблонов.
var templateFuncs = template.FuncMap{
	// json — сериализует значение в JSON строку
	"json": func(v any) string {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		return string(b)
	},

	// default — возвращает значение по умолчанию, если первый аргумент пустой
	"default": func(def, val any) any {
		if val == nil {
			return def
		}
		if s, ok := val.(string); ok && s == "" {
			return def
		}
		return val
	},

	// join — объединяет слайс строк
	"join": func(sep string, items []string) string {
		return strings.Join(items, sep)
	},

	// split — разбивает строку на слайс
	"split": func(sep, s string) []string {
		return strings.Split(s, sep)
	},

	// lower — приводит к нижнему регистру
	"lower": strings.ToLower,

	// upper — приводит к верхнему регистру
	"upper": strings.ToUpper,

	// trim — удаляет пробелы по краям
	"trim": strings.TrimSpace,

	// replace — заменяет подстроку
	"replace": strings.ReplaceAll,
}

// Render рендерит строковый шаблон с контекстом.
//
// Строки без шаблонных выражений возвращаются как есть:
//
//	{{ .Vars.ds }}
//	client_id = {{ .Params.client_id }}
func Render(tmpl string, ctx *Context) (string, error) {
	// Проверяем, содержит ли строка шаблонные выражения
	if !strings.Contains(tmpl, "{{") {
		return tmpl, nil
	}

	t, err := template.New("").Funcs(templateFuncs).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	return buf.String(), nil
}

// RenderValue рендерит произвольное значение.
// Рекурсивно обрабатывает map и slice.
func RenderValue(value any, ctx *Context) (any, error) {
	if value == nil {
		return nil, nil
	}

	switch v := value.(type) {
	case string:
		return Render(v, ctx)

	case map[string]any:
		result := make(map[string]any, len(v))
		for key, val := range v {
			rendered, err := RenderValue(val, ctx)
			if err != nil {
				return nil, err
			}
			result[key] = rendered
		}
		return result, nil

	case []any:
		result := make([]any, len(v))
		for i, val := range v {
			rendered, err := RenderValue(val, ctx)
			if err != nil {
				return nil, err
			}
			result[i] = rendered
		}
		return result, nil

	case map[string]string:
		result := make(map[string]string, len(v))
		for key, val := range v {
			rendered, err := Render(val, ctx)
			if err != nil {
				return nil, err
			}
			result[key] = rendered
		}
		return result, nil

	case []string:
		result := make([]string, len(v))
		for i, val := range v {
			rendered, err := Render(val, ctx)
			if err != nil {
				return nil, err
			}
			result[i] = rendered
		}
		return result, nil

	default:
		// Для остальных типов (int, float, bool) возвращаем как есть
		return value, nil
	}
}

// RenderDict рендерит словарь конфигурации.
// Это обёртка над RenderValue для map[string]any.
func RenderDict(dict map[string]any, ctx *Context) (map[string]any, error) {
	if dict == nil {
		return make(map[string]any), nil
	}

	rendered, err := RenderValue(dict, ctx)
	if err != nil {
		return nil, err
	}

	result, ok := rendered.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected map, got %T", ErrTemplateRender, rendered)
	}

	return result, nil
}
