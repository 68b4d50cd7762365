package render

import (
	"errors"
	"testing"
)

func TestNewContext(t *testing.T) {
	// С nil vars
	ctx := NewContext(nil)
	if ctx.Vars == nil {
		t.Error("Vars should not be nil")
	}
	if ctx.Params == nil {
		t.Error("Params should not be nil")
	}

	// С vars
	vars := map[string]any{"ds": "2024-06-01"}
	ctx = NewContext(vars)
	if ctx.Vars["ds"] != "2024-06-01" {
		t.Error("Vars should contain provided values")
	}
}

func TestRender_Simple(t *testing.T) {
	ctx := NewContext(map[string]any{
		"ds":    "2024-06-01",
		"count": 42,
	})
	ctx.SetParam("client_id", 7)
	ctx.SetEnv("SCAN_SCHEMA", "public")

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{
			name:     "execution variable",
			template: "date = {{ .Vars.ds }}",
			expected: "date = 2024-06-01",
		},
		{
			name:     "param",
			template: "client_id = {{ .Params.client_id }}",
			expected: "client_id = 7",
		},
		{
			name:     "env",
			template: "{{ .Env.SCAN_SCHEMA }}",
			expected: "public",
		},
		{
			name:     "no template",
			template: "plain text",
			expected: "plain text",
		},
		{
			name:     "number variable",
			template: "count: {{ .Vars.count }}",
			expected: "count: 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Render(tt.template, ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestRender_Functions(t *testing.T) {
	ctx := NewContext(map[string]any{
		"text": " Hello World ",
		"list": []string{"a", "b", "c"},
	})

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{
			name:     "lower",
			template: "{{ lower .Vars.text | trim }}",
			expected: "hello world",
		},
		{
			name:     "upper",
			template: "{{ trim .Vars.text | upper }}",
			expected: "HELLO WORLD",
		},
		{
			name:     "join",
			template: `{{ join "," .Vars.list }}`,
			expected: "a,b,c",
		},
		{
			name:     "default with missing value",
			template: `{{ default "fallback" .Vars.missing }}`,
			expected: "fallback",
		},
		{
			name:     "json",
			template: `{{ json .Vars.list }}`,
			expected: `["a","b","c"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Render(tt.template, ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestRender_ParseError(t *testing.T) {
	ctx := NewContext(nil)

	_, err := Render("{{ .Vars.unclosed", ctx)
	if !errors.Is(err, ErrTemplateParse) {
		t.Errorf("expected ErrTemplateParse, got %v", err)
	}
}

func TestRenderValue_Recursive(t *testing.T) {
	ctx := NewContext(map[string]any{"ds": "2024-06-01"})

	value := map[string]any{
		"filter": "date = {{ .Vars.ds }}",
		"nested": map[string]any{
			"list": []any{"{{ .Vars.ds }}", 10},
		},
		"number": 5,
	}

	rendered, err := RenderValue(value, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := rendered.(map[string]any)
	if m["filter"] != "date = 2024-06-01" {
		t.Errorf("filter not rendered: %v", m["filter"])
	}
	if m["number"] != 5 {
		t.Errorf("number should pass through unchanged: %v", m["number"])
	}

	nested := m["nested"].(map[string]any)
	list := nested["list"].([]any)
	if list[0] != "2024-06-01" {
		t.Errorf("nested list not rendered: %v", list[0])
	}
	if list[1] != 10 {
		t.Errorf("nested number changed: %v", list[1])
	}
}

func TestRenderDict(t *testing.T) {
	ctx := NewContext(map[string]any{"ds": "2024-06-01"})

	// nil dict — пустой результат
	result, err := RenderDict(nil, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 0 {
		t.Error("nil dict should render to empty map")
	}

	result, err = RenderDict(map[string]any{"filter": "{{ .Vars.ds }}"}, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result["filter"] != "2024-06-01" {
		t.Errorf("expected rendered filter, got %v", result["filter"])
	}
}
