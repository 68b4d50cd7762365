package scan

import (
	"context"
	"errors"
	"testing"

	"github.com/shaiso/Validata/warehouse"
)

func TestSourceKind_String(t *testing.T) {
	tests := []struct {
		kind     SourceKind
		expected string
	}{
		{SourceFile, "file"},
		{SourceDict, "dict"},
		{SourceYml, "yml"},
		{SourceUnknown, "unknown"},
	}

	for _, tt := range tests {
		if tt.kind.String() != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, tt.kind.String())
		}
	}
}

// Для каждого вида источника скана заполняется ровно один слот Builder.
func TestSource_Apply_Dispatch(t *testing.T) {
	yml := &Yml{TableName: "orders"}

	tests := []struct {
		name   string
		source Source
		check  func(t *testing.T, b *Builder)
	}{
		{
			name:   "file source sets only ScanFile",
			source: FromFile("/scans/orders.yml"),
			check: func(t *testing.T, b *Builder) {
				if b.ScanFile != "/scans/orders.yml" {
					t.Errorf("ScanFile not set: %q", b.ScanFile)
				}
				if b.ScanDict != nil || b.ScanYml != nil {
					t.Error("other scan slots must stay empty")
				}
			},
		},
		{
			name:   "dict source sets only ScanDict",
			source: FromDict(map[string]any{"table_name": "orders"}),
			check: func(t *testing.T, b *Builder) {
				if b.ScanDict == nil || b.ScanDict["table_name"] != "orders" {
					t.Errorf("ScanDict not set: %v", b.ScanDict)
				}
				if b.ScanFile != "" || b.ScanYml != nil {
					t.Error("other scan slots must stay empty")
				}
			},
		},
		{
			name:   "yml source sets only ScanYml",
			source: FromYml(yml),
			check: func(t *testing.T, b *Builder) {
				if b.ScanYml != yml {
					t.Errorf("ScanYml not set: %v", b.ScanYml)
				}
				if b.ScanFile != "" || b.ScanDict != nil {
					t.Error("other scan slots must stay empty")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(nil)
			if err := tt.source.Apply(b); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, b)
		})
	}
}

func TestSource_Apply_UnknownKind(t *testing.T) {
	b := NewBuilder(nil)

	var s Source // нулевое значение — источник не задан
	err := s.Apply(b)
	if !errors.Is(err, ErrUnknownSourceKind) {
		t.Errorf("expected ErrUnknownSourceKind, got %v", err)
	}
}

func TestWarehouseSource_Apply_Dispatch(t *testing.T) {
	yml := &warehouse.Yml{Name: "analytics"}

	tests := []struct {
		name   string
		source WarehouseSource
		check  func(t *testing.T, b *Builder)
	}{
		{
			name:   "file source sets only WarehouseFile",
			source: WarehouseFromFile("/warehouse.yml"),
			check: func(t *testing.T, b *Builder) {
				if b.WarehouseFile != "/warehouse.yml" {
					t.Errorf("WarehouseFile not set: %q", b.WarehouseFile)
				}
				if b.WarehouseDict != nil || b.WarehouseYml != nil {
					t.Error("other warehouse slots must stay empty")
				}
			},
		},
		{
			name:   "dict source sets only WarehouseDict",
			source: WarehouseFromDict(map[string]any{"name": "analytics"}),
			check: func(t *testing.T, b *Builder) {
				if b.WarehouseDict == nil || b.WarehouseDict["name"] != "analytics" {
					t.Errorf("WarehouseDict not set: %v", b.WarehouseDict)
				}
				if b.WarehouseFile != "" || b.WarehouseYml != nil {
					t.Error("other warehouse slots must stay empty")
				}
			},
		},
		{
			name:   "yml source sets only WarehouseYml",
			source: WarehouseFromYml(yml),
			check: func(t *testing.T, b *Builder) {
				if b.WarehouseYml != yml {
					t.Errorf("WarehouseYml not set: %v", b.WarehouseYml)
				}
				if b.WarehouseFile != "" || b.WarehouseDict != nil {
					t.Error("other warehouse slots must stay empty")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(nil)
			if err := tt.source.Apply(b); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, b)
		})
	}
}

func TestWarehouseSource_Apply_UnknownKind(t *testing.T) {
	b := NewBuilder(nil)

	var s WarehouseSource
	err := s.Apply(b)
	if !errors.Is(err, ErrUnknownSourceKind) {
		t.Errorf("expected ErrUnknownSourceKind, got %v", err)
	}
}

func TestBuilder_Build_NoEngine(t *testing.T) {
	b := NewBuilder(nil)

	_, err := b.Build(context.Background())
	if !errors.Is(err, ErrNoEngine) {
		t.Errorf("expected ErrNoEngine, got %v", err)
	}
}
