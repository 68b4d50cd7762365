package scan

import (
	"fmt"

	"github.com/shaiso/Validata/warehouse"
)

// SourceKind — вид представления описания (скана или склада).
type SourceKind int

// Виды представлений.
const (
	// SourceUnknown — нулевое значение, источник не задан.
	SourceUnknown SourceKind = iota

	// SourceFile — путь к YAML файлу.
	SourceFile

	// SourceDict — словарь (map), уже отрендеренный оркестратором.
	SourceDict

	// SourceYml — разобранный типизированный объект.
	SourceYml
)

// String возвращает строковое представление SourceKind.
func (k SourceKind) String() string {
	switch k {
	case SourceFile:
		return "file"
	case SourceDict:
		return "dict"
	case SourceYml:
		return "yml"
	default:
		return "unknown"
	}
}

// Source — описание скана в одном из трёх представлений.
//
// Заполнено ровно одно поле, соответствующее Kind.
// Разбор по видам выполняется явным switch по Kind,
// без инспекции типов во время выполнения.
type Source struct {
	Kind SourceKind

	File string
	Dict map[string]any
	Yml  *Yml
}

// FromFile создаёт источник-файл.
func FromFile(path string) Source {
	return Source{Kind: SourceFile, File: path}
}

// FromDict создаёт источник-словарь.
func FromDict(dict map[string]any) Source {
	return Source{Kind: SourceDict, Dict: dict}
}

// FromYml создаёт источник из разобранного описания.
func FromYml(yml *Yml) Source {
	return Source{Kind: SourceYml, Yml: yml}
}

// Apply заполняет соответствующий слот скана в Builder.
// Ровно один слот, остальные не трогаются.
func (s Source) Apply(b *Builder) error {
	switch s.Kind {
	case SourceFile:
		b.ScanFile = s.File
	case SourceDict:
		b.ScanDict = s.Dict
	case SourceYml:
		b.ScanYml = s.Yml
	default:
		return fmt.Errorf("%w: scan source %s", ErrUnknownSourceKind, s.Kind)
	}
	return nil
}

// WarehouseSource — описание склада данных в одном из трёх представлений.
type WarehouseSource struct {
	Kind SourceKind

	File string
	Dict map[string]any
	Yml  *warehouse.Yml
}

// WarehouseFromFile создаёт источник-файл склада.
func WarehouseFromFile(path string) WarehouseSource {
	return WarehouseSource{Kind: SourceFile, File: path}
}

// WarehouseFromDict создаёт источник-словарь склада.
func WarehouseFromDict(dict map[string]any) WarehouseSource {
	return WarehouseSource{Kind: SourceDict, Dict: dict}
}

// WarehouseFromYml создаёт источник из разобранного описания склада.
func WarehouseFromYml(yml *warehouse.Yml) WarehouseSource {
	return WarehouseSource{Kind: SourceYml, Yml: yml}
}

// Apply заполняет соответствующий слот склада в Builder.
func (s WarehouseSource) Apply(b *Builder) error {
	switch s.Kind {
	case SourceFile:
		b.WarehouseFile = s.File
	case SourceDict:
		b.WarehouseDict = s.Dict
	case SourceYml:
		b.WarehouseYml = s.Yml
	default:
		return fmt.Errorf("%w: warehouse source %s", ErrUnknownSourceKind, s.Kind)
	}
	return nil
}
