// Package schemagen renders serializer source code for a set of typed
// columns. Four targets are supported: Django REST Framework
// serializers, Marshmallow schemas, Pydantic models and plain Python
// dataclasses. Output is deterministic for a given kind, class name,
// validation level and column list.
package schemagen

import (
	"strings"

	"csvforge/internal/core/tabular"
	perr "csvforge/internal/platform/errors"
)

// Kind names a serializer target
type Kind string

// Supported serializer targets
const (
	KindDjango      Kind = "django"
	KindMarshmallow Kind = "marshmallow"
	KindPydantic    Kind = "pydantic"
	KindDataclass   Kind = "dataclass"
)

// Level controls how much validation the generated code enforces
type Level string

// Validation levels from loosest to strictest
const (
	LevelNone   Level = "none"
	LevelBasic  Level = "basic"
	LevelStrict Level = "strict"
)

// Field is one column to render, in output order
type Field struct {
	Name string
	Tag  tabular.Tag
}

// generator renders one target from an already validated request
type generator func(class string, level Level, fields []Field) string

// registry maps kind names to their generators
var registry = map[Kind]generator{
	KindDjango:      generateDjango,
	KindMarshmallow: generateMarshmallow,
	KindPydantic:    generatePydantic,
	KindDataclass:   generateDataclass,
}

// Kinds returns the supported targets in stable order
func Kinds() []Kind {
	return []Kind{KindDjango, KindMarshmallow, KindPydantic, KindDataclass}
}

// ParseKind validates a kind name
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := registry[k]; !ok {
		return "", perr.UnknownFormatf("unknown serializer type: %s", s)
	}
	return k, nil
}

// ParseLevel validates a validation level, defaulting empty to basic
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case LevelNone, LevelBasic, LevelStrict:
		return l, nil
	case "":
		return LevelBasic, nil
	default:
		return "", perr.InvalidArgf("unknown validation level: %s", s)
	}
}

// Generate renders serializer source for kind
// The class name is normalized to an exported identifier first
func Generate(kind Kind, class string, level Level, fields []Field) (string, error) {
	gen, ok := registry[kind]
	if !ok {
		return "", perr.UnknownFormatf("unknown serializer type: %s", kind)
	}
	if len(fields) == 0 {
		return "", perr.EmptyDatasetf("no columns to generate %s serializer from", kind)
	}
	if level == "" {
		level = LevelBasic
	}
	return gen(ClassName(class), level, fields), nil
}

// FieldsOf flattens a dataset's columns and tags into generator input
func FieldsOf(ds *tabular.Dataset) []Field {
	if ds == nil {
		return nil
	}
	out := make([]Field, 0, len(ds.Columns))
	for _, col := range ds.Columns {
		out = append(out, Field{Name: col, Tag: ds.Tags[col]})
	}
	return out
}
