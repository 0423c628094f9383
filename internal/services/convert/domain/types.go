// Package domain defines the types and interfaces for the convert service
package domain

import "time"

// ConvertInput is one conversion request
// Exactly one of CSV or Path must carry the input data
type ConvertInput struct {
	// CSV is raw delimited text
	CSV string `json:"csv" validate:"required_without=Path"`
	// Path points at a CSV file on disk; the CLI only, the HTTP
	// transport rejects it
	Path string `json:"path" validate:"required_without=CSV"`

	// Delimiter is a single character or "auto"; empty means comma
	Delimiter string `json:"delimiter" validate:"omitempty,max=4"`
	// ClassName seeds the generated class identifier; empty means Data
	ClassName string `json:"class_name" validate:"omitempty,ident"`
	// Validation picks how strict the generated code is
	Validation string `json:"validation" validate:"omitempty,oneof=none basic strict"`
	// Kinds limits which serializers are generated; empty means all
	Kinds []string `json:"kinds" validate:"omitempty,dive,oneof=django marshmallow pydantic dataclass"`
	// Indent pretty prints the JSON body when > 0
	Indent int `json:"indent" validate:"omitempty,min=0,max=8"`
}

// ColumnType pairs a column with its inferred semantic tag
type ColumnType struct {
	Name string `json:"name"`
	Tag  string `json:"tag"`
}

// ConvertResult is the outcome of one conversion
type ConvertResult struct {
	RunID     string            `json:"run_id"`
	ClassName string            `json:"class_name"`
	Records   int               `json:"records"`
	Columns   []ColumnType      `json:"columns"`
	JSON      string            `json:"json"`
	Sources   map[string]string `json:"sources"`
	// Summary is the rendered data summary block, ready to print
	Summary string `json:"summary"`
}

// SamplePreview bundles the embedded sample CSV with its conversion
type SamplePreview struct {
	CSV    string        `json:"csv"`
	Result ConvertResult `json:"result"`
}

// RunRecord is one row of the conversion run ledger
type RunRecord struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	ClassName  string    `json:"class_name"`
	Validation string    `json:"validation"`
	Records    int       `json:"records"`
	Fields     int       `json:"fields"`
	Kinds      []string  `json:"kinds"`
}
