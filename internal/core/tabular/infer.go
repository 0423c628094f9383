package tabular

import (
	"regexp"
	"strings"
)

// Tag is the semantic type inferred for a column
type Tag string

// Semantic tags in inference priority order
const (
	TagEmail   Tag = "email"
	TagDate    Tag = "date"
	TagURL     Tag = "url"
	TagInteger Tag = "integer"
	TagFloat   Tag = "float"
	TagBoolean Tag = "boolean"
	TagString  Tag = "string"
)

var datePats = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), // YYYY-MM-DD
	regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`), // MM/DD/YYYY
	regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`), // MM-DD-YYYY
	regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`), // YYYY/MM/DD
}

// Infer assigns one Tag per column from its non-absent values
// Priority: any email, any date, any url, all int, all numeric,
// all bool, else string. Columns with no values tag as string
func Infer(ds *Dataset) map[string]Tag {
	tags := make(map[string]Tag, len(ds.Columns))
	for _, col := range ds.Columns {
		tags[col] = inferColumn(ds.Column(col))
	}
	return tags
}

func inferColumn(values []Value) Tag {
	if len(values) == 0 {
		return TagString
	}

	anyEmail, anyDate, anyURL := false, false, false
	allInt, allNumeric, allBool := true, true, true
	for _, v := range values {
		s := v.String()
		if strings.Contains(s, "@") && strings.Contains(s, ".") {
			anyEmail = true
		}
		if isDateString(s) {
			anyDate = true
		}
		if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
			anyURL = true
		}
		if v.Kind != KindInt {
			allInt = false
		}
		if !v.Numeric() {
			allNumeric = false
		}
		if v.Kind != KindBool {
			allBool = false
		}
	}

	switch {
	case anyEmail:
		return TagEmail
	case anyDate:
		return TagDate
	case anyURL:
		return TagURL
	case allInt:
		return TagInteger
	case allNumeric:
		return TagFloat
	case allBool:
		return TagBoolean
	default:
		return TagString
	}
}

func isDateString(s string) bool {
	for _, p := range datePats {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
