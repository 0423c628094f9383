package tabular

import (
	"fmt"
	"strings"
)

// sampleFieldCap bounds how many fields of the first record the
// rendered summary shows
const sampleFieldCap = 5

// ColumnTag pairs a column name with its inferred tag, in header order
type ColumnTag struct {
	Column string
	Tag    Tag
}

// Summary describes a loaded dataset for humans
type Summary struct {
	Records int
	Fields  int
	Tags    []ColumnTag
	Sample  []string // "name -> value" lines from the first record
}

// Summarize builds a Summary for ds
func Summarize(ds *Dataset) Summary {
	s := Summary{}
	if ds == nil {
		return s
	}
	s.Records = len(ds.Records)
	s.Fields = len(ds.Columns)
	for _, col := range ds.Columns {
		s.Tags = append(s.Tags, ColumnTag{Column: col, Tag: ds.Tags[col]})
	}
	if len(ds.Records) > 0 {
		first := ds.Records[0]
		for i, col := range ds.Columns {
			if i >= sampleFieldCap {
				break
			}
			s.Sample = append(s.Sample, fmt.Sprintf("%-20s -> %s", col, first[i].String()))
		}
	}
	return s
}

// String renders the summary as a text block
func (s Summary) String() string {
	if s.Records == 0 && s.Fields == 0 {
		return "no data loaded"
	}

	var b strings.Builder
	rule := strings.Repeat("=", 50)
	fmt.Fprintf(&b, "%s\nDATA SUMMARY\n%s\n", rule, rule)
	fmt.Fprintf(&b, "Records loaded: %d\n", s.Records)
	fmt.Fprintf(&b, "Fields: %d\n", s.Fields)
	b.WriteString("\nField types:\n")
	for _, ct := range s.Tags {
		fmt.Fprintf(&b, "  %-20s -> %s\n", ct.Column, ct.Tag)
	}
	if len(s.Sample) > 0 {
		b.WriteString("\nSample record:\n")
		for _, line := range s.Sample {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}
	return b.String()
}
