package tabular

// Record is one row of normalized cells aligned with Dataset.Columns
type Record []Value

// Dataset is the parsed form of one delimited input
// Columns preserve header order; Tags is populated by Infer
type Dataset struct {
	Columns []string
	Records []Record
	Tags    map[string]Tag
}

// Empty reports whether the dataset holds no records
func (d *Dataset) Empty() bool { return len(d.Records) == 0 }

// Cell returns the value for col in rec, absent when col is unknown
func (d *Dataset) Cell(rec Record, col string) Value {
	for i, c := range d.Columns {
		if c == col {
			if i < len(rec) {
				return rec[i]
			}
			break
		}
	}
	return Value{Kind: KindAbsent}
}

// Column returns every non-absent value in the named column
func (d *Dataset) Column(col string) []Value {
	idx := -1
	for i, c := range d.Columns {
		if c == col {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	var out []Value
	for _, rec := range d.Records {
		if idx < len(rec) && !rec[idx].Absent() {
			out = append(out, rec[idx])
		}
	}
	return out
}
