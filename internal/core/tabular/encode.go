package tabular

import (
	"bytes"
	"encoding/json"
	"strings"

	perr "csvforge/internal/platform/errors"
)

// EncodeJSON renders the dataset as a JSON array of objects
// Keys appear in header order; absent cells encode as null
// indent > 0 pretty prints with that many spaces per level
func EncodeJSON(ds *Dataset, indent int) ([]byte, error) {
	if ds == nil || ds.Empty() {
		return nil, perr.EmptyDatasetf("no records to encode")
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, rec := range ds.Records {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeRecord(&buf, ds.Columns, rec); err != nil {
			return nil, err
		}
	}
	buf.WriteByte(']')

	if indent <= 0 {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", strings.Repeat(" ", indent)); err != nil {
		return nil, perr.JSONErrf("indenting JSON: %v", err)
	}
	return out.Bytes(), nil
}

func encodeRecord(buf *bytes.Buffer, cols []string, rec Record) error {
	buf.WriteByte('{')
	for i, col := range cols {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return perr.JSONErrf("encoding column name %q: %v", col, err)
		}
		buf.Write(key)
		buf.WriteByte(':')

		v := Value{Kind: KindAbsent}
		if i < len(rec) {
			v = rec[i]
		}
		val, err := json.Marshal(v)
		if err != nil {
			return perr.JSONErrf("encoding value for %q: %v", col, err)
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return nil
}
