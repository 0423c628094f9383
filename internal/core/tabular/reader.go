package tabular

import (
	"encoding/csv"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	perr "csvforge/internal/platform/errors"
)

// DelimAuto asks the reader to sniff the delimiter from a prefix sample
const DelimAuto = "auto"

// sniffSample bounds how much of the input the sniffer inspects
const sniffSample = 1024

// candidates in preference order for auto detection
var delimCandidates = []rune{',', ';', '\t', '|', ':'}

// ReadFile parses the CSV at path into a Dataset
// delim is a single literal rune or DelimAuto
func ReadFile(path, delim string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perr.NotFoundf("CSV file not found: %s", path)
		}
		return nil, perr.ReadFailedf("reading CSV file %s: %v", path, err)
	}
	ds, err := parse(string(raw), delim)
	if err != nil {
		return nil, perr.Wrapf(err, perr.CodeOf(err), "CSV file %s", path)
	}
	return ds, nil
}

// ReadString parses delimited text into a Dataset
func ReadString(text, delim string) (*Dataset, error) {
	if strings.TrimSpace(text) == "" {
		return nil, perr.ReadFailedf("empty CSV input")
	}
	return parse(text, delim)
}

func parse(text, delim string) (*Dataset, error) {
	comma, err := resolveDelim(text, delim)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = comma
	r.FieldsPerRecord = -1 // ragged rows are padded below

	header, err := r.Read()
	if err == io.EOF {
		return nil, perr.ReadFailedf("empty CSV input")
	}
	if err != nil {
		return nil, perr.ReadFailedf("parsing CSV header: %v", err)
	}

	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(h)
	}

	ds := &Dataset{Columns: cols}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, perr.ReadFailedf("parsing CSV row: %v", err)
		}
		rec := make(Record, len(cols))
		for i := range cols {
			if i < len(row) {
				rec[i] = NormalizeCell(row[i])
			} else {
				rec[i] = Value{Kind: KindAbsent}
			}
		}
		ds.Records = append(ds.Records, rec)
	}

	ds.Tags = Infer(ds)
	return ds, nil
}

// resolveDelim turns the delim argument into a rune, sniffing when asked
func resolveDelim(text, delim string) (rune, error) {
	if delim == DelimAuto {
		return sniffDelim(text)
	}
	if utf8.RuneCountInString(delim) != 1 {
		return 0, perr.InvalidArgf("delimiter must be one character or %q, got %q", DelimAuto, delim)
	}
	r, _ := utf8.DecodeRuneInString(delim)
	return r, nil
}

// sniffDelim picks the candidate with the highest count that stays
// consistent across the sampled lines
func sniffDelim(text string) (rune, error) {
	sample := text
	if len(sample) > sniffSample {
		sample = sample[:sniffSample]
	}
	lines := nonEmptyLines(sample)
	if len(lines) == 0 {
		return 0, perr.ReadFailedf("cannot detect delimiter of empty input")
	}

	best, bestCount := rune(0), 0
	for _, cand := range delimCandidates {
		count := strings.Count(lines[0], string(cand))
		if count == 0 {
			continue
		}
		consistent := true
		for _, ln := range lines[1:] {
			if strings.Count(ln, string(cand)) != count {
				consistent = false
				break
			}
		}
		if consistent && count > bestCount {
			best, bestCount = cand, count
		}
	}
	if bestCount == 0 {
		return 0, perr.ReadFailedf("could not detect delimiter")
	}
	return best, nil
}

func nonEmptyLines(s string) []string {
	var out []string
	for _, ln := range strings.Split(s, "\n") {
		if strings.TrimSpace(ln) != "" {
			out = append(out, ln)
		}
	}
	// the sample may end mid line; an uneven tail would skew consistency
	if len(out) > 2 && !strings.HasSuffix(s, "\n") {
		out = out[:len(out)-1]
	}
	return out
}
