// Package table turns raw delimited spreadsheet text into header-keyed
// records and resolves human-edited header spellings to semantic columns.
//
// The input is whatever a "publish to web" CSV export produces: comma
// separated, optionally double-quoted fields, doubled quotes as escapes,
// and no guarantee that every row has the same number of fields. Parsing
// is best effort; a malformed row never fails the table.
package table

import (
	"strings"

	"github.com/dmoren/sportcal/internal/textfold"
)

// Record maps an original header string to the trimmed cell value for one
// data row. Header casing is preserved so callers can re-resolve columns.
type Record map[string]string

// Parse splits raw CSV text into one Record per non-blank data row.
//
// Rules: fields are separated by commas; a field may be wrapped in double
// quotes; a doubled quote inside a quoted field is a literal quote; a
// newline outside quotes ends the row; carriage returns are ignored. The
// first row is the header row. Rows shorter than the header are padded
// with empty strings. Empty input yields no records.
func Parse(text string) []Record {
	rows := splitRows(text)
	if len(rows) == 0 {
		return nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		blank := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}

		rec := make(Record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = strings.TrimSpace(row[i])
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

// splitRows is the quote-aware scanner underneath Parse.
func splitRows(text string) [][]string {
	var rows [][]string
	var row []string
	var cur strings.Builder
	quoted := false

	for i := 0; i < len(text); i++ {
		ch := text[i]
		if quoted {
			switch {
			case ch == '"' && i+1 < len(text) && text[i+1] == '"':
				cur.WriteByte('"')
				i++
			case ch == '"':
				quoted = false
			default:
				cur.WriteByte(ch)
			}
			continue
		}
		switch ch {
		case '"':
			quoted = true
		case ',':
			row = append(row, cur.String())
			cur.Reset()
		case '\n':
			row = append(row, cur.String())
			rows = append(rows, row)
			row = nil
			cur.Reset()
		case '\r':
			// ignored
		default:
			cur.WriteByte(ch)
		}
	}
	if cur.Len() > 0 || len(row) > 0 {
		row = append(row, cur.String())
		rows = append(rows, row)
	}
	return rows
}

// Aliases lists the accepted header spellings for each semantic column, in
// priority order. The lists differ per sport (a football sheet says
// "kickoff" where a motorsport sheet says "start") but resolve to the same
// fields.
type Aliases struct {
	Title    []string `yaml:"title"`
	Start    []string `yaml:"start"`
	End      []string `yaml:"end"`
	Location []string `yaml:"location"`
}

// ResolveHeader returns the record's original header matched by the first
// alias that resolves, comparing case-, separator-, and
// diacritic-insensitively. It never guesses by substring.
func ResolveHeader(rec Record, aliases []string) (string, bool) {
	byKey := make(map[string]string, len(rec))
	for h := range rec {
		byKey[textfold.Key(h)] = h
	}
	for _, a := range aliases {
		if h, ok := byKey[textfold.Key(a)]; ok {
			return h, true
		}
	}
	return "", false
}

// Pick resolves the column for aliases and returns its trimmed value, or ""
// when no header matches or the cell is blank.
func Pick(rec Record, aliases []string) string {
	h, ok := ResolveHeader(rec, aliases)
	if !ok {
		return ""
	}
	return strings.TrimSpace(rec[h])
}

// HasColumns reports whether every required alias list resolves against the
// record. Ingestion checks this once against the first data record; a sheet
// that fails it is skipped wholesale rather than dropping every row one by
// one.
func HasColumns(rec Record, required ...[]string) bool {
	for _, aliases := range required {
		if _, ok := ResolveHeader(rec, aliases); !ok {
			return false
		}
	}
	return true
}
