// Package locales loads flat locale tables from JSON source files.
package locales

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Table is a read-only snapshot of one locale's key/value pairs. JSON object
// order is not preserved by Go maps, so the key order of the source file is
// tracked separately; everything that iterates a table must use Keys().
type Table struct {
	keys   []string
	values map[string]string
}

type Entry struct {
	Key   string
	Value string
}

func NewTable(entries ...Entry) Table {
	table := Table{values: make(map[string]string, len(entries))}
	for _, entry := range entries {
		table.add(entry.Key, entry.Value)
	}
	return table
}

// Keys returns the raw keys in source-file insertion order.
func (t Table) Keys() []string {
	return t.keys
}

func (t Table) Value(key string) (string, bool) {
	value, ok := t.values[key]
	return value, ok
}

func (t Table) Has(key string) bool {
	_, ok := t.values[key]
	return ok
}

func (t Table) Len() int {
	return len(t.keys)
}

func (t *Table) add(key string, value string) {
	if t.values == nil {
		t.values = make(map[string]string)
	}
	if _, seen := t.values[key]; !seen {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Set maps locale codes to their tables, in directory-listing order.
type Set struct {
	codes  []string
	tables map[string]Table
}

func NewSet() *Set {
	return &Set{tables: make(map[string]Table)}
}

func (s *Set) Add(code string, table Table) {
	if s.tables == nil {
		s.tables = make(map[string]Table)
	}
	if _, seen := s.tables[code]; !seen {
		s.codes = append(s.codes, code)
	}
	s.tables[code] = table
}

// Codes returns the loaded locale codes in insertion order.
func (s Set) Codes() []string {
	return s.codes
}

func (s Set) Table(code string) (Table, bool) {
	table, ok := s.tables[code]
	return table, ok
}

func (s Set) Len() int {
	return len(s.codes)
}

// decodeTable parses a single flat JSON object while keeping the key order.
// Values are read as strings; other JSON leaves are stringified.
func decodeTable(data []byte) (Table, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	opening, err := decoder.Token()
	if err != nil {
		return Table{}, errors.Wrap(err, "failed to read locale file")
	}
	if delim, ok := opening.(json.Delim); !ok || delim != '{' {
		return Table{}, errors.New("top-level value is not an object")
	}

	table := NewTable()
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return Table{}, errors.Wrap(err, "failed to read key")
		}
		key, ok := keyToken.(string)
		if !ok {
			return Table{}, errors.Errorf("unexpected key token %v", keyToken)
		}

		var value interface{}
		if err := decoder.Decode(&value); err != nil {
			return Table{}, errors.Wrapf(err, "failed to read value of %q", key)
		}
		table.add(key, stringifyValue(value))
	}

	if _, err := decoder.Token(); err != nil {
		return Table{}, errors.Wrap(err, "failed to read closing brace")
	}

	return table, nil
}

func stringifyValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
