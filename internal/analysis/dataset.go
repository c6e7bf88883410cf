package analysis

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Row maps column names to cells and remembers the order in which columns
// were first set.
type Row struct {
	keys  []string
	cells map[string]Value
}

// Dataset is an ordered sequence of rows, fully materialized in memory.
type Dataset []Row

// RowOf builds a row from alternating name/value pairs. Values may be Value,
// string, nil, or any Go integer or float type. It panics on malformed input
// and is meant for literals.
func RowOf(pairs ...any) Row {
	if len(pairs)%2 != 0 {
		panic("analysis.RowOf: odd number of arguments")
	}
	var r Row
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("analysis.RowOf: column name at %d is %T, want string", i, pairs[i]))
		}
		r.Set(name, toValue(pairs[i+1]))
	}
	return r
}

func toValue(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null
	case Value:
		return t
	case string:
		return TextValue(t)
	case float64:
		return NumberValue(t)
	case float32:
		return NumberValue(float64(t))
	case int:
		return NumberValue(float64(t))
	case int32:
		return NumberValue(float64(t))
	case int64:
		return NumberValue(float64(t))
	case uint:
		return NumberValue(float64(t))
	default:
		panic(fmt.Sprintf("analysis.RowOf: unsupported cell type %T", x))
	}
}

// Set stores a cell, appending the column to the key order if it is new.
func (r *Row) Set(name string, v Value) {
	if r.cells == nil {
		r.cells = make(map[string]Value)
	}
	if _, ok := r.cells[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.cells[name] = v
}

// Get returns the cell for name, or Null when the column is absent.
func (r Row) Get(name string) Value {
	if r.cells == nil {
		return Null
	}
	return r.cells[name]
}

// Has reports whether the column key exists in the row.
func (r Row) Has(name string) bool {
	_, ok := r.cells[name]
	return ok
}

// Keys returns column names in insertion order.
func (r Row) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// MarshalJSON writes the row as an object with keys in insertion order.
func (r Row) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		b.Write(kb)
		b.WriteByte(':')
		vb, err := r.cells[k].MarshalJSON()
		if err != nil {
			return nil, err
		}
		b.Write(vb)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON decodes a flat JSON object, keeping key order.
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode row: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("decode row: expected JSON object")
	}
	*r = Row{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode row: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("decode row: unexpected key %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decode column %q: %w", name, err)
		}
		var v Value
		if err := v.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("decode column %q: %w", name, err)
		}
		r.Set(name, v)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode row: %w", err)
	}
	return nil
}

// Columns returns the schema of the dataset: the keys of the first row.
// Rows with other keys are not inspected; an empty dataset has no columns.
func (d Dataset) Columns() []string {
	if len(d) == 0 {
		return nil
	}
	return d[0].Keys()
}

// Values collects the cells of one column across all rows. Absent keys are Null.
func (d Dataset) Values(column string) []Value {
	out := make([]Value, len(d))
	for i, row := range d {
		out[i] = row.Get(column)
	}
	return out
}
