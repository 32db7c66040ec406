package reflection

import (
	"encoding/json"
	"fmt"
	"math"

	errs "github.com/lexlapax/xmerge/pkg/errors"
	"github.com/lexlapax/xmerge/pkg/miller"
)

type tableJSON struct {
	Size    int          `json:"size"`
	Columns []columnJSON `json:"columns"`
}

type columnJSON struct {
	Name string          `json:"name"`
	Kind Kind            `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// MarshalJSON encodes the table with its column kinds so it can be restored exactly.
func (t *Table) MarshalJSON() ([]byte, error) {
	out := tableJSON{Size: t.size, Columns: make([]columnJSON, 0, len(t.order))}
	for _, name := range t.order {
		col := t.columns[name]
		data, err := json.Marshal(col)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal column %q: %w", name, err)
		}
		out.Columns = append(out.Columns, columnJSON{Name: name, Kind: col.Kind(), Data: data})
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a table written by MarshalJSON.
func (t *Table) UnmarshalJSON(data []byte) error {
	var in tableJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("failed to unmarshal table: %w", err)
	}

	decoded := New()
	decoded.size = in.Size
	for _, c := range in.Columns {
		col, err := decodeColumn(c)
		if err != nil {
			return err
		}
		if col.Len() != in.Size {
			return fmt.Errorf("%w: column %q has %d rows, table has %d",
				errs.ErrColumnLength, c.Name, col.Len(), in.Size)
		}
		if err := decoded.Set(c.Name, col); err != nil {
			return err
		}
	}
	*t = *decoded
	return nil
}

func decodeColumn(c columnJSON) (Column, error) {
	var (
		col Column
		err error
	)
	switch c.Kind {
	case KindMillerIndex:
		var v []miller.Index
		err = json.Unmarshal(c.Data, &v)
		col = MillerIndexColumn(v)
	case KindFloat:
		var v FloatColumn
		err = json.Unmarshal(c.Data, &v)
		col = v
	case KindInt:
		var v []int64
		err = json.Unmarshal(c.Data, &v)
		col = IntColumn(v)
	case KindString:
		var v []string
		err = json.Unmarshal(c.Data, &v)
		col = StringColumn(v)
	default:
		return nil, fmt.Errorf("%w: unknown column kind %q for %q", errs.ErrInvalidInput, c.Kind, c.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal column %q: %w", c.Name, err)
	}
	return col, nil
}

// Non-finite values have no JSON number form and are written as strings.
const (
	jsonNaN    = "NaN"
	jsonPosInf = "+Inf"
	jsonNegInf = "-Inf"
)

// MarshalJSON writes finite values as numbers and NaN or infinities as
// the strings "NaN", "+Inf" and "-Inf".
func (c FloatColumn) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	out := make([]interface{}, len(c))
	for i, v := range c {
		switch {
		case math.IsNaN(v):
			out[i] = jsonNaN
		case math.IsInf(v, 1):
			out[i] = jsonPosInf
		case math.IsInf(v, -1):
			out[i] = jsonNegInf
		default:
			out[i] = v
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the form written by MarshalJSON.
func (c *FloatColumn) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(FloatColumn, len(raw))
	for i, r := range raw {
		if len(r) > 0 && r[0] == '"' {
			var s string
			if err := json.Unmarshal(r, &s); err != nil {
				return err
			}
			switch s {
			case jsonNaN:
				out[i] = math.NaN()
			case jsonPosInf:
				out[i] = math.Inf(1)
			case jsonNegInf:
				out[i] = math.Inf(-1)
			default:
				return fmt.Errorf("%w: invalid float value %q at row %d", errs.ErrInvalidInput, s, i)
			}
			continue
		}
		if err := json.Unmarshal(r, &out[i]); err != nil {
			return fmt.Errorf("invalid float value at row %d: %w", i, err)
		}
	}
	*c = out
	return nil
}
