package reflection

import (
	"github.com/lexlapax/xmerge/pkg/miller"
)

// Kind names the element type of a column.
type Kind string

// Column kinds
const (
	KindMillerIndex Kind = "miller_index"
	KindFloat       Kind = "float"
	KindInt         Kind = "int"
	KindString      Kind = "string"
)

// Column is a homogeneous sequence of per-row values.
type Column interface {
	// Len returns the number of rows in the column
	Len() int

	// Kind returns the element type of the column
	Kind() Kind

	// Clone returns a deep copy that shares no storage with the receiver
	Clone() Column

	// selectRows returns a new column holding the given rows in order
	selectRows(rows []int) Column

	// appendColumn returns the receiver extended by o, which has the same kind
	appendColumn(o Column) Column
}

// MillerIndexColumn holds one Miller index per row.
type MillerIndexColumn []miller.Index

// FloatColumn holds one float per row.
type FloatColumn []float64

// IntColumn holds one integer per row.
type IntColumn []int64

// StringColumn holds one string per row.
type StringColumn []string

func (c MillerIndexColumn) Len() int { return len(c) }

func (c MillerIndexColumn) Kind() Kind { return KindMillerIndex }

func (c MillerIndexColumn) Clone() Column {
	return append(MillerIndexColumn(nil), c...)
}

func (c MillerIndexColumn) selectRows(rows []int) Column {
	out := make(MillerIndexColumn, len(rows))
	for i, r := range rows {
		out[i] = c[r]
	}
	return out
}

func (c MillerIndexColumn) appendColumn(o Column) Column {
	return append(c.Clone().(MillerIndexColumn), o.(MillerIndexColumn)...)
}

func (c FloatColumn) Len() int { return len(c) }

func (c FloatColumn) Kind() Kind { return KindFloat }

func (c FloatColumn) Clone() Column {
	return append(FloatColumn(nil), c...)
}

func (c FloatColumn) selectRows(rows []int) Column {
	out := make(FloatColumn, len(rows))
	for i, r := range rows {
		out[i] = c[r]
	}
	return out
}

func (c FloatColumn) appendColumn(o Column) Column {
	return append(c.Clone().(FloatColumn), o.(FloatColumn)...)
}

func (c IntColumn) Len() int { return len(c) }

func (c IntColumn) Kind() Kind { return KindInt }

func (c IntColumn) Clone() Column {
	return append(IntColumn(nil), c...)
}

func (c IntColumn) selectRows(rows []int) Column {
	out := make(IntColumn, len(rows))
	for i, r := range rows {
		out[i] = c[r]
	}
	return out
}

func (c IntColumn) appendColumn(o Column) Column {
	return append(c.Clone().(IntColumn), o.(IntColumn)...)
}

func (c StringColumn) Len() int { return len(c) }

func (c StringColumn) Kind() Kind { return KindString }

func (c StringColumn) Clone() Column {
	return append(StringColumn(nil), c...)
}

func (c StringColumn) selectRows(rows []int) Column {
	out := make(StringColumn, len(rows))
	for i, r := range rows {
		out[i] = c[r]
	}
	return out
}

func (c StringColumn) appendColumn(o Column) Column {
	return append(c.Clone().(StringColumn), o.(StringColumn)...)
}
