package dataset

// Type is the inferred scalar type of a column.
type Type int

const (
	// Text holds arbitrary strings.
	Text Type = iota
	// Integer holds int64 values; integer columns never contain nulls.
	Integer
	// Float holds float64 values.
	Float
)

// String returns the dataframe-style dtype name.
func (t Type) String() string {
	switch t {
	case Integer:
		return "int64"
	case Float:
		return "float64"
	default:
		return "object"
	}
}

// SQLType returns the SQLite column type used to persist values of t.
func (t Type) SQLType() string {
	switch t {
	case Integer:
		return "INTEGER"
	case Float:
		return "REAL"
	default:
		return "TEXT"
	}
}

// Column is a named, typed column.
type Column struct {
	Name string
	Type Type
}

// Dataset is an ordered set of typed columns and rows.
// Each row has exactly len(Columns) cells; a cell is nil, int64, float64 or string
// according to its column's Type.
type Dataset struct {
	Columns []Column
	Rows    [][]any
}

// NumRows returns the number of data rows, excluding the header.
func (d *Dataset) NumRows() int {
	return len(d.Rows)
}

// NumColumns returns the number of columns.
func (d *Dataset) NumColumns() int {
	return len(d.Columns)
}

// ColumnNames returns column names in order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}
