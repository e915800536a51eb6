package coltab

// Table is an ordered collection of type-erased columns
// sharing the same row count and row alignment: row i of
// every column corresponds to the same source row value.
//
// A Table is created by Assemble and never modified
// afterwards, WithTitle returns a titled copy.
// A Table without columns is valid and has zero rows.
type Table struct {
	title   string
	columns []AnyColumn
}

// NewTable returns a Table of the passed columns.
// The columns slice is used directly without copying.
//
// All columns are expected to have the same length,
// NumRows reports the length of the first column.
func NewTable(title string, columns ...AnyColumn) *Table {
	return &Table{title: title, columns: columns}
}

// Title returns the title of the table,
// which may be an empty string.
func (t *Table) Title() string { return t.title }

// WithTitle returns a copy of the table with the passed
// title. The receiver is unchanged.
func (t *Table) WithTitle(title string) *Table {
	return &Table{title: title, columns: t.columns}
}

// NumCols returns the number of columns of the table.
func (t *Table) NumCols() int { return len(t.columns) }

// NumRows returns the number of rows of the table,
// which is zero for a table without columns.
func (t *Table) NumRows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

// Columns returns the column names in column order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name()
	}
	return names
}

// Column returns the column at the passed index,
// or nil if index is out of bounds.
func (t *Table) Column(index int) AnyColumn {
	if index < 0 || index >= len(t.columns) {
		return nil
	}
	return t.columns[index]
}

// ColumnByName returns the first column with the passed
// name, or nil if the table has no such column.
// Column names are not guaranteed to be unique.
func (t *Table) ColumnByName(name string) AnyColumn {
	for _, col := range t.columns {
		if col.Name() == name {
			return col
		}
	}
	return nil
}

// Cell returns the value at the passed row and column
// indices, or nil if row or col are out of bounds.
func (t *Table) Cell(row, col int) any {
	if col < 0 || col >= len(t.columns) {
		return nil
	}
	return t.columns[col].Cell(row)
}

// Row returns the values of the row at the passed index
// in column order, or nil if row is out of bounds.
func (t *Table) Row(row int) []any {
	if row < 0 || row >= t.NumRows() {
		return nil
	}
	values := make([]any, len(t.columns))
	for col := range t.columns {
		values[col] = t.columns[col].Cell(row)
	}
	return values
}
