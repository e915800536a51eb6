package coltab

// AnyColumn is the type-erased face of a Column.
// It hides the column's value type so that differently
// typed columns can be held together in one ordered list.
//
// The erasure is lossless: the dynamic type behind an
// AnyColumn is always *Column[T] for some T, so the
// original typed column can be recovered with a type
// assertion and Cell returns the values with their
// original dynamic type.
type AnyColumn interface {
	// Name returns the display label of the column.
	Name() string

	// Len returns the number of values in the column.
	Len() int

	// Cell returns the value at the passed row index,
	// or nil if row is out of bounds.
	Cell(row int) any
}

var _ AnyColumn = new(Column[int])

// Column is a named, single-typed sequence of values, one per row,
// in row order.
type Column[T any] struct {
	name   string
	values []T
}

// NewColumn returns a Column with the passed name and values.
// The values slice is used directly without copying.
func NewColumn[T any](name string, values []T) *Column[T] {
	return &Column[T]{name: name, values: values}
}

// Name returns the display label of the column.
func (c *Column[T]) Name() string { return c.name }

// Len returns the number of values in the column.
func (c *Column[T]) Len() int { return len(c.values) }

// Value returns the value at the passed row index.
// It panics if row is out of bounds, use Cell for
// bounds checked access.
func (c *Column[T]) Value(row int) T { return c.values[row] }

// Values returns the underlying values slice of the column
// without copying it. The caller must not modify it.
func (c *Column[T]) Values() []T { return c.values }

// Cell returns the value at the passed row index,
// or nil if row is out of bounds.
func (c *Column[T]) Cell(row int) any {
	if row < 0 || row >= len(c.values) {
		return nil
	}
	return c.values[row]
}
