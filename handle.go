package coltab

// ColumnHandle erases the field and output types of a ColumnDef
// so that arbitrarily typed column definitions over the same
// row type R can be collected in one ColumnList and invoked
// uniformly by Assemble.
type ColumnHandle[R any] interface {
	// ProduceColumn derives a type-erased column from the
	// passed rows with the exact semantics of the wrapped
	// definition's ProduceColumn, or returns nil if the
	// column is not included.
	ProduceColumn(rows []R) AnyColumn

	// ShouldInclude reports if the wrapped definition's
	// inclusion predicate accepts the passed row.
	// It never produces column data, so callers can probe
	// inclusion cheaply. Assemble does not use it, the
	// inclusion check is part of ProduceColumn.
	ShouldInclude(row R) bool
}

// NewHandle wraps a ColumnDef as a ColumnHandle.
func NewHandle[R, F, O any](def ColumnDef[R, F, O]) ColumnHandle[R] {
	return columnHandle[R, F, O]{def: def}
}

type columnHandle[R, F, O any] struct {
	def ColumnDef[R, F, O]
}

func (h columnHandle[R, F, O]) ProduceColumn(rows []R) AnyColumn {
	col := h.def.ProduceColumn(rows)
	if col == nil {
		// Don't wrap a typed nil in the interface
		return nil
	}
	return col
}

func (h columnHandle[R, F, O]) ShouldInclude(row R) bool {
	return h.def.Include(row)
}
