package coltab

// Assemble produces a column-oriented Table from the passed
// rows and the declarative column list:
//
//  1. Nil list entries (statically skipped columns) are discarded.
//  2. ProduceColumn is called per remaining handle with all rows.
//  3. Handles that returned nil (empty rows or rejected
//     inclusion predicate) are discarded.
//  4. The surviving columns form the table, preserving their
//     relative order from the list.
//
// Zero surviving columns yield a valid empty table.
// Assemble performs no row filtering, sorting, or deduplication:
// row order and alignment are exactly as supplied, and every
// surviving column covers every row.
//
// Assemble is a pure single pass transformation. It does not
// modify rows and holds no state across calls. Panics from
// selector, transform, or predicate functions are not recovered
// and abort the whole call.
func Assemble[R any](rows []R, list ColumnList[R]) *Table {
	list = list.compact()
	columns := make([]AnyColumn, 0, len(list))
	for _, handle := range list {
		if col := handle.ProduceColumn(rows); col != nil {
			columns = append(columns, col)
		}
	}
	return NewTable("", columns...)
}

// AssembleWith evaluates build to obtain the column list,
// then assembles it like Assemble. It behaves identically
// to calling Assemble with the result of build.
func AssembleWith[R any](rows []R, build func() ColumnList[R]) *Table {
	return Assemble(rows, build())
}
