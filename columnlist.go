package coltab

// ColumnList is an ordered sequence of column handles
// where entries may be nil.
//
// A nil entry represents a column that was skipped when
// the list was composed, as opposed to a column whose
// inclusion predicate rejects the rows at assembly time.
// Nil entries are discarded by Assemble, the order of the
// remaining handles is preserved into the column order of
// the assembled table.
//
// The Add methods append and return the extended list
// for fluent chaining:
//
//	list := coltab.NewColumnList(
//	        coltab.NewHandle(nameCol),
//	    ).
//	    AddIf(withAge, coltab.NewHandle(ageCol)).
//	    AddList(auditColumns)
type ColumnList[R any] []ColumnHandle[R]

// NewColumnList returns a ColumnList of the passed handles.
func NewColumnList[R any](handles ...ColumnHandle[R]) ColumnList[R] {
	return ColumnList[R](handles)
}

// Add appends a handle to the list.
func (l ColumnList[R]) Add(handle ColumnHandle[R]) ColumnList[R] {
	return append(l, handle)
}

// AddIf appends a handle to the list if cond is true,
// else it appends a nil entry so the static skip stays
// visible in the list until assembly.
func (l ColumnList[R]) AddIf(cond bool, handle ColumnHandle[R]) ColumnList[R] {
	if !cond {
		handle = nil
	}
	return append(l, handle)
}

// AddList appends all entries of another list,
// including nil entries.
func (l ColumnList[R]) AddList(other ColumnList[R]) ColumnList[R] {
	return append(l, other...)
}

// AddDef appends a handle for the passed definition to the list.
// It is a free function because Go methods can't introduce the
// field and output type parameters of the definition.
func AddDef[R, F, O any](l ColumnList[R], def ColumnDef[R, F, O]) ColumnList[R] {
	return append(l, NewHandle(def))
}

// compact returns the list without nil entries,
// preserving the order of the remaining handles.
// If the list has no nil entries it is returned as is.
func (l ColumnList[R]) compact() ColumnList[R] {
	numNil := 0
	for _, handle := range l {
		if handle == nil {
			numNil++
		}
	}
	if numNil == 0 {
		return l
	}
	result := make(ColumnList[R], 0, len(l)-numNil)
	for _, handle := range l {
		if handle != nil {
			result = append(result, handle)
		}
	}
	return result
}
