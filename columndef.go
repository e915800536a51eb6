package coltab

// ColumnDef describes how to derive one output column
// from a slice of row values of type R.
//
// A definition selects a field of type F from every row
// and transforms it into an output value of type O,
// either with a single transform function ("simple" mode)
// or with one of two transform functions chosen per row
// by a branch predicate ("conditional" mode).
// The two modes are mutually exclusive and fixed at
// construction, see NewColumnDef, NewFieldColumn,
// and NewConditionalColumnDef.
//
// An optional inclusion predicate gates whether the
// column is produced at all, see WithInclusion.
//
// ColumnDef is an immutable value type. The WithX methods
// return modified copies and never change the receiver,
// so definitions can be shared and reused freely.
type ColumnDef[R, F, O any] struct {
	name     string
	selector func(R) F

	// Exactly one of transform and branch is set.
	transform func(F) O
	branch    *condBranch[R, F, O]

	// nil means always include
	include func(R) bool
}

// condBranch holds the conditional mode of a ColumnDef.
// Keeping both transforms here instead of reusing
// ColumnDef.transform makes a half configured
// conditional column unrepresentable.
type condBranch[R, F, O any] struct {
	predicate func(R) bool
	then      func(F) O
	els       func(F) O
}

// NewColumnDef returns a simple mode ColumnDef that produces
// transform(selector(row)) for every row.
func NewColumnDef[R, F, O any](name string, selector func(R) F, transform func(F) O) ColumnDef[R, F, O] {
	return ColumnDef[R, F, O]{
		name:      name,
		selector:  selector,
		transform: transform,
	}
}

// NewFieldColumn returns a simple mode ColumnDef that produces
// the selected field value unchanged, equivalent to NewColumnDef
// with an identity transform.
func NewFieldColumn[R, F any](name string, selector func(R) F) ColumnDef[R, F, F] {
	return ColumnDef[R, F, F]{
		name:      name,
		selector:  selector,
		transform: func(raw F) F { return raw },
	}
}

// NewConditionalColumnDef returns a conditional mode ColumnDef.
// For every row the branch predicate decides which of the two
// transforms produces the output value:
// then(selector(row)) if predicate(row) is true,
// els(selector(row)) otherwise.
//
// The predicate is evaluated independently per row,
// it does not gate the column as a whole.
// Use WithInclusion for gating the whole column.
func NewConditionalColumnDef[R, F, O any](name string, selector func(R) F, predicate func(R) bool, then, els func(F) O) ColumnDef[R, F, O] {
	return ColumnDef[R, F, O]{
		name:     name,
		selector: selector,
		branch: &condBranch[R, F, O]{
			predicate: predicate,
			then:      then,
			els:       els,
		},
	}
}

// Name returns the display label of the column
// that the definition produces.
func (d ColumnDef[R, F, O]) Name() string { return d.name }

// Include reports if the definition's inclusion predicate
// accepts the passed row. A definition without inclusion
// predicate accepts every row.
func (d ColumnDef[R, F, O]) Include(row R) bool {
	return d.include == nil || d.include(row)
}

// ProduceColumn derives a Column from the passed rows,
// or returns nil if the column is not included:
// when rows is empty or when the inclusion predicate
// rejects the first row.
//
// The inclusion predicate only ever examines rows[0].
// This allows reusing one column definition across
// pre-grouped subsets of rows where every subset
// shares the gating field value, yielding different
// column sets per subset. It is not a per row filter:
// once included the column is produced for every row
// of the batch.
//
// ProduceColumn is pure. It does not modify rows and
// evaluates the selector, transform, and branch predicate
// exactly once per row on every call.
func (d ColumnDef[R, F, O]) ProduceColumn(rows []R) *Column[O] {
	if len(rows) == 0 || !d.Include(rows[0]) {
		return nil
	}
	values := make([]O, len(rows))
	for i, row := range rows {
		raw := d.selector(row)
		if d.branch != nil {
			if d.branch.predicate(row) {
				values[i] = d.branch.then(raw)
			} else {
				values[i] = d.branch.els(raw)
			}
		} else {
			values[i] = d.transform(raw)
		}
	}
	return NewColumn(d.name, values)
}

// WithInclusion returns a copy of the definition with its
// inclusion predicate replaced. The receiver is unchanged.
// Passing nil removes the predicate so the column is
// always included.
func (d ColumnDef[R, F, O]) WithInclusion(include func(R) bool) ColumnDef[R, F, O] {
	mod := d
	mod.include = include
	return mod
}

// WithInclusionNegated returns a copy of the definition
// with its inclusion predicate replaced by the boolean
// negation of the passed predicate.
// The receiver is unchanged.
func (d ColumnDef[R, F, O]) WithInclusionNegated(exclude func(R) bool) ColumnDef[R, F, O] {
	mod := d
	mod.include = func(row R) bool { return !exclude(row) }
	return mod
}
