package coltab

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// FieldNaming controls the column names that StructColumns
// derives from struct fields.
//
// A nil *FieldNaming behaves like the zero value:
// every exported field becomes a column named after the field.
type FieldNaming struct {
	// Tag names the struct field tag whose value overrides
	// the column name. Everything from the first comma on
	// is ignored so tags like `col:"User,omitempty"` work.
	// An empty Tag disables tag lookup.
	Tag string
	// Ignore excludes fields whose resolved column name
	// equals this string.
	Ignore string
	// Untagged derives the column name from the field name
	// when no tag value applies, nil keeps the field name.
	Untagged func(fieldName string) (column string)
}

// DefaultFieldNaming uses "col" as column name tag,
// ignores "-" named fields, and derives the column name
// of untagged fields with SpacePascalCase.
var DefaultFieldNaming = FieldNaming{
	Tag:      "col",
	Ignore:   "-",
	Untagged: SpacePascalCase,
}

// FieldColumn resolves the column name for a struct field:
// tag value first, then Untagged, then the plain field name.
func (n *FieldNaming) FieldColumn(field reflect.StructField) string {
	if n == nil {
		return field.Name
	}
	if n.Tag != "" {
		if tag, ok := field.Tag.Lookup(n.Tag); ok {
			name, _, _ := strings.Cut(tag, ",")
			if name != "" {
				return name
			}
		}
	}
	if n.Untagged == nil {
		return field.Name
	}
	return n.Untagged(field.Name)
}

// StructColumns returns a ColumnList with one column per
// exported struct field of R, each producing the field
// values unchanged. Anonymously embedded structs are
// flattened into their inlined fields.
//
// Column names are derived from the field names with the
// passed naming, nil uses the plain field names. Fields
// whose name resolves to naming.Ignore are skipped.
//
// R must be a struct or pointer to struct type,
// else StructColumns panics.
//
// The returned handles read the fields via reflection and
// are always included, use ColumnHandle wrapping of
// explicit ColumnDefs where transforms or inclusion
// predicates are needed.
func StructColumns[R any](naming *FieldNaming) ColumnList[R] {
	rowType := reflect.TypeFor[R]()
	if rowType.Kind() == reflect.Pointer {
		rowType = rowType.Elem()
	}
	if rowType.Kind() != reflect.Struct {
		panic(fmt.Errorf("StructColumns: expected struct rows, got %s", reflect.TypeFor[R]()))
	}
	var list ColumnList[R]
	for _, field := range flatExportedFields(rowType, nil) {
		name := naming.FieldColumn(field)
		if naming != nil && naming.Ignore != "" && name == naming.Ignore {
			continue
		}
		list = append(list, structFieldHandle[R]{name: name, index: field.Index})
	}
	return list
}

// flatExportedFields returns the exported fields of a struct type
// including the inlined fields of any anonymously embedded structs,
// with Index holding the full index path relative to structType.
func flatExportedFields(structType reflect.Type, parentIndex []int) (fields []reflect.StructField) {
	for i := range structType.NumField() {
		field := structType.Field(i)
		index := append(append([]int(nil), parentIndex...), i)
		switch {
		case field.Anonymous && field.Type.Kind() == reflect.Struct:
			fields = append(fields, flatExportedFields(field.Type, index)...)
		case field.IsExported():
			field.Index = index
			fields = append(fields, field)
		}
	}
	return fields
}

// structFieldHandle produces one column from a struct field.
// It implements ColumnHandle without an underlying ColumnDef
// because the field type is only known at runtime.
type structFieldHandle[R any] struct {
	name  string
	index []int
}

func (h structFieldHandle[R]) ProduceColumn(rows []R) AnyColumn {
	if len(rows) == 0 {
		return nil
	}
	values := make([]any, len(rows))
	for i, row := range rows {
		v := reflect.ValueOf(row)
		if v.Kind() == reflect.Pointer {
			v = v.Elem()
		}
		values[i] = v.FieldByIndex(h.index).Interface()
	}
	return NewColumn(h.name, values)
}

func (structFieldHandle[R]) ShouldInclude(row R) bool { return true }

// SpacePascalCase turns a PascalCase or snake_case name
// into space separated words: a space is inserted where a
// word starts with an upper case character after a lower
// case one, and every underscore becomes a single space.
// Usable for FieldNaming.Untagged.
func SpacePascalCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	prevUpper := true
	prevSpace := true
	for _, r := range name {
		switch {
		case r == '_':
			if !prevSpace {
				b.WriteByte(' ')
			}
			prevUpper = false
			prevSpace = true
		case unicode.IsUpper(r):
			if !prevUpper && !prevSpace {
				b.WriteByte(' ')
			}
			b.WriteRune(r)
			prevUpper = true
			prevSpace = false
		default:
			b.WriteRune(r)
			prevUpper = false
			prevSpace = unicode.IsSpace(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// UseName returns a function that always returns
// the passed column name, usable for FieldNaming.Untagged
// to ignore all untagged fields together with
// a matching FieldNaming.Ignore value.
func UseName(column string) func(fieldName string) string {
	return func(string) string { return column }
}
