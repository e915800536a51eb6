// Package jsontab writes assembled tables as JSON,
// either as an array of row objects or as an object
// of column arrays.
package jsontab

import (
	"bytes"
	"context"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/domonda/go-coltab"
)

// Layout selects the JSON structure of a written table.
type Layout int

const (
	// RowObjects writes the table as array of objects,
	// one object per row with the column names as keys:
	//
	//	[{"name":"John","age":20},{"name":"Jane","age":21}]
	RowObjects Layout = iota

	// ColumnArrays writes the table as one object with
	// the column names as keys and the column values
	// as arrays:
	//
	//	{"name":["John","Jane"],"age":[20,21]}
	ColumnArrays
)

// String implements the fmt.Stringer interface for Layout.
func (l Layout) String() string {
	switch l {
	case RowObjects:
		return "RowObjects"
	case ColumnArrays:
		return "ColumnArrays"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Writer writes assembled tables as JSON.
//
// Keys are written in table column order, which standard
// object marshalling of a Go map would not preserve.
// Cell values are marshalled individually, nil cells
// become JSON null.
//
// The WithX methods return modified copies so a
// configured Writer can be shared and reused.
type Writer struct {
	layout Layout
	indent string
}

// NewWriter returns a Writer using the RowObjects layout
// and compact output.
func NewWriter() *Writer {
	return &Writer{layout: RowObjects}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithLayout returns a Writer copy using the passed layout.
func (w *Writer) WithLayout(layout Layout) *Writer {
	mod := w.clone()
	mod.layout = layout
	return mod
}

// WithIndent returns a Writer copy that writes every
// JSON element on its own line, indented per nesting
// level with the passed indent string.
// An empty indent restores compact output.
func (w *Writer) WithIndent(indent string) *Writer {
	mod := w.clone()
	mod.indent = indent
	return mod
}

// Layout returns the layout of the Writer.
func (w *Writer) Layout() Layout { return w.layout }

// Indent returns the indent string of the Writer,
// which is empty for compact output.
func (w *Writer) Indent() string { return w.indent }

// Write writes the table as JSON to dest.
// It checks ctx once per row and returns its error
// when canceled.
func (w *Writer) Write(ctx context.Context, dest io.Writer, table *coltab.Table) error {
	buf := bytes.NewBuffer(make([]byte, 0, 1024))
	var err error
	switch w.layout {
	case RowObjects:
		err = writeRowObjects(ctx, buf, table)
	case ColumnArrays:
		err = writeColumnArrays(ctx, buf, table)
	default:
		return fmt.Errorf("invalid jsontab.Layout: %d", int(w.layout))
	}
	if err != nil {
		return err
	}
	if w.indent != "" {
		indented := bytes.NewBuffer(make([]byte, 0, buf.Len()*2))
		err = json.Indent(indented, buf.Bytes(), "", w.indent)
		if err != nil {
			return err
		}
		buf = indented
	}
	_, err = dest.Write(buf.Bytes())
	return err
}

// String returns the table formatted as JSON string.
func (w *Writer) String(table *coltab.Table) (string, error) {
	var b bytes.Buffer
	err := w.Write(context.Background(), &b, table)
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeRowObjects(ctx context.Context, buf *bytes.Buffer, table *coltab.Table) error {
	keys, err := marshalColumnNames(table)
	if err != nil {
		return err
	}
	buf.WriteByte('[')
	for row, numRows := 0, table.NumRows(); row < numRows; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if row > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for col := range keys {
			if col > 0 {
				buf.WriteByte(',')
			}
			buf.Write(keys[col])
			buf.WriteByte(':')
			if err := marshalCell(buf, table, row, col); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return nil
}

func writeColumnArrays(ctx context.Context, buf *bytes.Buffer, table *coltab.Table) error {
	keys, err := marshalColumnNames(table)
	if err != nil {
		return err
	}
	buf.WriteByte('{')
	for col := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		if col > 0 {
			buf.WriteByte(',')
		}
		buf.Write(keys[col])
		buf.WriteByte(':')
		values := make([]any, table.NumRows())
		for row := range values {
			values[row] = table.Cell(row, col)
		}
		encoded, err := json.Marshal(values)
		if err != nil {
			return fmt.Errorf("marshalling column %s: %w", table.Columns()[col], err)
		}
		buf.Write(encoded)
	}
	buf.WriteByte('}')
	return nil
}

func marshalColumnNames(table *coltab.Table) ([][]byte, error) {
	columns := table.Columns()
	keys := make([][]byte, len(columns))
	for col, name := range columns {
		encoded, err := json.Marshal(name)
		if err != nil {
			return nil, fmt.Errorf("marshalling column name %q: %w", name, err)
		}
		keys[col] = encoded
	}
	return keys, nil
}

func marshalCell(buf *bytes.Buffer, table *coltab.Table, row, col int) error {
	encoded, err := json.Marshal(table.Cell(row, col))
	if err != nil {
		return fmt.Errorf("marshalling cell (%d,%d): %w", row, col, err)
	}
	buf.Write(encoded)
	return nil
}
