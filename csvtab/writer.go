package csvtab

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/domonda/go-coltab"
)

// Writer writes assembled tables as CSV.
//
// The zero configuration from NewWriter writes UTF-8
// with ';' separated fields and "\r\n" line endings.
// The WithX methods return modified copies so a
// configured Writer can be shared and reused:
//
//	w := csvtab.NewWriter().
//	    WithHeaderRow(true).
//	    WithFormat(csvtab.NewFormat(","))
//	err := w.Write(ctx, dest, table)
type Writer struct {
	format           *Format
	headerRow        bool
	quoteAllFields   bool
	quoteEmptyFields bool
	escapeQuotes     string
	nilValue         string
}

// NewWriter returns a Writer with ';' separated fields,
// "\r\n" line endings, UTF-8 encoding, and `""` quote escaping.
func NewWriter() *Writer {
	return &Writer{
		format:       NewFormat(";"),
		escapeQuotes: `""`,
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithFormat returns a Writer copy using the passed format
// for separator, newline, and output encoding.
func (w *Writer) WithFormat(format *Format) *Writer {
	mod := w.clone()
	mod.format = format
	return mod
}

// cloneFormat returns a Writer copy whose format is also
// a copy, so the per field format builders never modify
// a Format shared with other writers.
func (w *Writer) cloneFormat() *Writer {
	mod := w.clone()
	format := new(Format)
	if w.format != nil {
		*format = *w.format
	}
	mod.format = format
	return mod
}

// WithDelimiter returns a Writer copy using the passed
// field delimiter.
func (w *Writer) WithDelimiter(delimiter rune) *Writer {
	mod := w.cloneFormat()
	mod.format.Separator = string(delimiter)
	return mod
}

// WithNewLine returns a Writer copy using the passed
// newline between rows.
func (w *Writer) WithNewLine(newLine string) *Writer {
	mod := w.cloneFormat()
	mod.format.Newline = newLine
	return mod
}

// WithEncoding returns a Writer copy using the passed
// output encoding, see Format.Encoding for values.
func (w *Writer) WithEncoding(encoding string) *Writer {
	mod := w.cloneFormat()
	mod.format.Encoding = encoding
	return mod
}

// WithHeaderRow returns a Writer copy that writes the
// column names as first row if headerRow is true.
func (w *Writer) WithHeaderRow(headerRow bool) *Writer {
	mod := w.clone()
	mod.headerRow = headerRow
	return mod
}

// WithQuoteAllFields returns a Writer copy that quotes
// every field if quoteAllFields is true.
func (w *Writer) WithQuoteAllFields(quoteAllFields bool) *Writer {
	mod := w.clone()
	mod.quoteAllFields = quoteAllFields
	return mod
}

// WithQuoteEmptyFields returns a Writer copy that writes
// empty fields as `""` if quoteEmptyFields is true.
func (w *Writer) WithQuoteEmptyFields(quoteEmptyFields bool) *Writer {
	mod := w.clone()
	mod.quoteEmptyFields = quoteEmptyFields
	return mod
}

// WithNilValue returns a Writer copy that writes nilValue
// for nil cells.
func (w *Writer) WithNilValue(nilValue string) *Writer {
	mod := w.clone()
	mod.nilValue = nilValue
	return mod
}

// WithEscapeQuotes returns a Writer copy that replaces
// '"' within fields with escapeQuotes.
func (w *Writer) WithEscapeQuotes(escapeQuotes string) *Writer {
	mod := w.clone()
	mod.escapeQuotes = escapeQuotes
	return mod
}

// Format returns the format of the Writer.
func (w *Writer) Format() *Format { return w.format }

// HeaderRow returns if the Writer writes a header row.
func (w *Writer) HeaderRow() bool { return w.headerRow }

// NilValue returns the string written for nil cells.
func (w *Writer) NilValue() string { return w.nilValue }

// Write writes the table as CSV to dest.
//
// Rows are written in table order, one line per row,
// preceded by a header row with the column names if
// configured with WithHeaderRow. Output is encoded
// per the writer's format, non-UTF-8 encodings are
// converted row by row.
//
// Write checks ctx once per row and returns its error
// when canceled.
func (w *Writer) Write(ctx context.Context, dest io.Writer, table *coltab.Table) error {
	err := w.format.Validate()
	if err != nil {
		return err
	}
	encoder, err := w.format.encoder()
	if err != nil {
		return err
	}
	separator := []rune(w.format.Separator)[0]

	writeRow := func(fields []string) error {
		rowBuf := bytes.NewBuffer(make([]byte, 0, 256))
		for col, field := range fields {
			if col > 0 {
				rowBuf.WriteRune(separator)
			}
			rowBuf.WriteString(field)
		}
		rowBuf.WriteString(w.format.Newline)
		row := rowBuf.Bytes()
		if encoder != nil {
			encoded, err := encoder.Encode(row)
			if err != nil {
				return fmt.Errorf("encoding CSV row as %s: %w", w.format.Encoding, err)
			}
			row = encoded
		}
		_, err := dest.Write(row)
		return err
	}

	if w.headerRow {
		if err := ctx.Err(); err != nil {
			return err
		}
		columns := table.Columns()
		fields := make([]string, len(columns))
		for col, name := range columns {
			fields[col] = w.escapeField(name, separator)
		}
		if err := writeRow(fields); err != nil {
			return err
		}
	}
	numCols := table.NumCols()
	for row, numRows := 0, table.NumRows(); row < numRows; row++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		fields := make([]string, numCols)
		for col := range fields {
			fields[col] = w.escapeField(w.cellString(table, row, col), separator)
		}
		if err := writeRow(fields); err != nil {
			return err
		}
	}
	return nil
}

// String returns the table formatted as CSV string,
// ignoring the format encoding.
func (w *Writer) String(table *coltab.Table) (string, error) {
	utf8 := w.WithFormat(&Format{
		Encoding:  "UTF-8",
		Separator: w.format.Separator,
		Newline:   w.format.Newline,
	})
	var b strings.Builder
	err := utf8.Write(context.Background(), &b, table)
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func (w *Writer) cellString(table *coltab.Table, row, col int) string {
	value := table.Cell(row, col)
	if isNilCell(value) {
		return w.nilValue
	}
	if str, ok := value.(string); ok {
		return str
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return fmt.Sprint(v.Interface())
}

// isNilCell reports if a cell value is nil
// or a nil pointer, map, slice, or similar
// wrapped in a non-nil interface.
func isNilCell(value any) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice,
		reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func (w *Writer) escapeField(str string, separator rune) string {
	// Remove all \r, \n alone is valid within quotes
	str = strings.ReplaceAll(str, "\r", "")
	switch {
	case w.quoteAllFields || strings.ContainsRune(str, separator) || strings.ContainsRune(str, '\n'):
		return `"` + strings.ReplaceAll(str, `"`, w.escapeQuotes) + `"`
	case w.quoteEmptyFields && str == "":
		return `""`
	}
	return strings.ReplaceAll(str, `"`, w.escapeQuotes)
}
