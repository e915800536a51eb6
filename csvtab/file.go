package csvtab

import (
	"bytes"
	"context"

	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-coltab"
)

// WriteFile writes the table as CSV to a file
// using the passed writer, or a default NewWriter()
// with header row if writer is nil.
func WriteFile(ctx context.Context, file fs.File, table *coltab.Table, writer *Writer) error {
	if writer == nil {
		writer = NewWriter().WithHeaderRow(true)
	}
	buf := bytes.NewBuffer(make([]byte, 0, 4096))
	err := writer.Write(ctx, buf, table)
	if err != nil {
		return err
	}
	return file.WriteAllContext(ctx, buf.Bytes())
}
