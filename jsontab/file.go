package jsontab

import (
	"bytes"
	"context"

	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-coltab"
)

// WriteFile writes the table as JSON to a file
// using the passed writer, or a default NewWriter()
// if writer is nil.
func WriteFile(ctx context.Context, file fs.File, table *coltab.Table, writer *Writer) error {
	if writer == nil {
		writer = NewWriter()
	}
	buf := bytes.NewBuffer(make([]byte, 0, 4096))
	err := writer.Write(ctx, buf, table)
	if err != nil {
		return err
	}
	return file.WriteAllContext(ctx, buf.Bytes())
}
