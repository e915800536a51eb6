// Package csvtab writes assembled tables as CSV
// with support for various encodings, separators,
// and RFC 4180 compliant quoting.
package csvtab

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domonda/go-types/charset"
)

// Format describes the encoding and structural format of a CSV file.
//
// Format validation ensures compliance with common CSV standards:
//   - Encoding must be supported by the charset package
//   - Separator must be exactly one character
//   - Newline must be one of: "\n", "\r\n", or "\n\r"
type Format struct {
	// Encoding specifies the character encoding of the CSV data.
	// Common values: "UTF-8", "UTF-16LE", "ISO 8859-1", "Windows 1252"
	Encoding string `json:"encoding"`

	// Separator between the fields of a row.
	Separator string `json:"separator"`

	// Newline between the rows.
	Newline string `json:"newline"`
}

// NewFormat returns a Format with the passed separator,
// UTF-8 encoding, and "\r\n" newlines.
func NewFormat(separator string) *Format {
	return &Format{
		Encoding:  "UTF-8",
		Separator: separator,
		Newline:   "\r\n",
	}
}

// Validate returns an error in case of an invalid
// or unsupported Format field value.
func (f *Format) Validate() error {
	switch {
	case f == nil:
		return errors.New("nil csvtab.Format")
	case f.Encoding == "":
		return errors.New("missing csvtab.Format.Encoding")
	case len([]rune(f.Separator)) != 1:
		return fmt.Errorf("invalid csvtab.Format.Separator: %q", f.Separator)
	case f.Newline != "\n" && f.Newline != "\r\n" && f.Newline != "\n\r":
		return fmt.Errorf("invalid csvtab.Format.Newline: %q", f.Newline)
	}
	if f.Encoding != "UTF-8" {
		if _, err := charset.GetEncoding(f.Encoding); err != nil {
			return fmt.Errorf("unsupported csvtab.Format.Encoding: %w", err)
		}
	}
	return nil
}

// encoder returns nil if the format encoding is UTF-8,
// else the charset encoding to convert UTF-8 output with.
func (f *Format) encoder() (charset.Encoding, error) {
	if f.Encoding == "UTF-8" || strings.EqualFold(f.Encoding, "utf-8") {
		return nil, nil
	}
	return charset.GetEncoding(f.Encoding)
}
