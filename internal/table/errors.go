package table

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from the input header
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required column(s): %s", strings.Join(e.Missing, ", "))
}

// ParseError reports a cell that could not be read as a number.
// Row is the 1-based line of the table, the header being line 1.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d, column %s: invalid number %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
