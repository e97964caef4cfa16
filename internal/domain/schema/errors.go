package schema

import (
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// ErrMalformedInput marks input that cannot be normalized.
var ErrMalformedInput = crerr.New("malformed input")

// MalformedInputError reports which column (and row, when known) broke normalization.
// Row is 1-based over data rows; 0 means the problem is in the header.
type MalformedInputError struct {
	Columns []string
	Row     int
	Reason  string
	Err     error
}

func (e *MalformedInputError) Error() string {
	var b strings.Builder
	b.WriteString("malformed input")
	if len(e.Columns) > 0 {
		fmt.Fprintf(&b, ": column %s", strings.Join(e.Columns, ", "))
	}
	if e.Row > 0 {
		fmt.Fprintf(&b, " row %d", e.Row)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *MalformedInputError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedInput}
	}
	return []error{ErrMalformedInput, e.Err}
}
