package filter

import (
	"fmt"
	"strings"
)

// CompilationError reports an expression that cannot become a Filter.
// Column is the 1-based column expr reported, or 0 when unknown.
type CompilationError struct {
	Expression string
	Reason     string
	Column     int
	Err        error
}

func (e *CompilationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "filter %q does not compile", e.Expression)
	if e.Column > 0 {
		fmt.Fprintf(&b, " (column %d)", e.Column)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

// EvaluationError reports a listing element the filter could not be run
// against. Index is the element's position in the listing, or -1 when a
// single object was matched.
type EvaluationError struct {
	Expression string
	Index      int
	Reason     string
	Err        error
}

func (e *EvaluationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "filter %q", e.Expression)
	if e.Index >= 0 {
		fmt.Fprintf(&b, " on element %d", e.Index)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
