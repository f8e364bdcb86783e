// Package gqlerrors implements the single error kind this module ever
// raises: a syntax error pinned to a byte offset in a source.Source, with a
// preformatted, human-readable message carrying a source excerpt and a caret
// pointing at the offending offset.
package gqlerrors

import (
	"fmt"
	"strings"

	"github.com/tonyteate/gqlcore/pkg/source"
)

// Error is the sole error kind the parser emits. It is always constructed by
// Syntax; callers inspect it via the accessor methods rather than its
// (unexported) fields.
type Error struct {
	message string
	src     *source.Source
	offset  int
	line    int
	column  int
}

// Syntax constructs a syntax error pinned to offset (a byte offset into
// src.Body) with the given description. It does not raise anything - Go has
// no exceptions - it is the caller's job to return the *Error up the call
// chain as soon as it is constructed, which is exactly what every grammar
// production in pkg/parser does.
func Syntax(src *source.Source, offset int, message string) *Error {
	line, column := lineAndColumn(src, offset)
	return &Error{
		message: message,
		src:     src,
		offset:  offset,
		line:    line,
		column:  column,
	}
}

func lineAndColumn(src *source.Source, offset int) (line, column int) {
	line = src.LocationOffset.Line
	column = src.LocationOffset.Column
	if offset > len(src.Body) {
		offset = len(src.Body)
	}
	for i := 0; i < offset; i++ {
		if src.Body[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// Message returns the raw, single-line description passed to Syntax, without
// the source excerpt or caret.
func (e *Error) Message() string { return e.message }

// Offset returns the byte offset into the source the error is pinned to.
func (e *Error) Offset() int { return e.offset }

// Line returns the 1-based line number the error occurred on.
func (e *Error) Line() int { return e.line }

// Column returns the 1-based column number the error occurred on.
func (e *Error) Column() int { return e.column }

// SourceName returns the name of the source.Source the error was raised
// against, for attributing errors to a specific file in multi-file tooling.
func (e *Error) SourceName() string {
	if e.src == nil {
		return ""
	}
	return e.src.Name
}

// Error implements the error interface, returning a multi-line message: the
// raw description, a "name:line:column" locator, and a source excerpt with a
// caret under the offending column.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Syntax Error: %s", e.message)
	if e.src != nil {
		fmt.Fprintf(&b, "\n\n%s", printSourceLocation(e.src, e.line, e.column))
	}
	return b.String()
}

// printSourceLocation renders the standard GraphQL-style excerpt: the
// location header, the offending line with a 1-based gutter, and a caret
// line pointing at column.
func printSourceLocation(src *source.Source, line, column int) string {
	lines := strings.Split(src.Body, "\n")
	lineIndex := line - src.LocationOffset.Line
	if lineIndex < 0 || lineIndex >= len(lines) {
		return fmt.Sprintf("%s:%d:%d", src.Name, line, column)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d:%d\n", src.Name, line, column)

	lineNumber := fmt.Sprintf("%d", line)
	padding := strings.Repeat(" ", len(lineNumber))

	fmt.Fprintf(&b, "%s |\n", padding)
	fmt.Fprintf(&b, "%s | %s\n", lineNumber, lines[lineIndex])
	fmt.Fprintf(&b, "%s | %s^\n", padding, strings.Repeat(" ", column-1))

	return b.String()
}
