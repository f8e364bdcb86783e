// Package source holds the immutable input bundle the lexer and parser read
// from, and the error-reporting machinery derives line/column numbers against.
package source

import "fmt"

// LocationOffset is the logical starting position of a Source's body, used to
// translate byte offsets into line/column pairs when the body is itself an
// excerpt embedded in a larger document (e.g. a GraphQL block inside a larger
// file format).
type LocationOffset struct {
	Line   int
	Column int
}

// DefaultLocationOffset is the offset assumed when a Source does not specify
// one explicitly.
var DefaultLocationOffset = LocationOffset{Line: 1, Column: 1}

// DefaultName is the human-readable Source name used when one isn't given.
const DefaultName = "GraphQL"

// Source is an immutable bundle of input text plus the metadata needed to
// report errors against it. A Source never mutates once constructed; the
// lexer and parser only ever read Body.
type Source struct {
	Body           string
	Name           string
	LocationOffset LocationOffset
}

// New wraps body in a Source using the default name and location offset.
func New(body string) *Source {
	return &Source{
		Body:           body,
		Name:           DefaultName,
		LocationOffset: DefaultLocationOffset,
	}
}

// NewWithName wraps body in a Source carrying a caller-supplied name, useful
// for pointing error messages at a specific file.
func NewWithName(body, name string) *Source {
	return &Source{
		Body:           body,
		Name:           name,
		LocationOffset: DefaultLocationOffset,
	}
}

// Normalize fills in defaults for zero-valued fields so callers can construct
// a Source with a struct literal and only the fields they care about.
func (s *Source) Normalize() {
	if s.Name == "" {
		s.Name = DefaultName
	}
	if s.LocationOffset.Line == 0 {
		s.LocationOffset.Line = DefaultLocationOffset.Line
	}
	if s.LocationOffset.Column == 0 {
		s.LocationOffset.Column = DefaultLocationOffset.Column
	}
}

func (s *Source) String() string {
	return fmt.Sprintf("%s (%d bytes)", s.Name, len(s.Body))
}
