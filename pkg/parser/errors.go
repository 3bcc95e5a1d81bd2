package parser

import "fmt"

// ParseError represents a parsing error with the byte offset where the
// parser stopped and a message stating what it expected.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Message)
}
