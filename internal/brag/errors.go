package brag

import (
	"errors"
	"fmt"
)

// ErrInsufficientHistory is returned when a current/last session query needs
// more dated sessions than the document holds.
var ErrInsufficientHistory = errors.New("insufficient session history")

// ParseError reports an unrecoverable problem on a specific input line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}
