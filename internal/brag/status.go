package brag

import (
	"fmt"
	"strings"
)

// Status expresses how far along a checklist task is.
type Status uint8

const (
	// StatusIncomplete marks tasks that have not been started or finished.
	StatusIncomplete Status = iota
	// StatusDone marks tasks that are fully complete.
	StatusDone
	// StatusPartial marks tasks that were started but not finished.
	StatusPartial
)

// Symbol returns the single character written inside the checklist brackets.
func (s Status) Symbol() byte {
	switch s {
	case StatusDone:
		return 'X'
	case StatusPartial:
		return 'O'
	default:
		return ' '
	}
}

// Complete reports whether the task counts as finished. Partial work does not.
func (s Status) Complete() bool {
	return s == StatusDone
}

func (s Status) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusPartial:
		return "partial"
	default:
		return "incomplete"
	}
}

// parseStatus maps the bracket contents of a checklist line to a Status.
// Blank brackets mean incomplete; anything other than X or O is rejected so a
// typo cannot silently skew completion counts.
func parseStatus(token string) (Status, error) {
	switch strings.TrimSpace(token) {
	case "":
		return StatusIncomplete, nil
	case "X", "x":
		return StatusDone, nil
	case "O", "o":
		return StatusPartial, nil
	default:
		return StatusIncomplete, fmt.Errorf("invalid status symbol %q", token)
	}
}
