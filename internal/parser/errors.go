package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedHeader means the hand header line is missing or unreadable.
	ErrMalformedHeader = errors.New("malformed hand header")
	// ErrMalformedTableLine means the table/button line is missing or unreadable.
	ErrMalformedTableLine = errors.New("malformed table line")
	// ErrInvalidPlayerCount means fewer than 2 or more than 9 players were dealt in.
	ErrInvalidPlayerCount = errors.New("invalid active player count")
	// ErrDuplicatePlayer means a name appears on more than one seat line.
	ErrDuplicatePlayer = errors.New("duplicate player")
	// ErrUnknownPlayer is reported for an action line naming a player who is
	// not seated. The action is skipped; it never fails the hand.
	ErrUnknownPlayer = errors.New("unknown player reference")
)

// HandError records why one block of a batch failed to parse.
type HandError struct {
	Index  int    // 1-based position of the block in the batch
	HandID string // empty when the header could not be read
	Err    error
}

func (e HandError) Error() string {
	if e.HandID != "" {
		return fmt.Sprintf("hand %d (#%s): %v", e.Index, e.HandID, e.Err)
	}
	return fmt.Sprintf("hand %d: %v", e.Index, e.Err)
}

func (e HandError) Unwrap() error {
	return e.Err
}
