package gecko

import (
	"errors"
	"fmt"
)

// ErrNoHandler is returned by Dispatcher.Dispatch when no registered
// handler's CanHandle claims the payload.
var ErrNoHandler = errors.New("gecko: no handler claims this payload")

// ParseError reports a malformed payload for a specific handler kind.
// Handlers return it from Handle rather than panicking; the dispatcher
// never inspects its fields, only logs them.
type ParseError struct {
	Kind   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("gecko: %s: %s", e.Kind, e.Reason)
}

func NewParseError(kind, reason string) *ParseError {
	return &ParseError{Kind: kind, Reason: reason}
}
