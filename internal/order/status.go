package order

import (
	"database/sql/driver"
	"fmt"

	"coffeeshop-be/internal/codec"
)

// Status is the lifecycle state of an order. It is stored as its lowercase
// text form.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// next holds the forward edge of the lifecycle. Cancellation is handled
// separately in CanTransitionTo.
var next = map[Status]Status{
	StatusPending:   StatusPaid,
	StatusPaid:      StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusCompleted,
}

// ParseStatus matches the exact lowercase form; anything else fails with
// *codec.UnknownEnumVariantError.
func ParseStatus(text string) (Status, error) {
	switch s := Status(text); s {
	case StatusPending, StatusPaid, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return s, nil
	}
	return "", &codec.UnknownEnumVariantError{Enum: "order status", Text: text}
}

func (s Status) String() string { return string(s) }

// Terminal reports whether the order admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether moving to the given status is allowed:
// one step forward along the lifecycle, or cancellation from any
// non-terminal state.
func (s Status) CanTransitionTo(to Status) bool {
	if s.Terminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	return next[s] == to
}

func (s Status) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *Status) Scan(src any) error {
	var text string
	switch v := src.(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return &codec.UnknownEnumVariantError{Enum: "order status", Text: fmt.Sprintf("%v", src)}
	}

	parsed, err := ParseStatus(text)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// TransitionError reports a disallowed status move. The stored status is
// left untouched when this is returned.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}
