package codec

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedIdentifier = errors.New("malformed identifier")
	ErrMalformedDecimal    = errors.New("malformed decimal")
	ErrMalformedTimestamp  = errors.New("malformed timestamp")
	ErrMalformedDate       = errors.New("malformed date")
	ErrMalformedBool       = errors.New("malformed boolean")
)

// UnknownEnumVariantError reports text that does not match any variant of a
// closed enum set.
type UnknownEnumVariantError struct {
	Enum string
	Text string
}

func (e *UnknownEnumVariantError) Error() string {
	return fmt.Sprintf("unknown %s variant %q", e.Enum, e.Text)
}
