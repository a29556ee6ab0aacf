package codec

import (
	"database/sql/driver"
	"fmt"
)

// Bool is stored as integer 1/0 since the storage layer has no boolean
// column type.
type Bool bool

// Value implements driver.Valuer.
func (b Bool) Value() (driver.Value, error) {
	if b {
		return int64(1), nil
	}
	return int64(0), nil
}

// Scan implements sql.Scanner. Drivers hand integer columns back either as
// int64 or as their textual form.
func (b *Bool) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case int64:
		switch v {
		case 0:
			*b = false
			return nil
		case 1:
			*b = true
			return nil
		}
		return fmt.Errorf("%w: %d", ErrMalformedBool, v)
	case bool:
		*b = Bool(v)
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrMalformedBool, src)
	}

	switch s {
	case "0":
		*b = false
	case "1":
		*b = true
	default:
		return fmt.Errorf("%w: %q", ErrMalformedBool, s)
	}
	return nil
}
