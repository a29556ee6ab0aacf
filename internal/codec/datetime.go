package codec

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// The storage layer has no temporal column type and no timezone concept, so
// timestamps are naive wall-clock text. The layouts are exact: no offset, no
// fractional seconds.
const (
	dateTimeLayout = "2006-01-02 15:04:05"
	dateLayout     = "2006-01-02"
)

// DateTime is a timezone-naive date and time, stored as
// "YYYY-MM-DD HH:MM:SS".
type DateTime struct {
	t time.Time
}

// Now returns the current wall-clock time truncated to whole seconds, which
// is the precision the stored form can represent.
func Now() DateTime {
	return DateTime{t: time.Now().UTC().Truncate(time.Second)}
}

// NewDateTime truncates t to whole seconds and drops its location.
func NewDateTime(t time.Time) DateTime {
	naive := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	return DateTime{t: naive}
}

// ParseDateTime decodes the exact stored layout.
func ParseDateTime(s string) (DateTime, error) {
	t, err := time.Parse(dateTimeLayout, s)
	if err != nil {
		return DateTime{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
	}
	return DateTime{t: t}, nil
}

func (d DateTime) Time() time.Time          { return d.t }
func (d DateTime) Equal(other DateTime) bool { return d.t.Equal(other.t) }
func (d DateTime) Before(other DateTime) bool { return d.t.Before(other.t) }
func (d DateTime) After(other DateTime) bool  { return d.t.After(other.t) }
func (d DateTime) IsZero() bool               { return d.t.IsZero() }

func (d DateTime) String() string { return d.t.Format(dateTimeLayout) }

// Value implements driver.Valuer.
func (d DateTime) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner.
func (d *DateTime) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrMalformedTimestamp, src)
	}

	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// NullDateTime is a DateTime that may be absent, used for nullable columns
// such as deleted_at.
type NullDateTime struct {
	DateTime DateTime
	Valid    bool
}

// Value implements driver.Valuer.
func (n NullDateTime) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.DateTime.Value()
}

// Scan implements sql.Scanner.
func (n *NullDateTime) Scan(src any) error {
	if src == nil {
		n.DateTime, n.Valid = DateTime{}, false
		return nil
	}
	if err := n.DateTime.Scan(src); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Date is a timezone-naive calendar date, stored as "YYYY-MM-DD".
type Date struct {
	t time.Time
}

// NewDate builds a date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate decodes the exact stored layout.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return Date{t: t}, nil
}

func (d Date) Time() time.Time       { return d.t }
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }
func (d Date) IsZero() bool          { return d.t.IsZero() }

func (d Date) String() string { return d.t.Format(dateLayout) }

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrMalformedDate, src)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
