package order

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrExtraUnavailable = errors.New("extra is not available")
)
