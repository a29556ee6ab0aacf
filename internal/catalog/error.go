package catalog

import "errors"

var (
	ErrDrinkNotFound = errors.New("drink not found")
	ErrExtraNotFound = errors.New("extra not found")
)
