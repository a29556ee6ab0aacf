package customer

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmailTaken       = errors.New("email already in use")
)
