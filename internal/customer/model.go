package customer

import (
	"strings"

	"coffeeshop-be/internal/codec"
	"coffeeshop-be/internal/validate"

	"github.com/google/uuid"
)

// Customer is the persisted shape. Identifier and timestamps are stamped by
// the repository; callers never supply them.
type Customer struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt codec.DateTime
	UpdatedAt codec.DateTime
	DeletedAt codec.NullDateTime
}

// Deleted reports whether the customer has been soft-deleted.
func (c *Customer) Deleted() bool { return c.DeletedAt.Valid }

// Draft holds the caller-supplied fields of a customer that has not been
// persisted yet. Build one through NewDraft so the fields are validated.
type Draft struct {
	Name  string
	Email string
}

func NewDraft(name, email string) (Draft, error) {
	if err := validate.Check(
		validate.FieldCheck{Field: "name", OK: strings.TrimSpace(name) != ""},
		validate.FieldCheck{Field: "email", OK: validEmail(email)},
	); err != nil {
		return Draft{}, err
	}
	return Draft{Name: name, Email: email}, nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

// UpdateParams is a partial update; nil fields keep their stored value.
type UpdateParams struct {
	Name  *string
	Email *string
}
