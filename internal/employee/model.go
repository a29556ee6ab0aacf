package employee

import (
	"strings"

	"coffeeshop-be/internal/codec"
	"coffeeshop-be/internal/validate"

	"github.com/google/uuid"
)

type Employee struct {
	ID        uuid.UUID
	Name      string
	Email     string
	BirthDate codec.Date
	CreatedAt codec.DateTime
	UpdatedAt codec.DateTime
	DeletedAt codec.NullDateTime
}

func (e *Employee) Deleted() bool { return e.DeletedAt.Valid }

// Draft is the not-yet-persisted shape; NewDraft validates the business
// fields before the repository stamps identity and timestamps.
type Draft struct {
	Name      string
	Email     string
	BirthDate codec.Date
}

func NewDraft(name, email string, birthDate codec.Date) (Draft, error) {
	if err := validate.Check(
		validate.FieldCheck{Field: "name", OK: strings.TrimSpace(name) != ""},
		validate.FieldCheck{Field: "email", OK: validEmail(email)},
		validate.FieldCheck{Field: "birth_date", OK: !birthDate.IsZero()},
	); err != nil {
		return Draft{}, err
	}
	return Draft{Name: name, Email: email, BirthDate: birthDate}, nil
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

type UpdateParams struct {
	Name  *string
	Email *string
}
