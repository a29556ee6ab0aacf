// Package validate carries the construction-time validation error shared by
// the entity draft constructors.
package validate

import (
	"fmt"
	"strings"
)

// Error lists the fields a draft violated. It is returned before anything
// touches storage; a draft that fails validation is never persisted.
type Error struct {
	Fields []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

// Check returns an *Error naming every failed field, or nil when all pass.
// Each pair is a field name and whether that field is valid.
func Check(checks ...FieldCheck) error {
	var failed []string
	for _, c := range checks {
		if !c.OK {
			failed = append(failed, c.Field)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return &Error{Fields: failed}
}

type FieldCheck struct {
	Field string
	OK    bool
}
