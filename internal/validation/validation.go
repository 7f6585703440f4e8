// Package validation holds the pure field-presence and content rules for
// request bodies. Nothing here touches storage.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error marks a request body as malformed. Handlers map it to 400.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

var validate = validator.New()

// missingProperties reports every absent required field at once, in schema
// declaration order.
func missingProperties(fields []string) *Error {
	return errorf("body must have required properties: %s", strings.Join(fields, ", "))
}

func validEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
