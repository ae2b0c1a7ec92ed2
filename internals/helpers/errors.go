// file: internals/helpers/errors.go
package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Service-layer sentinel errors. Controllers translate these into HTTP codes;
// services stay free of fiber imports for anything query-shaped.
var (
	ErrNotFound       = errors.New("entity not found")
	ErrDuplicate      = errors.New("duplicate entity")
	ErrInvalidSortKey = errors.New("invalid sort key")
)

// JsonServiceError maps a sentinel (or gorm.ErrRecordNotFound) to the standard
// error envelope. Unknown errors collapse to a generic 500; the message never
// leaks internals.
func JsonServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return JsonError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, ErrDuplicate):
		return JsonError(c, fiber.StatusBadRequest, "duplicate entry")
	case errors.Is(err, ErrInvalidSortKey):
		return JsonError(c, fiber.StatusBadRequest, "invalid sort key")
	default:
		if fe, ok := err.(*fiber.Error); ok {
			return JsonError(c, fe.Code, fe.Message)
		}
		return JsonError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

// ValidationErrorMap flattens validator.v10 errors into field → messages.
func ValidationErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	} else {
		out["_"] = []string{"invalid input"}
	}
	return out
}
