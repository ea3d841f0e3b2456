package scenario

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nikmy/freeslots/pkg/errors"
)

var ErrInvalidScenario = errors.New("invalid scenario")

var validate = validator.New()

// Validate checks the shape of s. Time strings themselves are checked
// later, when converting to intervals.
func Validate(s Scenario) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return errors.WrapFail(err, "validate scenario")
	}

	problems := make([]string, 0, len(fields))
	for _, f := range fields {
		problems = append(problems, describe(f))
	}
	sort.Strings(problems)

	return errors.Wrap(ErrInvalidScenario, strings.Join(problems, "; "))
}

func describe(f validator.FieldError) string {
	field := strings.TrimPrefix(f.Namespace(), "Scenario.")

	switch f.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, f.Param())
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, f.Param())
	case "len":
		return fmt.Sprintf("%s must have exactly %s entries", field, f.Param())
	default:
		return field + " is invalid"
	}
}
