package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// modelValidate is the validator instance for manifest entries.
var modelValidate *validator.Validate

func init() {
	modelValidate = validator.New()
	if err := modelValidate.RegisterValidation("puzzleid", validatePuzzleID); err != nil {
		panic(fmt.Sprintf("config: registering puzzleid validator: %v", err))
	}
}

func validatePuzzleID(fl validator.FieldLevel) bool {
	_, _, err := ParseID(fl.Field().String())
	return err == nil
}

// Validate checks every puzzle entry and reports all problems at once. An id
// may appear more than once, e.g. a day's sample next to its full input.
func (m *Model) Validate() error {
	var errs []string

	for i, p := range m.Puzzles {
		where := fmt.Sprintf("puzzle #%d (%s)", i+1, p.ID)
		if p.Source != "" {
			where += " in " + p.Source
		}

		if err := modelValidate.Struct(p); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				return err
			}
			for _, fe := range verrs {
				errs = append(errs, fmt.Sprintf("%s: %s", where, describe(fe)))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("manifest validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "puzzleid":
		return fmt.Sprintf("id %q must be YYYY/DD with a year from 2015 and a day from 1 to 25", fe.Value())
	case "required_without":
		return "one of input or text is required"
	case "excluded_with":
		return "input and text are mutually exclusive"
	}
	return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
}
