// Package validation wraps go-playground/validator so that every rule
// violation on a struct is reported, in field declaration order, as a
// field name plus a machine-readable reason code.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

type Reason string

const (
	ReasonRequired      Reason = "required"
	ReasonInvalidFormat Reason = "invalid_format"
	ReasonInvalidOption Reason = "invalid_option"
	ReasonTooShort      Reason = "too_short"
	ReasonTooLong       Reason = "too_long"
)

// ASCII printable without space or '@' on both sides of a single '@',
// and at least one '.' after it.
var emailPattern = regexp.MustCompile(`^[!-?A-~]+@[!-?A-~]+\.[!-?A-~]+$`)

func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

type FieldError struct {
	Field  string `json:"field"`
	Reason Reason `json:"reason"`
	Param  string `json:"-"`
}

func (e FieldError) Message() string {
	switch e.Reason {
	case ReasonRequired:
		return e.Field + " is required"
	case ReasonInvalidOption:
		return fmt.Sprintf("%s must be one of: %s", e.Field, strings.Join(strings.Fields(e.Param), ", "))
	case ReasonTooShort:
		return fmt.Sprintf("%s must be at least %s characters", e.Field, e.Param)
	case ReasonTooLong:
		return fmt.Sprintf("%s must be at most %s characters", e.Field, e.Param)
	default:
		return e.Field + " has an invalid format"
	}
}

// Errors is empty when the input was accepted.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message())
	}
	return strings.Join(msgs, "; ")
}

func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func (e Errors) Reason(field string) (Reason, bool) {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Reason, true
		}
	}
	return "", false
}

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

func validate() *validator.Validate {
	engineOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		if err := v.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
			return IsEmail(fl.Field().String())
		}); err != nil {
			panic(err)
		}
		engine = v
	})
	return engine
}

// Struct never stops at the first violation. Several violations of the same
// field and reason (e.g. two bad slice elements) collapse into one entry.
func Struct(s any) Errors {
	err := validate().Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		panic("validation: " + err.Error())
	}

	out := make(Errors, 0, len(ves))
	seen := make(map[string]bool, len(ves))
	for _, fe := range ves {
		item := FieldError{
			Field:  fieldName(fe),
			Reason: reasonFor(fe),
			Param:  fe.Param(),
		}
		key := item.Field + "|" + string(item.Reason)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

func fieldName(fe validator.FieldError) string {
	name, _, _ := strings.Cut(fe.Field(), "[")
	return name
}

func reasonFor(fe validator.FieldError) Reason {
	switch fe.Tag() {
	case "required":
		return ReasonRequired
	case "oneof":
		return ReasonInvalidOption
	case "min":
		if fe.Kind() == reflect.Slice {
			return ReasonRequired
		}
		return ReasonTooShort
	case "max":
		return ReasonTooLong
	default:
		return ReasonInvalidFormat
	}
}
