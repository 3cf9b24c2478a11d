package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// now is the clock used by the notpast tag; nil means time.Now.
func NewValidator(now func() time.Time) *echoValidator {
	if now == nil {
		now = time.Now
	}
	v := validator.New()
	_ = v.RegisterValidation("phone10", isPhone10)
	_ = v.RegisterValidation("notpast", notPast(now))
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// isPhone10 accepts exactly ten ASCII digits.
func isPhone10(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// notPast accepts a YYYY-MM-DD date that is today or later (UTC).
func notPast(now func() time.Time) validator.Func {
	return func(fl validator.FieldLevel) bool {
		day, err := time.Parse(dateLayout, fl.Field().String())
		if err != nil {
			return false
		}
		today, _ := time.Parse(dateLayout, now().UTC().Format(dateLayout))
		return !day.Before(today)
	}
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "phone10":
		return "please enter a valid 10-digit phone number"
	case "notpast":
		return field + " must be a YYYY-MM-DD date that is not in the past"
	case "latitude", "longitude":
		return field + " is out of range"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
