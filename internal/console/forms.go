package console

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type registrationForm struct {
	Name       string `label:"name"       validate:"required"`
	Email      string `label:"email"      validate:"required,email"`
	Phone      string `label:"phone"      validate:"required"`
	Experience int    `label:"experience" validate:"min=0"`
	Password   string `label:"password"   validate:"required"`
}

type projectForm struct {
	Name        string    `label:"project name" validate:"required"`
	StartDate   time.Time `label:"start date"   validate:"required"`
	EndDate     time.Time `label:"end date"     validate:"required,gtefield=StartDate"`
	ClientName  string    `label:"client name"  validate:"required"`
	ClientEmail string    `label:"client email" validate:"omitempty,email"`
	BuilderID   string    `label:"builder id"   validate:"required"`
}

// formValidator wraps go-playground/validator and flattens its errors into
// one readable line.
type formValidator struct {
	v *validator.Validate
}

func newFormValidator() *formValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})
	return &formValidator{v: v}
}

func (fv *formValidator) Validate(form any) error {
	if err := fv.v.Struct(form); err != nil {
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

func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must not be before %s", field, splitWords(fe.Param()))
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// splitWords turns a Go field name into lower-case words: StartDate → "start date".
func splitWords(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
