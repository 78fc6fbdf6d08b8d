package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json name, that's what clients sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// CreateContactInput is the schema for POST /api/contacts. All three
// fields are mandatory.
type CreateContactInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// UpdateContactInput is the schema for PUT/PATCH /api/contacts/:id.
// Only fields present in the body are validated and written.
type UpdateContactInput struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,min=1"`
	Favorite *bool   `json:"favorite"`
}

// Empty reports whether no field at all was supplied.
func (u *UpdateContactInput) Empty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil && u.Favorite == nil
}

// ContactValidator runs the schema check for contact payloads and turns
// the first violation into the message returned to the client.
func ContactValidator(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return errors.New(fieldMessage(verrs[0]))
	}

	return err
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", fe.Field())
	case "email":
		return fmt.Sprintf("%q must be a valid email", fe.Field())
	case "min":
		return fmt.Sprintf("%q is not allowed to be empty", fe.Field())
	default:
		return fmt.Sprintf("%q is invalid", fe.Field())
	}
}
