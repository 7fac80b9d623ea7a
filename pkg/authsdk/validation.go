package authsdk

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so details line up with the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// bcryptlen counts bytes; the builtin max tag counts runes.
	_ = v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= maxPasswordBytes
	})
	return v
}

// Validate reports register fields the server is certain to fail on.
// Returns a map of field names to error messages, or nil if all fields are valid.
func (r RegisterRequest) Validate() map[string]string {
	return validateStruct(r)
}

func validateStruct(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	errs := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		errs[fe.Field()] = reason(fe)
	}
	return errs
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "bcryptlen":
		return fmt.Sprintf("too long (max %d bytes)", maxPasswordBytes)
	default:
		return "invalid"
	}
}
