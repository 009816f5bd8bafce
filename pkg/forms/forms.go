// Package forms checks submitted form values before any service sees them.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Result maps a form field name to the first problem found with it.
type Result struct {
	Errors map[string]string
}

func (r Result) OK() bool { return len(r.Errors) == 0 }

func (r *Result) Add(field, msg string) {
	if r.Errors == nil {
		r.Errors = map[string]string{}
	}
	if _, seen := r.Errors[field]; !seen {
		r.Errors[field] = msg
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("form"); name != "" && name != "-" {
			return name
		}
		return f.Name
	})
	if err := v.RegisterValidation("integer", func(fl validator.FieldLevel) bool {
		_, err := strconv.Atoi(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	// bcrypt refuses passwords longer than 72 bytes; max counts runes.
	if err := v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		return err == nil && len(fl.Field().String()) <= n
	}); err != nil {
		panic(err)
	}
	return v
}

func check(s any) Result {
	var r Result
	var verrs validator.ValidationErrors
	if err := validate.Struct(s); errors.As(err, &verrs) {
		for _, fe := range verrs {
			r.Add(fe.Field(), message(fe))
		}
	}
	return r
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "min":
		return fmt.Sprintf("Field must be at least %s characters long.", fe.Param())
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	case "maxbytes":
		return "Field is too long."
	case "numeric":
		return "Enter a number."
	case "integer":
		return "Enter a whole number."
	}
	return "Invalid value."
}

func trim(ss ...*string) {
	for _, s := range ss {
		*s = strings.TrimSpace(*s)
	}
}
