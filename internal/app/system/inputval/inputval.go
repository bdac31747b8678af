// internal/app/system/inputval/inputval.go

// Package inputval runs struct-tag validation and turns validator errors
// into short, human-readable messages keyed by the Go field name.
//
// Fields use the `validate` tag for rules and the `label` tag for the name
// shown in messages:
//
//	Name string `validate:"required,max=50" label:"Name"`
package inputval

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single failed rule.
type FieldError struct {
	Field   string // Go struct field name, e.g. "Careers"
	Tag     string // rule that failed, e.g. "required"
	Message string
}

// Result collects every failed rule for one value.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r *Result) HasErrors() bool {
	return r != nil && len(r.Errors) > 0
}

// First returns the first message, or "" when there are none.
func (r *Result) First() string {
	if !r.HasErrors() {
		return ""
	}
	return r.Errors[0].Message
}

// All joins every message with "; ".
func (r *Result) All() string {
	if !r.HasErrors() {
		return ""
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// Fields returns the distinct field names that failed, in order.
func (r *Result) Fields() []string {
	if !r.HasErrors() {
		return nil
	}
	seen := make(map[string]bool, len(r.Errors))
	var out []string
	for _, e := range r.Errors {
		if seen[e.Field] {
			continue
		}
		seen[e.Field] = true
		out = append(out, e.Field)
	}
	return out
}

var (
	once     sync.Once
	validate *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			if l := f.Tag.Get("label"); l != "" && l != "-" {
				return l
			}
			return f.Name
		})
		mustRegister(v, "career", func(fl validator.FieldLevel) bool {
			return IsValidCareer(fl.Field().String())
		})
		mustRegister(v, "httpurl", func(fl validator.FieldLevel) bool {
			return IsValidHTTPURL(fl.Field().String())
		})
		mustRegister(v, "looseemail", func(fl validator.FieldLevel) bool {
			return IsValidEmail(fl.Field().String())
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("inputval: register %q: %v", tag, err))
	}
}

// Validate checks s against its `validate` tags. s must be a struct or a
// pointer to one. The returned Result is never nil.
func Validate(s any) *Result {
	res := &Result{}
	err := engine().Struct(s)
	if err == nil {
		return res
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		res.Errors = append(res.Errors, FieldError{Tag: "invalid", Message: err.Error()})
		return res
	}
	for _, fe := range verrs {
		res.Errors = append(res.Errors, FieldError{
			Field:   baseName(fe.StructField()),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}
	return res
}

// baseName strips a dive index, so "Careers[2]" becomes "Careers".
func baseName(name string) string {
	base, _, _ := strings.Cut(name, "[")
	return base
}

func message(fe validator.FieldError) string {
	label := baseName(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must include at least %s value(s).", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot be more than %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s.", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must not be more than %s.", label, fe.Param())
	case "career":
		return fmt.Sprintf("%s contains %q, which is not one of: %s.", label, fe.Value(), strings.Join(AllowedCareersList(), ", "))
	case "httpurl":
		return "Please use a valid URL with HTTP or HTTPS."
	case "looseemail", "email":
		return "Please add a valid email."
	default:
		return label + " is invalid."
	}
}
