// Package validator validates request bodies for echo.
//
// Rules come from `validate` struct tags. Unlike the stock behaviour of
// go-playground/validator, every rule of every field is evaluated and each
// failure is reported, so a client sees all problems at once.
package validator

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	playground "github.com/go-playground/validator/v10"
)

const (
	nameMinLength     = 20
	nameMaxLength     = 60
	passwordMinLength = 8
	passwordMaxLength = 16

	// Pseudo rules reported when a value cannot be decoded into its field.
	ruleInt  = "int"
	ruleType = "type"

	// passwordSpecialChars lists the characters accepted as special in a password.
	passwordSpecialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`
)

// FieldError is a single failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when at least one rule failed.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		messages = append(messages, field.Field+": "+field.Message)
	}

	return "validation failed: " + strings.Join(messages, "; ")
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New builds a validator with the custom rules registered.
func New() *CustomValidator {
	v := playground.New(playground.WithRequiredStructEnabled())

	_ = v.RegisterValidation("name_length", func(fl playground.FieldLevel) bool {
		n := utf8.RuneCountInString(strings.TrimSpace(fl.Field().String()))

		return n >= nameMinLength && n <= nameMaxLength
	})
	_ = v.RegisterValidation("password_length", func(fl playground.FieldLevel) bool {
		n := utf8.RuneCountInString(fl.Field().String())

		return n >= passwordMinLength && n <= passwordMaxLength
	})
	_ = v.RegisterValidation("password_strength", func(fl playground.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	_ = v.RegisterValidation("not_blank", func(fl playground.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &CustomValidator{validate: v}
}

// IsStrongPassword reports whether password has an uppercase letter and a special character.
func IsStrongPassword(password string) bool {
	var hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case strings.ContainsRune(passwordSpecialChars, r):
			hasSpecial = true
		}
	}

	return hasUpper && hasSpecial
}

// Validate checks every tagged field of the struct i points to.
func (cv *CustomValidator) Validate(i any) error {
	val := reflect.Indirect(reflect.ValueOf(i))
	if val.Kind() != reflect.Struct {
		return nil
	}

	var failures []FieldError
	typ := val.Type()
	for idx := range typ.NumField() {
		sf := typ.Field(idx)
		tag := sf.Tag.Get("validate")
		if tag == "" || tag == "-" {
			continue
		}

		failures = append(failures, cv.validateField(jsonName(sf), val.Field(idx), tag)...)
	}

	if len(failures) > 0 {
		return &ValidationError{Fields: failures}
	}

	return nil
}

func (cv *CustomValidator) validateField(name string, fv reflect.Value, tag string) []FieldError {
	rules := strings.Split(tag, ",")
	optional := rules[0] == "omitempty"
	if optional {
		rules = rules[1:]
	}

	if n, ok := fv.Interface().(Int); ok {
		if !n.Set {
			if optional {
				return nil
			}
		} else if n.Invalid {
			return []FieldError{{Field: name, Message: messageFor(name, ruleInt)}}
		}
		fv = reflect.ValueOf(n.Value)
	}

	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			if optional {
				return nil
			}
			fv = reflect.Zero(fv.Type().Elem())
		} else {
			fv = fv.Elem()
		}
	}
	if optional && fv.IsZero() {
		return nil
	}

	var failures []FieldError
	seen := make(map[string]bool)
	for _, rule := range rules {
		if err := cv.validate.Var(fv.Interface(), rule); err == nil {
			continue
		}

		msg := messageFor(name, rule)
		if seen[msg] {
			continue
		}
		seen[msg] = true
		failures = append(failures, FieldError{Field: name, Message: msg})
	}

	return failures
}

func jsonName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return sf.Name
	}

	return name
}
