// Package validation checks typed dispatcher inputs against their struct tags
// and reports failures as JSON field name to human-readable messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"lexiq/internal/domain/billing"
)

// MessageTag overrides every rule failure on a field with a fixed message.
const MessageTag = "message"

// FormField collects failures that cannot be attributed to a single field.
const FormField = "form"

type Validator struct {
	v *validator.Validate
}

func New() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("plan", func(fl validator.FieldLevel) bool {
		_, ok := billing.LookupPlan(fl.Field().String())
		return ok
	}); err != nil {
		return nil, fmt.Errorf("register plan validation: %w", err)
	}
	return &Validator{v: v}, nil
}

// MustNew is New for process wiring and tests.
func MustNew() *Validator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

// Validate returns nil when input satisfies its rules.
func (x *Validator) Validate(input any) map[string][]string {
	err := x.v.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string][]string{FormField: {"Input could not be read."}}
	}

	root := reflect.TypeOf(input)
	for root.Kind() == reflect.Pointer {
		root = root.Elem()
	}

	out := map[string][]string{}
	for _, fe := range fieldErrs {
		field := fe.Field()
		msg := overrideMessage(root, fe.StructNamespace())
		if msg == "" {
			msg = formatFieldError(field, fe.Tag(), fe.Param())
		}
		if !contains(out[field], msg) {
			out[field] = append(out[field], msg)
		}
	}
	return out
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	default:
		return name
	}
}

// overrideMessage walks the struct namespace (Type.Field.Nested) to the
// failing field and returns its message tag.
func overrideMessage(root reflect.Type, namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) < 2 || root.Kind() != reflect.Struct {
		return ""
	}
	t := root
	var sf reflect.StructField
	for _, name := range parts[1:] {
		if i := strings.IndexByte(name, '['); i >= 0 {
			name = name[:i]
		}
		for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Map {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return ""
		}
		f, ok := t.FieldByName(name)
		if !ok {
			return ""
		}
		sf = f
		t = f.Type
	}
	return sf.Tag.Get(MessageTag)
}

func formatFieldError(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", field, param)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters.", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", field, strings.Join(strings.Fields(param), ", "))
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid UUID.", field)
	case "plan":
		return fmt.Sprintf("%s must be one of: %s.", field, strings.Join(billing.PlanIDs(), ", "))
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
