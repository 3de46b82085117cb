// Package validation implements declarative field-level validation
// schemas. A schema is an ordered list of field rules; validating an
// input collects every violated rule across all fields so a response
// can report all problems at once. Within a single field the non-empty
// check runs first and short-circuits the remaining checks, so an empty
// value never also reports a length or format error.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	msgNotEmpty = "cannot be empty"
	msgEmail    = "not a valid email address"
)

var fieldValidator = validator.New()

// FieldError describes one violated rule on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Check inspects a value and returns a message when it fails, or ""
// when it passes.
type Check func(value string) string

// Rule binds a field name to its ordered checks. The first check is
// expected to be NotEmpty; it gates the rest.
type Rule struct {
	Field  string
	Checks []Check
}

func Field(name string, checks ...Check) Rule {
	return Rule{Field: name, Checks: checks}
}

// Schema is an immutable, reusable set of field rules.
type Schema struct {
	rules []Rule
}

func NewSchema(rules ...Rule) Schema {
	return Schema{rules: rules}
}

// WithPrefix returns a copy of the schema whose field names are
// prefix + base, so one rule set can validate an equivalently shaped
// object nested under different key names.
func (s Schema) WithPrefix(prefix string) Schema {
	if prefix == "" {
		return s
	}
	prefixed := make([]Rule, len(s.rules))
	for i, r := range s.rules {
		prefixed[i] = Rule{Field: prefix + r.Field, Checks: r.Checks}
	}
	return Schema{rules: prefixed}
}

// Validate runs every rule in declaration order and returns one entry
// per violated check. A missing field is treated as empty.
func (s Schema) Validate(input map[string]any) []FieldError {
	var errs []FieldError
	for _, rule := range s.rules {
		value := stringValue(input[rule.Field])
		for i, check := range rule.Checks {
			msg := check(value)
			if msg == "" {
				continue
			}
			errs = append(errs, FieldError{Field: rule.Field, Message: msg})
			if i == 0 {
				// Non-empty failed; the remaining checks would only
				// pile meaningless errors onto an absent value.
				break
			}
		}
	}
	return errs
}

func stringValue(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func NotEmpty() Check {
	return func(value string) string {
		if value == "" {
			return msgNotEmpty
		}
		return ""
	}
}

func Length(min, max int) Check {
	return func(value string) string {
		if len(value) < min || len(value) > max {
			return fmt.Sprintf("between %d and %d characters", min, max)
		}
		return ""
	}
}

func MinLength(min int) Check {
	return func(value string) string {
		if len(value) < min {
			return fmt.Sprintf("%d characters minimum", min)
		}
		return ""
	}
}

func Email() Check {
	return func(value string) string {
		if !IsEmail(value) {
			return msgEmail
		}
		return ""
	}
}

// IsEmail reports whether s is an email-shaped string. Sign-in uses it
// to decide whether a login should be matched against the mail or the
// username field.
func IsEmail(s string) bool {
	return fieldValidator.Var(s, "email") == nil
}
