package validation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindInteger
)

// integers beyond this lose precision in the backend, which parses them as javascript numbers
var maxSafeInteger = decimal.NewFromInt(1<<53 - 1)

// Rule describes one form field. Zero values mean "no constraint", except Kind which defaults to string.
type Rule struct {
	Name      string
	Kind      Kind
	Required  bool
	MaxLength int
	Min       int
	Max       int
	OneOf     []string
	Default   string
}

// Schema is an ordered list of rules. Fields not named in the schema are ignored.
type Schema []Rule

type FieldError struct {
	Field   string
	Message string
}

type Result struct {
	// Values holds the normalized value of every schema field that passed.
	Values map[string]string
	// Submitted holds what was sent for every schema field, untouched.
	Submitted map[string]string
	Errors    []FieldError
}

func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// ErrorMap keys the first message per field by field name.
func (r Result) ErrorMap() map[string]string {
	m := make(map[string]string, len(r.Errors))
	for _, e := range r.Errors {
		if _, seen := m[e.Field]; !seen {
			m[e.Field] = e.Message
		}
	}
	return m
}

func (r Result) String(name string) string {
	return r.Values[name]
}

// Int returns 0 for absent optional fields.
func (r Result) Int(name string) int {
	v, ok := r.Values[name]
	if !ok || v == "" {
		return 0
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return 0
	}
	return int(d.IntPart())
}

func (r Result) Decimal(name string) decimal.Decimal {
	d, err := decimal.NewFromString(r.Values[name])
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (s Schema) Validate(form url.Values) Result {
	result := Result{
		Values:    make(map[string]string, len(s)),
		Submitted: make(map[string]string, len(s)),
		Errors:    make([]FieldError, 0),
	}

	for _, rule := range s {
		raw, present := form[rule.Name]
		value := ""
		if present && len(raw) > 0 {
			value = raw[0]
			result.Submitted[rule.Name] = value
		}
		value = strings.TrimSpace(value)

		if msg, ok := rule.check(value, present); !ok {
			result.Errors = append(result.Errors, FieldError{Field: rule.Name, Message: msg})
			continue
		}
		if value == "" {
			value = rule.Default
		}
		result.Values[rule.Name] = value
	}

	return result
}

func (r Rule) check(value string, present bool) (string, bool) {
	if value == "" {
		if !r.Required {
			return "", true
		}
		if present && r.Kind == KindString {
			return fmt.Sprintf(`"%s" is not allowed to be empty`, r.Name), false
		}
		return fmt.Sprintf(`"%s" is required`, r.Name), false
	}

	switch r.Kind {
	case KindNumber:
		if _, err := decimal.NewFromString(value); err != nil {
			return fmt.Sprintf(`"%s" must be a number`, r.Name), false
		}
	case KindInteger:
		d, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Sprintf(`"%s" must be a number`, r.Name), false
		}
		if !d.IsInteger() {
			return fmt.Sprintf(`"%s" must be an integer`, r.Name), false
		}
		if d.Abs().GreaterThan(maxSafeInteger) {
			return fmt.Sprintf(`"%s" must be a safe number`, r.Name), false
		}
		if r.Min != 0 && d.LessThan(decimal.NewFromInt(int64(r.Min))) {
			return fmt.Sprintf(`"%s" must be greater than or equal to %d`, r.Name, r.Min), false
		}
		if r.Max != 0 && d.GreaterThan(decimal.NewFromInt(int64(r.Max))) {
			return fmt.Sprintf(`"%s" must be less than or equal to %d`, r.Name, r.Max), false
		}
	default:
		if r.MaxLength != 0 && len([]rune(value)) > r.MaxLength {
			return fmt.Sprintf(`"%s" length must be less than or equal to %d characters long`, r.Name, r.MaxLength), false
		}
	}

	if len(r.OneOf) > 0 {
		for _, allowed := range r.OneOf {
			if value == allowed {
				return "", true
			}
		}
		return fmt.Sprintf(`"%s" must be [%s]`, r.Name, strings.Join(r.OneOf, ", ")), false
	}

	return "", true
}
