// Package restring implements string types constrained by a regular
// expression.
//
// A variant is a distinct string type paired with a pattern describing the
// values it accepts. Values are validated exactly once, when constructed, and
// are immutable afterwards, so holding a value of a variant type is proof that
// it matches the variant's pattern. Consumers define their own variants:
//
//	type Identifier string
//
//	var identifier = restring.Define[Identifier]("identifier", `[a-z][a-z0-9_]*`)
package restring

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/pkg/errors"
)

// ValidationError is returned when a value does not fully match the pattern
// of the variant being constructed.
type ValidationError struct {
	Value   string // the rejected value
	Pattern string // the pattern that rejected it
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("value %q does not match the regular expression %v", e.Value, e.Pattern)
}

// Variant describes one constrained string type: its name and the language it
// accepts.
type Variant[T ~string] struct {
	name string
	re   *regexp.Regexp
}

// Define compiles expr into the variant descriptor for T. The expression is
// anchored at both ends, so the entire value must match it, not just a
// substring. Define panics when expr is not a valid regular expression.
func Define[T ~string](name, expr string) *Variant[T] {
	return &Variant[T]{
		name: name,
		re:   regexp.MustCompile(`\A(?:` + expr + `)\z`),
	}
}

// Text is the default variant, accepting any value, including values that
// span multiple lines.
type Text string

// Any accepts all values.
var Any = Define[Text]("text", `(?s).*`)

// Name returns the variant name.
func (v *Variant[T]) Name() string { return v.name }

// Pattern returns the anchored pattern source.
func (v *Variant[T]) Pattern() string { return v.re.String() }

// Match reports whether text belongs to the variant's language.
func (v *Variant[T]) Match(text string) bool {
	return v.re.MatchString(text)
}

// Parse validates text against the variant pattern and returns it as the
// variant type. On mismatch it returns a *ValidationError.
func (v *Variant[T]) Parse(text string) (T, error) {
	if !v.re.MatchString(text) {
		return "", &ValidationError{Value: text, Pattern: v.re.String()}
	}

	return T(text), nil
}

// MustParse validates like Parse and panics on failure. Use for values known
// to be valid ahead of time.
func (v *Variant[T]) MustParse(text string) T {
	t, err := v.Parse(text)
	if err != nil {
		panic(err)
	}

	return t
}

// Coerce returns val unchanged when it is already a value of this exact
// variant, skipping revalidation. Any other value of string kind, including
// values of other variants, is validated from its textual form.
func (v *Variant[T]) Coerce(val interface{}) (T, error) {
	if t, ok := val.(T); ok {
		return t, nil
	}

	if s, ok := val.(string); ok {
		return v.Parse(s)
	}

	if rv := reflect.ValueOf(val); rv.Kind() == reflect.String {
		return v.Parse(rv.String())
	}

	return "", errors.Errorf("unsupported value of type %T for %v", val, v.name)
}
