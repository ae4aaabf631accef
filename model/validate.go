package model

import (
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
)

// IsNil reports whether v is nil or an interface holding a nil pointer, slice or map.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// RequireNonNil fails with MissingRequiredFieldError if value is absent.
func RequireNonNil(value any, field string) error {
	if IsNil(value) {
		return &MissingRequiredFieldError{Field: field}
	}
	return nil
}

// RequireNonEmpty fails with EmptyRequiredListError if list has no entries.
func RequireNonEmpty[T any](list []T, field string) error {
	if len(list) == 0 {
		return &EmptyRequiredListError{Field: field}
	}
	return nil
}

// RequireNoNilEntries fails with MissingRequiredFieldError naming the first absent entry of list.
func RequireNoNilEntries[T any](list []T, field string) error {
	for i, e := range list {
		if IsNil(e) {
			return &MissingRequiredFieldError{Field: fmt.Sprintf("%s[%d]", field, i)}
		}
	}
	return nil
}

// RequireChildren fails with EmptyResourceError if the resource has no content at all.
func RequireChildren(r Resource) error {
	if !r.HasChildren() {
		return &EmptyResourceError{ResourceType: r.ResourceType()}
	}
	return nil
}

// RequireChoice checks a required choice field:
// an absent value fails with MissingRequiredFieldError,
// a value whose type is not allowed fails with ChoiceTypeMismatchError.
func RequireChoice(value Element, field string, allowed ...string) error {
	if IsNil(value) {
		return &MissingRequiredFieldError{Field: field}
	}
	return OptionalChoice(value, field, allowed...)
}

// OptionalChoice checks an optional choice field.
// No conversion between types takes place, the type name has to match exactly.
func OptionalChoice(value Element, field string, allowed ...string) error {
	if IsNil(value) {
		return nil
	}
	if t := value.TypeName(); !slices.Contains(allowed, t) {
		return &ChoiceTypeMismatchError{
			Field:   field,
			Actual:  t,
			Allowed: slices.Clone(allowed),
		}
	}
	return nil
}

// OptionalChoices applies OptionalChoice to every entry of a repeated choice field.
func OptionalChoices[T Element](list []T, field string, allowed ...string) error {
	for i, v := range list {
		if err := OptionalChoice(v, fmt.Sprintf("%s[%d]", field, i), allowed...); err != nil {
			return err
		}
	}
	return nil
}

// CheckReferenceTargetType checks that the target type declared by ref is one of allowed.
//
// Absent references and references that do not declare a target type pass.
func CheckReferenceTargetType(ref TargetTyped, field string, allowed ...string) error {
	if IsNil(ref) || len(allowed) == 0 {
		return nil
	}
	declared, ok := ref.TargetType()
	if !ok {
		return nil
	}
	if !slices.Contains(allowed, declared) {
		return &InvalidReferenceTargetTypeError{
			Field:    field,
			Declared: declared,
			Allowed:  slices.Clone(allowed),
		}
	}
	return nil
}

// CheckReferenceTargetTypes applies CheckReferenceTargetType to every entry of a repeated field.
func CheckReferenceTargetTypes[T TargetTyped](refs []T, field string, allowed ...string) error {
	for i, ref := range refs {
		if err := CheckReferenceTargetType(ref, fmt.Sprintf("%s[%d]", field, i), allowed...); err != nil {
			return err
		}
	}
	return nil
}

// CheckChoiceReferenceTargetTypes applies CheckReferenceTargetType to the entries
// of a repeated choice field that hold a reference. Other entries are skipped.
func CheckChoiceReferenceTargetTypes[T Element](list []T, field string, allowed ...string) error {
	for i, v := range list {
		ref, ok := any(v).(TargetTyped)
		if !ok {
			continue
		}
		if err := CheckReferenceTargetType(ref, fmt.Sprintf("%s[%d]", field, i), allowed...); err != nil {
			return err
		}
	}
	return nil
}

// CheckCardinality fails with CardinalityError if the number of entries is out of bounds.
func CheckCardinality[T any](list []T, field string, c Cardinality) error {
	if !c.Allows(len(list)) {
		return &CardinalityError{Field: field, Count: len(list), Cardinality: c}
	}
	return nil
}

// literalReference matches relative and absolute literal references like
// "Patient/123", "Patient/123/_history/2" or "http://example.org/fhir/Patient/123".
var literalReference = regexp.MustCompile(
	`^(?:https?://[^/]+(?:/[^/]+)*?/)?([A-Z][A-Za-z]+)/[A-Za-z0-9\-.]{1,64}(?:/_history/[A-Za-z0-9\-.]{1,64})?$`,
)

// ParseReferenceType extracts the resource type from a literal reference.
//
// Contained ("#id"), "urn:" and unparseable references have no type.
func ParseReferenceType(literal string) (string, bool) {
	if literal == "" || strings.HasPrefix(literal, "#") || strings.HasPrefix(literal, "urn:") {
		return "", false
	}
	m := literalReference.FindStringSubmatch(literal)
	if m == nil {
		return "", false
	}
	return m[1], true
}
