package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is matched by every error returned from a builder's Build method.
//
//	if errors.Is(err, model.ErrValidation) {
//		// report the defect to whoever sent the data
//	}
var ErrValidation = errors.New("validation failed")

// MissingRequiredFieldError is returned when a required field is absent,
// or when a repeated field contains an absent entry.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

func (e *MissingRequiredFieldError) Is(target error) bool {
	return target == ErrValidation
}

// EmptyRequiredListError is returned when a repeated field with a minimum
// cardinality of at least one has no entries.
type EmptyRequiredListError struct {
	Field string
}

func (e *EmptyRequiredListError) Error() string {
	return fmt.Sprintf("required list %q must not be empty", e.Field)
}

func (e *EmptyRequiredListError) Is(target error) bool {
	return target == ErrValidation
}

// ChoiceTypeMismatchError is returned when the value of a choice field
// is not one of the types declared for that field.
type ChoiceTypeMismatchError struct {
	Field   string
	Actual  string
	Allowed []string
}

func (e *ChoiceTypeMismatchError) Error() string {
	return fmt.Sprintf("choice field %q: type %q is not one of [%s]", e.Field, e.Actual, strings.Join(e.Allowed, ", "))
}

func (e *ChoiceTypeMismatchError) Is(target error) bool {
	return target == ErrValidation
}

// InvalidReferenceTargetTypeError is returned when a reference declares a
// target resource type that the field does not allow.
type InvalidReferenceTargetTypeError struct {
	Field    string
	Declared string
	Allowed  []string
}

func (e *InvalidReferenceTargetTypeError) Error() string {
	return fmt.Sprintf("reference field %q: target type %q is not one of [%s]", e.Field, e.Declared, strings.Join(e.Allowed, ", "))
}

func (e *InvalidReferenceTargetTypeError) Is(target error) bool {
	return target == ErrValidation
}

// EmptyResourceError is returned when a top-level resource has no content at all.
type EmptyResourceError struct {
	ResourceType string
}

func (e *EmptyResourceError) Error() string {
	return fmt.Sprintf("resource %s must have at least one child element", e.ResourceType)
}

func (e *EmptyResourceError) Is(target error) bool {
	return target == ErrValidation
}

// CardinalityError is returned when the number of entries of a repeated field
// lies outside of the bounds declared for it.
type CardinalityError struct {
	Field       string
	Count       int
	Cardinality Cardinality
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("field %q has %d entries, expected %s", e.Field, e.Count, e.Cardinality)
}

func (e *CardinalityError) Is(target error) bool {
	return target == ErrValidation
}
