// Package ir contains the intermediate representation the generators work on.
package ir

import (
	"slices"

	"github.com/damedic/fhir-model-go/model"
	"github.com/iancoleman/strcase"
)

// ResourceOrType is a top-level resource or data type,
// together with the backbone elements nested in it.
type ResourceOrType struct {
	Name        string
	FileName    string
	IsResource  bool
	IsPrimitive bool
	Structs     []Struct
}

// Struct is a single generated Go type.
type Struct struct {
	Name string
	// MarshalName is the FHIR type name, returned by TypeName.
	MarshalName      string
	IsResource       bool
	IsDomainResource bool
	IsPrimitive      bool
	IsBackbone       bool
	BaseType         string
	DocComment       string
	Fields           []StructField
}

// StructField is a field declared by a Struct, in declaration order.
type StructField struct {
	Name          string
	MarshalName   string
	PossibleTypes []FieldType
	Polymorph     bool
	Multiple      bool
	Optional      bool
	Cardinality   model.Cardinality
	DocComment    string
}

// FieldType is a possible type of a field.
type FieldType struct {
	// Name is the Go type name, or a Go builtin for the values of primitives.
	Name string
	// Code is the FHIR type code, used for choice type checks.
	Code             string
	IsPrimitive      bool
	IsNestedResource bool
	// TargetTypes are the resource types a Reference may point to.
	// Empty means any resource.
	TargetTypes []string
}

var goValueTypes = []string{"bool", "int32", "int64", "uint32", "string"}

// IsGoValue reports whether the type is a plain Go value, as used by the value field of primitives.
func (t FieldType) IsGoValue() bool {
	return slices.Contains(goValueTypes, t.Name)
}

// IsReference reports whether the type is a FHIR Reference.
func (t FieldType) IsReference() bool {
	return t.Name == "Reference"
}

// Required reports whether the field must be set.
func (f StructField) Required() bool {
	return !f.Optional
}

// HasTargetTypes reports whether any possible type is a constrained reference.
func (f StructField) HasTargetTypes() bool {
	for _, t := range f.PossibleTypes {
		if t.IsReference() && len(t.TargetTypes) > 0 {
			return true
		}
	}
	return false
}

// ChoiceCodes returns the FHIR type codes of a polymorphic field.
func (f StructField) ChoiceCodes() []string {
	codes := make([]string, 0, len(f.PossibleTypes))
	for _, t := range f.PossibleTypes {
		codes = append(codes, t.Code)
	}
	return codes
}

// FilterResources returns only resources.
func FilterResources(rt []ResourceOrType) []ResourceOrType {
	var filtered []ResourceOrType
	for _, r := range rt {
		if r.IsResource {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func toGoTypeCasing(s string) string {
	return strcase.ToCamel(s)
}

func toGoFieldCasing(s string) string {
	return strcase.ToCamel(s)
}

func toGoFileCasing(s string) string {
	return strcase.ToSnake(s)
}
