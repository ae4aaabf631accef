package model

// Element is any node in the FHIR model.
//
// This includes Resources, Datatypes and BackboneElements.
// Elements are created by builders and are immutable afterwards,
// so they can be shared between goroutines without synchronization.
type Element interface {
	// TypeName returns the FHIR type name, e.g. "string", "Quantity" or "Observation".
	TypeName() string
	// HasChildren reports whether any field, own or inherited, is set.
	HasChildren() bool
	// Accept walks the element and its children with the given visitor.
	//
	// Use NoIndex for elements that are not part of a repeated field.
	Accept(name string, index int, v Visitor)
	// Equal reports whether other has the same type and all fields are equal by value.
	Equal(other Element) bool
	// Hash returns a hash over the same fields Equal compares.
	Hash() uint64
}

// HasID is implemented by elements that carry an element or resource id.
type HasID interface {
	ID() (string, bool)
}

// HasExtensions is implemented by elements that carry extensions.
type HasExtensions interface {
	Extensions() []*Extension
}

// HasModifierExtensions is implemented by elements that carry modifier extensions.
type HasModifierExtensions interface {
	ModifierExtensions() []*Extension
}

// BackboneElement is an element nested inside a resource that may carry modifier extensions.
type BackboneElement interface {
	Element
	HasID
	HasExtensions
	HasModifierExtensions
}

// Resource is any FHIR Resource.
type Resource interface {
	Element
	ResourceType() string
	ResourceId() (string, bool)
	Meta() *Meta
	ImplicitRules() (string, bool)
	Language() (string, bool)
}

// DomainResource is any FHIR Resource that has narrative, contained resources and extensions.
type DomainResource interface {
	Resource
	HasExtensions
	HasModifierExtensions
	Text() *Narrative
	Contained() []Resource
}

// TargetTyped is implemented by references that may declare the type of the resource they point to.
type TargetTyped interface {
	// TargetType returns the declared target resource type, if any.
	TargetType() (string, bool)
}
