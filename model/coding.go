package model

import "github.com/damedic/fhir-model-go/utils/ptr"

// Coding is a reference to a code defined by a terminology system.
type Coding struct {
	ElementFields
	system       *string
	version      *string
	code         *string
	display      *string
	userSelected *bool
	hash         HashCache
}

// CodingBuilder stages the fields of a Coding.
type CodingBuilder struct {
	ElementBuilder
	System       *string
	Version      *string
	Code         *string
	Display      *string
	UserSelected *bool
}

// NewCodingBuilder returns an empty CodingBuilder.
func NewCodingBuilder() *CodingBuilder {
	return &CodingBuilder{}
}

// Build validates the staged fields and returns the Coding.
func (b *CodingBuilder) Build() (*Coding, error) {
	ef, err := b.ElementBuilder.Freeze()
	if err != nil {
		return nil, err
	}
	return &Coding{
		ElementFields: ef,
		system:        ptr.Clone(b.System),
		version:       ptr.Clone(b.Version),
		code:          ptr.Clone(b.Code),
		display:       ptr.Clone(b.Display),
		userSelected:  ptr.Clone(b.UserSelected),
	}, nil
}

// ToBuilder returns a builder holding copies of the fields.
func (r *Coding) ToBuilder() *CodingBuilder {
	return &CodingBuilder{
		ElementBuilder: r.ElementFields.ToBuilder(),
		System:         ptr.Clone(r.system),
		Version:        ptr.Clone(r.version),
		Code:           ptr.Clone(r.code),
		Display:        ptr.Clone(r.display),
		UserSelected:   ptr.Clone(r.userSelected),
	}
}

// System is the identity of the terminology system.
func (r *Coding) System() (string, bool) { return deref(r.system) }

// Version of the system, if relevant.
func (r *Coding) Version() (string, bool) { return deref(r.version) }

// Code is the symbol in syntax defined by the system.
func (r *Coding) Code() (string, bool) { return deref(r.code) }

// Display is the representation defined by the system.
func (r *Coding) Display() (string, bool) { return deref(r.display) }

// UserSelected reports whether this coding was chosen directly by the user.
func (r *Coding) UserSelected() (bool, bool) { return deref(r.userSelected) }

func (r *Coding) TypeName() string {
	return "Coding"
}

func (r *Coding) HasChildren() bool {
	return r.HasElementChildren() ||
		r.system != nil ||
		r.version != nil ||
		r.code != nil ||
		r.display != nil ||
		r.userSelected != nil
}

func (r *Coding) Accept(name string, index int, v Visitor) {
	Visit(name, index, r, v, func(v Visitor) {
		r.AcceptElementFields(v)
		AcceptValue("system", r.system, v)
		AcceptValue("version", r.version, v)
		AcceptValue("code", r.code, v)
		AcceptValue("display", r.display, v)
		AcceptValue("userSelected", r.userSelected, v)
	})
}

func (r *Coding) Equal(other Element) bool {
	o, ok := other.(*Coding)
	if !ok {
		return false
	}
	if r == nil || o == nil {
		return r == o
	}
	return r.EqualElementFields(o.ElementFields) &&
		EqualValues(r.system, o.system) &&
		EqualValues(r.version, o.version) &&
		EqualValues(r.code, o.code) &&
		EqualValues(r.display, o.display) &&
		EqualValues(r.userSelected, o.userSelected)
}

func (r *Coding) Hash() uint64 {
	if r == nil {
		return 0
	}
	return r.hash.Load(func() uint64 {
		h := NewHasher("Coding")
		r.HashElementFields(h)
		h.OptString(r.system)
		h.OptString(r.version)
		h.OptString(r.code)
		h.OptString(r.display)
		h.OptBool(r.userSelected)
		return h.Sum()
	})
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}
