package model

import (
	"slices"

	"github.com/damedic/fhir-model-go/utils/ptr"
)

// ElementFields are the fields every element has: an id and extensions.
// Shapes embed it to get the accessors and behavior of Element.
type ElementFields struct {
	id        *string
	extension []*Extension
}

// ID returns the element id.
func (f ElementFields) ID() (string, bool) {
	if f.id == nil {
		return "", false
	}
	return *f.id, true
}

// Extensions returns a copy of the extensions.
func (f ElementFields) Extensions() []*Extension {
	return slices.Clone(f.extension)
}

// HasElementChildren reports whether id or any extension is set.
func (f ElementFields) HasElementChildren() bool {
	return f.id != nil || len(f.extension) > 0
}

// AcceptElementFields walks id and extension.
func (f ElementFields) AcceptElementFields(v Visitor) {
	AcceptValue("id", f.id, v)
	AcceptElements("extension", f.extension, v)
}

// EqualElementFields compares id and extension.
func (f ElementFields) EqualElementFields(o ElementFields) bool {
	return EqualValues(f.id, o.id) && EqualSlices(f.extension, o.extension)
}

// HashElementFields writes id and extension.
func (f ElementFields) HashElementFields(h *Hasher) {
	h.OptString(f.id)
	HashElements(h, f.extension)
}

// ToBuilder returns a builder holding copies of the fields.
func (f ElementFields) ToBuilder() ElementBuilder {
	return ElementBuilder{
		ID:        ptr.Clone(f.id),
		Extension: slices.Clone(f.extension),
	}
}

// ElementBuilder stages the fields of ElementFields.
type ElementBuilder struct {
	ID        *string
	Extension []*Extension
}

// AddExtension appends extensions.
func (b *ElementBuilder) AddExtension(e ...*Extension) {
	b.Extension = append(b.Extension, e...)
}

// Freeze validates the staged fields and copies them into ElementFields.
func (b *ElementBuilder) Freeze() (ElementFields, error) {
	if err := RequireNoNilEntries(b.Extension, "extension"); err != nil {
		return ElementFields{}, err
	}
	return ElementFields{
		id:        ptr.Clone(b.ID),
		extension: slices.Clone(b.Extension),
	}, nil
}

// BackboneElementFields are the fields of elements nested in resources:
// the element fields plus modifier extensions.
type BackboneElementFields struct {
	ElementFields
	modifierExtension []*Extension
}

// ModifierExtensions returns a copy of the modifier extensions.
func (f BackboneElementFields) ModifierExtensions() []*Extension {
	return slices.Clone(f.modifierExtension)
}

// HasBackboneElementChildren reports whether any element field or modifier extension is set.
func (f BackboneElementFields) HasBackboneElementChildren() bool {
	return f.HasElementChildren() || len(f.modifierExtension) > 0
}

// AcceptBackboneElementFields walks id, extension and modifierExtension.
func (f BackboneElementFields) AcceptBackboneElementFields(v Visitor) {
	f.AcceptElementFields(v)
	AcceptElements("modifierExtension", f.modifierExtension, v)
}

// EqualBackboneElementFields compares id, extension and modifierExtension.
func (f BackboneElementFields) EqualBackboneElementFields(o BackboneElementFields) bool {
	return f.EqualElementFields(o.ElementFields) && EqualSlices(f.modifierExtension, o.modifierExtension)
}

// HashBackboneElementFields writes id, extension and modifierExtension.
func (f BackboneElementFields) HashBackboneElementFields(h *Hasher) {
	f.HashElementFields(h)
	HashElements(h, f.modifierExtension)
}

// ToBuilder returns a builder holding copies of the fields.
func (f BackboneElementFields) ToBuilder() BackboneElementBuilder {
	return BackboneElementBuilder{
		ElementBuilder:    f.ElementFields.ToBuilder(),
		ModifierExtension: slices.Clone(f.modifierExtension),
	}
}

// BackboneElementBuilder stages the fields of BackboneElementFields.
type BackboneElementBuilder struct {
	ElementBuilder
	ModifierExtension []*Extension
}

// AddModifierExtension appends modifier extensions.
func (b *BackboneElementBuilder) AddModifierExtension(e ...*Extension) {
	b.ModifierExtension = append(b.ModifierExtension, e...)
}

// Freeze validates the staged fields and copies them into BackboneElementFields.
func (b *BackboneElementBuilder) Freeze() (BackboneElementFields, error) {
	ef, err := b.ElementBuilder.Freeze()
	if err != nil {
		return BackboneElementFields{}, err
	}
	if err := RequireNoNilEntries(b.ModifierExtension, "modifierExtension"); err != nil {
		return BackboneElementFields{}, err
	}
	return BackboneElementFields{
		ElementFields:     ef,
		modifierExtension: slices.Clone(b.ModifierExtension),
	}, nil
}

// ResourceFields are the fields every resource has.
type ResourceFields struct {
	id            *string
	meta          *Meta
	implicitRules *string
	language      *string
}

// ResourceId returns the logical id of the resource.
func (f ResourceFields) ResourceId() (string, bool) {
	if f.id == nil {
		return "", false
	}
	return *f.id, true
}

// ID returns the logical id of the resource.
func (f ResourceFields) ID() (string, bool) {
	return f.ResourceId()
}

// Meta returns the metadata of the resource, or nil.
func (f ResourceFields) Meta() *Meta {
	return f.meta
}

// ImplicitRules returns the uri of the rules the resource was constructed under.
func (f ResourceFields) ImplicitRules() (string, bool) {
	if f.implicitRules == nil {
		return "", false
	}
	return *f.implicitRules, true
}

// Language returns the language code of the resource content.
func (f ResourceFields) Language() (string, bool) {
	if f.language == nil {
		return "", false
	}
	return *f.language, true
}

// HasResourceChildren reports whether id, meta, implicitRules or language is set.
func (f ResourceFields) HasResourceChildren() bool {
	return f.id != nil || f.meta != nil || f.implicitRules != nil || f.language != nil
}

// AcceptResourceFields walks id, meta, implicitRules and language.
func (f ResourceFields) AcceptResourceFields(v Visitor) {
	AcceptValue("id", f.id, v)
	AcceptElement("meta", f.meta, v)
	AcceptValue("implicitRules", f.implicitRules, v)
	AcceptValue("language", f.language, v)
}

// EqualResourceFields compares id, meta, implicitRules and language.
func (f ResourceFields) EqualResourceFields(o ResourceFields) bool {
	return EqualValues(f.id, o.id) &&
		Equal(f.meta, o.meta) &&
		EqualValues(f.implicitRules, o.implicitRules) &&
		EqualValues(f.language, o.language)
}

// HashResourceFields writes id, meta, implicitRules and language.
func (f ResourceFields) HashResourceFields(h *Hasher) {
	h.OptString(f.id)
	h.Element(f.meta)
	h.OptString(f.implicitRules)
	h.OptString(f.language)
}

// ToBuilder returns a builder holding copies of the fields.
func (f ResourceFields) ToBuilder() ResourceBuilder {
	return ResourceBuilder{
		ID:            ptr.Clone(f.id),
		Meta:          f.meta,
		ImplicitRules: ptr.Clone(f.implicitRules),
		Language:      ptr.Clone(f.language),
	}
}

// ResourceBuilder stages the fields of ResourceFields.
type ResourceBuilder struct {
	ID            *string
	Meta          *Meta
	ImplicitRules *string
	Language      *string
}

// Freeze copies the staged fields into ResourceFields.
func (b *ResourceBuilder) Freeze() (ResourceFields, error) {
	return ResourceFields{
		id:            ptr.Clone(b.ID),
		meta:          b.Meta,
		implicitRules: ptr.Clone(b.ImplicitRules),
		language:      ptr.Clone(b.Language),
	}, nil
}

// DomainResourceFields are the fields of resources with narrative, contained resources and extensions.
type DomainResourceFields struct {
	ResourceFields
	text              *Narrative
	contained         []Resource
	extension         []*Extension
	modifierExtension []*Extension
}

// Text returns the narrative of the resource, or nil.
func (f DomainResourceFields) Text() *Narrative {
	return f.text
}

// Contained returns a copy of the contained resources.
func (f DomainResourceFields) Contained() []Resource {
	return slices.Clone(f.contained)
}

// Extensions returns a copy of the extensions.
func (f DomainResourceFields) Extensions() []*Extension {
	return slices.Clone(f.extension)
}

// ModifierExtensions returns a copy of the modifier extensions.
func (f DomainResourceFields) ModifierExtensions() []*Extension {
	return slices.Clone(f.modifierExtension)
}

// HasDomainResourceChildren reports whether any resource or domain resource field is set.
func (f DomainResourceFields) HasDomainResourceChildren() bool {
	return f.HasResourceChildren() ||
		f.text != nil ||
		len(f.contained) > 0 ||
		len(f.extension) > 0 ||
		len(f.modifierExtension) > 0
}

// AcceptDomainResourceFields walks the resource fields, text, contained, extension and modifierExtension.
func (f DomainResourceFields) AcceptDomainResourceFields(v Visitor) {
	f.AcceptResourceFields(v)
	AcceptElement("text", f.text, v)
	AcceptElements("contained", f.contained, v)
	AcceptElements("extension", f.extension, v)
	AcceptElements("modifierExtension", f.modifierExtension, v)
}

// EqualDomainResourceFields compares the resource and domain resource fields.
func (f DomainResourceFields) EqualDomainResourceFields(o DomainResourceFields) bool {
	return f.EqualResourceFields(o.ResourceFields) &&
		Equal(f.text, o.text) &&
		EqualSlices(f.contained, o.contained) &&
		EqualSlices(f.extension, o.extension) &&
		EqualSlices(f.modifierExtension, o.modifierExtension)
}

// HashDomainResourceFields writes the resource and domain resource fields.
func (f DomainResourceFields) HashDomainResourceFields(h *Hasher) {
	f.HashResourceFields(h)
	h.Element(f.text)
	HashElements(h, f.contained)
	HashElements(h, f.extension)
	HashElements(h, f.modifierExtension)
}

// ToBuilder returns a builder holding copies of the fields.
func (f DomainResourceFields) ToBuilder() DomainResourceBuilder {
	return DomainResourceBuilder{
		ResourceBuilder:   f.ResourceFields.ToBuilder(),
		Text:              f.text,
		Contained:         slices.Clone(f.contained),
		Extension:         slices.Clone(f.extension),
		ModifierExtension: slices.Clone(f.modifierExtension),
	}
}

// DomainResourceBuilder stages the fields of DomainResourceFields.
type DomainResourceBuilder struct {
	ResourceBuilder
	Text              *Narrative
	Contained         []Resource
	Extension         []*Extension
	ModifierExtension []*Extension
}

// AddContained appends contained resources.
func (b *DomainResourceBuilder) AddContained(r ...Resource) {
	b.Contained = append(b.Contained, r...)
}

// AddExtension appends extensions.
func (b *DomainResourceBuilder) AddExtension(e ...*Extension) {
	b.Extension = append(b.Extension, e...)
}

// AddModifierExtension appends modifier extensions.
func (b *DomainResourceBuilder) AddModifierExtension(e ...*Extension) {
	b.ModifierExtension = append(b.ModifierExtension, e...)
}

// Freeze validates the staged fields and copies them into DomainResourceFields.
func (b *DomainResourceBuilder) Freeze() (DomainResourceFields, error) {
	rf, err := b.ResourceBuilder.Freeze()
	if err != nil {
		return DomainResourceFields{}, err
	}
	if err := RequireNoNilEntries(b.Contained, "contained"); err != nil {
		return DomainResourceFields{}, err
	}
	if err := RequireNoNilEntries(b.Extension, "extension"); err != nil {
		return DomainResourceFields{}, err
	}
	if err := RequireNoNilEntries(b.ModifierExtension, "modifierExtension"); err != nil {
		return DomainResourceFields{}, err
	}
	return DomainResourceFields{
		ResourceFields:    rf,
		text:              b.Text,
		contained:         slices.Clone(b.Contained),
		extension:         slices.Clone(b.Extension),
		modifierExtension: slices.Clone(b.ModifierExtension),
	}, nil
}
