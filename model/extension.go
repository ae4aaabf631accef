package model

import (
	"slices"

	"github.com/damedic/fhir-model-go/utils/ptr"
)

// ExtensionValueTypes are the types an Extension value may have.
var ExtensionValueTypes = []string{
	"base64Binary", "boolean", "canonical", "code", "date", "dateTime", "decimal", "id",
	"instant", "integer", "markdown", "oid", "positiveInt", "string", "time", "unsignedInt",
	"uri", "url", "uuid",
	"Address", "Age", "Annotation", "Attachment", "CodeableConcept", "Coding", "ContactPoint",
	"Count", "Distance", "Duration", "HumanName", "Identifier", "Money", "Period", "Quantity",
	"Range", "Ratio", "Reference", "SampledData", "Signature", "Timing",
	"ContactDetail", "Contributor", "DataRequirement", "Expression", "ParameterDefinition",
	"RelatedArtifact", "TriggerDefinition", "UsageContext", "Dosage", "Meta",
}

// Extension carries data that is not part of the declared fields of an element.
//
// It is preserved as is and not interpreted.
type Extension struct {
	ElementFields
	url   string
	value Element
	hash  HashCache
}

// ExtensionBuilder stages the fields of an Extension.
type ExtensionBuilder struct {
	ElementBuilder
	Url   *string
	Value Element
}

// NewExtensionBuilder returns an empty ExtensionBuilder.
func NewExtensionBuilder() *ExtensionBuilder {
	return &ExtensionBuilder{}
}

// Build validates the staged fields and returns the Extension.
func (b *ExtensionBuilder) Build() (*Extension, error) {
	if err := RequireNonNil(b.Url, "url"); err != nil {
		return nil, err
	}
	ef, err := b.ElementBuilder.Freeze()
	if err != nil {
		return nil, err
	}
	if err := OptionalChoice(b.Value, "value", ExtensionValueTypes...); err != nil {
		return nil, err
	}

	r := &Extension{
		ElementFields: ef,
		url:           *b.Url,
	}
	if !IsNil(b.Value) {
		r.value = b.Value
	}
	return r, nil
}

// ToBuilder returns a builder holding copies of the fields.
func (r *Extension) ToBuilder() *ExtensionBuilder {
	return &ExtensionBuilder{
		ElementBuilder: r.ElementFields.ToBuilder(),
		Url:            ptr.To(r.url),
		Value:          r.value,
	}
}

// Url identifies the meaning of the extension.
func (r *Extension) Url() string {
	return r.url
}

// Value returns the value of the extension, or nil.
func (r *Extension) Value() Element {
	return r.value
}

func (r *Extension) TypeName() string {
	return "Extension"
}

func (r *Extension) HasChildren() bool {
	return r.HasElementChildren() || r.url != "" || r.value != nil
}

func (r *Extension) Accept(name string, index int, v Visitor) {
	Visit(name, index, r, v, func(v Visitor) {
		r.AcceptElementFields(v)
		AcceptValue("url", &r.url, v)
		AcceptElement("value", r.value, v)
	})
}

func (r *Extension) Equal(other Element) bool {
	o, ok := other.(*Extension)
	if !ok {
		return false
	}
	if r == nil || o == nil {
		return r == o
	}
	return r.EqualElementFields(o.ElementFields) &&
		r.url == o.url &&
		Equal(r.value, o.value)
}

func (r *Extension) Hash() uint64 {
	if r == nil {
		return 0
	}
	return r.hash.Load(func() uint64 {
		h := NewHasher("Extension")
		r.HashElementFields(h)
		h.String(r.url)
		h.Element(r.value)
		return h.Sum()
	})
}

// ExtensionsByUrl returns the extensions with the given url, in order.
func ExtensionsByUrl(extensions []*Extension, url string) []*Extension {
	var matching []*Extension
	for _, e := range extensions {
		if e != nil && e.url == url {
			matching = append(matching, e)
		}
	}
	return slices.Clip(matching)
}
