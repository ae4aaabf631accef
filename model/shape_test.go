package model_test

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/utils/ptr"
)

// bound is a minimal element written the way generated elements are,
// with two required fields and an optional choice of Coding or Narrative.
type bound struct {
	model.ElementFields
	code      string
	min       int64
	value     model.Element
	hashCache model.HashCache
}

type boundBuilder struct {
	model.ElementBuilder
	Code  *string
	Min   *int64
	Value model.Element
}

func (b *boundBuilder) Build() (*bound, error) {
	if err := model.RequireNonNil(b.Code, "code"); err != nil {
		return nil, err
	}
	if err := model.RequireNonNil(b.Min, "min"); err != nil {
		return nil, err
	}
	fields, err := b.ElementBuilder.Freeze()
	if err != nil {
		return nil, err
	}
	if err := model.OptionalChoice(b.Value, "value", "Coding", "Narrative"); err != nil {
		return nil, err
	}
	r := &bound{
		ElementFields: fields,
		code:          *b.Code,
		min:           *b.Min,
	}
	if !model.IsNil(b.Value) {
		r.value = b.Value
	}
	return r, nil
}

func (r *bound) ToBuilder() *boundBuilder {
	return &boundBuilder{
		ElementBuilder: r.ElementFields.ToBuilder(),
		Code:           ptr.To(r.code),
		Min:            ptr.To(r.min),
		Value:          r.value,
	}
}

func (r *bound) TypeName() string { return "Bound" }

func (r *bound) HasChildren() bool {
	return r.HasElementChildren() || r.code != "" || r.min != 0 || r.value != nil
}

func (r *bound) Accept(name string, index int, v model.Visitor) {
	model.Visit(name, index, r, v, func(v model.Visitor) {
		r.AcceptElementFields(v)
		model.AcceptValue("code", &r.code, v)
		model.AcceptValue("min", &r.min, v)
		model.AcceptElement("value", r.value, v)
	})
}

func (r *bound) Equal(other model.Element) bool {
	o, ok := other.(*bound)
	if !ok {
		return false
	}
	if r == nil || o == nil {
		return r == o
	}
	return r.EqualElementFields(o.ElementFields) &&
		r.code == o.code &&
		r.min == o.min &&
		model.Equal(r.value, o.value)
}

func (r *bound) Hash() uint64 {
	if r == nil {
		return 0
	}
	return r.hashCache.Load(func() uint64 {
		h := model.NewHasher("Bound")
		r.HashElementFields(h)
		h.String(r.code)
		h.Int(r.min)
		h.Element(r.value)
		return h.Sum()
	})
}

// typedRef is a reference declaring its target type directly.
type typedRef struct {
	target string
}

func (r *typedRef) TargetType() (string, bool) {
	if r == nil || r.target == "" {
		return "", false
	}
	return r.target, true
}

func mustCoding(system, code string) *model.Coding {
	b := model.NewCodingBuilder()
	b.System = ptr.To(system)
	b.Code = ptr.To(code)
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

func mustExtension(url string, value model.Element) *model.Extension {
	b := model.NewExtensionBuilder()
	b.Url = ptr.To(url)
	b.Value = value
	e, err := b.Build()
	if err != nil {
		panic(err)
	}
	return e
}

// refElement is an element that also declares a reference target type,
// the way the generated Reference does.
type refElement struct {
	*model.Coding
	typedRef
}

func (r *refElement) TypeName() string { return "Reference" }

func mustRefElement(target string) *refElement {
	return &refElement{Coding: mustCoding("s", "c"), typedRef: typedRef{target: target}}
}
