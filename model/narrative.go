package model

import "github.com/damedic/fhir-model-go/utils/ptr"

// Narrative is the human-readable summary of a resource.
type Narrative struct {
	ElementFields
	status string
	div    string
	hash   HashCache
}

// NarrativeBuilder stages the fields of a Narrative.
type NarrativeBuilder struct {
	ElementBuilder
	// Status is one of generated | extensions | additional | empty.
	Status *string
	// Div holds limited xhtml content.
	Div *string
}

// NewNarrativeBuilder returns an empty NarrativeBuilder.
func NewNarrativeBuilder() *NarrativeBuilder {
	return &NarrativeBuilder{}
}

// Build validates the staged fields and returns the Narrative.
func (b *NarrativeBuilder) Build() (*Narrative, error) {
	if err := RequireNonNil(b.Status, "status"); err != nil {
		return nil, err
	}
	if err := RequireNonNil(b.Div, "div"); err != nil {
		return nil, err
	}
	ef, err := b.ElementBuilder.Freeze()
	if err != nil {
		return nil, err
	}
	return &Narrative{
		ElementFields: ef,
		status:        *b.Status,
		div:           *b.Div,
	}, nil
}

// ToBuilder returns a builder holding copies of the fields.
func (r *Narrative) ToBuilder() *NarrativeBuilder {
	return &NarrativeBuilder{
		ElementBuilder: r.ElementFields.ToBuilder(),
		Status:         ptr.To(r.status),
		Div:            ptr.To(r.div),
	}
}

// Status returns the status of the narrative.
func (r *Narrative) Status() string { return r.status }

// Div returns the xhtml content.
func (r *Narrative) Div() string { return r.div }

func (r *Narrative) TypeName() string {
	return "Narrative"
}

func (r *Narrative) HasChildren() bool {
	return r.HasElementChildren() || r.status != "" || r.div != ""
}

func (r *Narrative) Accept(name string, index int, v Visitor) {
	Visit(name, index, r, v, func(v Visitor) {
		r.AcceptElementFields(v)
		AcceptValue("status", &r.status, v)
		AcceptValue("div", &r.div, v)
	})
}

func (r *Narrative) Equal(other Element) bool {
	o, ok := other.(*Narrative)
	if !ok {
		return false
	}
	if r == nil || o == nil {
		return r == o
	}
	return r.EqualElementFields(o.ElementFields) &&
		r.status == o.status &&
		r.div == o.div
}

func (r *Narrative) Hash() uint64 {
	if r == nil {
		return 0
	}
	return r.hash.Load(func() uint64 {
		h := NewHasher("Narrative")
		r.HashElementFields(h)
		h.String(r.status)
		h.String(r.div)
		return h.Sum()
	})
}
