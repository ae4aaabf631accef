package model

import (
	"slices"

	"github.com/damedic/fhir-model-go/utils/ptr"
)

// Meta is the metadata about a resource, like its version and profiles.
type Meta struct {
	ElementFields
	versionId   *string
	lastUpdated *string
	source      *string
	profile     []string
	security    []*Coding
	tag         []*Coding
	hash        HashCache
}

// MetaBuilder stages the fields of a Meta.
type MetaBuilder struct {
	ElementBuilder
	VersionId   *string
	LastUpdated *string
	Source      *string
	Profile     []string
	Security    []*Coding
	Tag         []*Coding
}

// NewMetaBuilder returns an empty MetaBuilder.
func NewMetaBuilder() *MetaBuilder {
	return &MetaBuilder{}
}

// AddProfile appends profile urls.
func (b *MetaBuilder) AddProfile(p ...string) {
	b.Profile = append(b.Profile, p...)
}

// AddSecurity appends security labels.
func (b *MetaBuilder) AddSecurity(c ...*Coding) {
	b.Security = append(b.Security, c...)
}

// AddTag appends tags.
func (b *MetaBuilder) AddTag(c ...*Coding) {
	b.Tag = append(b.Tag, c...)
}

// Build validates the staged fields and returns the Meta.
func (b *MetaBuilder) Build() (*Meta, error) {
	if err := RequireNoNilEntries(b.Security, "security"); err != nil {
		return nil, err
	}
	if err := RequireNoNilEntries(b.Tag, "tag"); err != nil {
		return nil, err
	}
	ef, err := b.ElementBuilder.Freeze()
	if err != nil {
		return nil, err
	}
	return &Meta{
		ElementFields: ef,
		versionId:     ptr.Clone(b.VersionId),
		lastUpdated:   ptr.Clone(b.LastUpdated),
		source:        ptr.Clone(b.Source),
		profile:       slices.Clone(b.Profile),
		security:      slices.Clone(b.Security),
		tag:           slices.Clone(b.Tag),
	}, nil
}

// ToBuilder returns a builder holding copies of the fields.
func (r *Meta) ToBuilder() *MetaBuilder {
	return &MetaBuilder{
		ElementBuilder: r.ElementFields.ToBuilder(),
		VersionId:      ptr.Clone(r.versionId),
		LastUpdated:    ptr.Clone(r.lastUpdated),
		Source:         ptr.Clone(r.source),
		Profile:        slices.Clone(r.profile),
		Security:       slices.Clone(r.security),
		Tag:            slices.Clone(r.tag),
	}
}

// VersionId is the version specific identifier.
func (r *Meta) VersionId() (string, bool) { return deref(r.versionId) }

// LastUpdated is the instant the resource version last changed.
func (r *Meta) LastUpdated() (string, bool) { return deref(r.lastUpdated) }

// Source identifies where the resource comes from.
func (r *Meta) Source() (string, bool) { return deref(r.source) }

// Profile returns the profiles the resource claims to conform to.
func (r *Meta) Profile() []string { return slices.Clone(r.profile) }

// Security returns the security labels applied to the resource.
func (r *Meta) Security() []*Coding { return slices.Clone(r.security) }

// Tag returns the tags applied to the resource.
func (r *Meta) Tag() []*Coding { return slices.Clone(r.tag) }

func (r *Meta) TypeName() string {
	return "Meta"
}

func (r *Meta) HasChildren() bool {
	return r.HasElementChildren() ||
		r.versionId != nil ||
		r.lastUpdated != nil ||
		r.source != nil ||
		len(r.profile) > 0 ||
		len(r.security) > 0 ||
		len(r.tag) > 0
}

func (r *Meta) Accept(name string, index int, v Visitor) {
	Visit(name, index, r, v, func(v Visitor) {
		r.AcceptElementFields(v)
		AcceptValue("versionId", r.versionId, v)
		AcceptValue("lastUpdated", r.lastUpdated, v)
		AcceptValue("source", r.source, v)
		AcceptValues("profile", r.profile, v)
		AcceptElements("security", r.security, v)
		AcceptElements("tag", r.tag, v)
	})
}

func (r *Meta) Equal(other Element) bool {
	o, ok := other.(*Meta)
	if !ok {
		return false
	}
	if r == nil || o == nil {
		return r == o
	}
	return r.EqualElementFields(o.ElementFields) &&
		EqualValues(r.versionId, o.versionId) &&
		EqualValues(r.lastUpdated, o.lastUpdated) &&
		EqualValues(r.source, o.source) &&
		slices.Equal(r.profile, o.profile) &&
		EqualSlices(r.security, o.security) &&
		EqualSlices(r.tag, o.tag)
}

func (r *Meta) Hash() uint64 {
	if r == nil {
		return 0
	}
	return r.hash.Load(func() uint64 {
		h := NewHasher("Meta")
		r.HashElementFields(h)
		h.OptString(r.versionId)
		h.OptString(r.lastUpdated)
		h.OptString(r.source)
		h.Strings(r.profile)
		HashElements(h, r.security)
		HashElements(h, r.tag)
		return h.Sum()
	})
}
