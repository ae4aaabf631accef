package model_test

import (
	"errors"
	"testing"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/utils/ptr"
	"github.com/google/go-cmp/cmp"
)

func TestExtensionBuild(t *testing.T) {
	tests := []struct {
		name    string
		builder *model.ExtensionBuilder
		wantErr error
	}{
		{
			name:    "url and value",
			builder: &model.ExtensionBuilder{Url: ptr.To("http://example.org/a"), Value: mustCoding("s", "c")},
		},
		{
			name:    "url only",
			builder: &model.ExtensionBuilder{Url: ptr.To("http://example.org/a")},
		},
		{
			name:    "missing url",
			builder: &model.ExtensionBuilder{Value: mustCoding("s", "c")},
			wantErr: &model.MissingRequiredFieldError{Field: "url"},
		},
		{
			name: "nested extension as value",
			builder: &model.ExtensionBuilder{
				Url:   ptr.To("http://example.org/a"),
				Value: mustExtension("http://example.org/b", nil),
			},
			wantErr: &model.ChoiceTypeMismatchError{Field: "value", Actual: "Extension", Allowed: model.ExtensionValueTypes},
		},
		{
			name: "absent nested extension",
			builder: &model.ExtensionBuilder{
				ElementBuilder: model.ElementBuilder{Extension: []*model.Extension{nil}},
				Url:            ptr.To("http://example.org/a"),
			},
			wantErr: &model.MissingRequiredFieldError{Field: "extension[0]"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			if diff := cmp.Diff(tt.wantErr, err); diff != "" {
				t.Errorf("Build() error mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtensionsByUrl(t *testing.T) {
	a1 := mustExtension("http://example.org/a", mustCoding("s", "1"))
	b := mustExtension("http://example.org/b", nil)
	a2 := mustExtension("http://example.org/a", mustCoding("s", "2"))

	got := model.ExtensionsByUrl([]*model.Extension{a1, b, nil, a2}, "http://example.org/a")

	if len(got) != 2 || got[0] != a1 || got[1] != a2 {
		t.Errorf("ExtensionsByUrl() = %v, want [a1 a2]", got)
	}
	if got := model.ExtensionsByUrl([]*model.Extension{b}, "http://example.org/a"); len(got) != 0 {
		t.Errorf("ExtensionsByUrl() = %v, want none", got)
	}
}

func TestMetaRoundTrip(t *testing.T) {
	b := model.NewMetaBuilder()
	b.VersionId = ptr.To("2")
	b.LastUpdated = ptr.To("2024-01-02T03:04:05Z")
	b.AddProfile("http://example.org/StructureDefinition/a")
	b.AddTag(mustCoding("http://example.org/tags", "t"))
	meta, err := b.Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	again, err := meta.ToBuilder().Build()
	if err != nil {
		t.Fatalf("ToBuilder().Build() returned error: %v", err)
	}
	if !meta.Equal(again) || meta.Hash() != again.Hash() {
		t.Errorf("round trip changed the element")
	}

	// the builder must not alias the element
	b.Profile[0] = "changed"
	b.Tag[0] = mustCoding("http://example.org/tags", "other")
	if got := meta.Profile()[0]; got != "http://example.org/StructureDefinition/a" {
		t.Errorf("Profile()[0] = %q after changing the builder", got)
	}
	if code, _ := meta.Tag()[0].Code(); code != "t" {
		t.Errorf("Tag()[0] code = %q after changing the builder", code)
	}

	// neither must the returned slices
	meta.Profile()[0] = "changed"
	if got := meta.Profile()[0]; got == "changed" {
		t.Errorf("Profile() returned the internal slice")
	}
}

func TestMetaRejectsAbsentTag(t *testing.T) {
	b := model.NewMetaBuilder()
	b.AddTag(mustCoding("s", "c"), nil)

	_, err := b.Build()

	var missing *model.MissingRequiredFieldError
	if !errors.As(err, &missing) || missing.Field != "tag[1]" {
		t.Errorf("Build() = %v, want MissingRequiredFieldError for tag[1]", err)
	}
}

func TestNarrative(t *testing.T) {
	b := model.NewNarrativeBuilder()
	b.Status = ptr.To("generated")

	_, err := b.Build()
	if diff := cmp.Diff(&model.MissingRequiredFieldError{Field: "div"}, err); diff != "" {
		t.Errorf("Build() error mismatch (-want +got):\n%s", diff)
	}

	b.Div = ptr.To(`<div xmlns="http://www.w3.org/1999/xhtml">text</div>`)
	n, err := b.Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	if n.Status() != "generated" || !n.HasChildren() {
		t.Errorf("unexpected narrative status %q", n.Status())
	}
}

func TestCodingHasChildren(t *testing.T) {
	empty, err := model.NewCodingBuilder().Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	if empty.HasChildren() {
		t.Errorf("empty coding reports children")
	}

	withID, err := (&model.CodingBuilder{ElementBuilder: model.ElementBuilder{ID: ptr.To("c1")}}).Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	if !withID.HasChildren() {
		t.Errorf("coding with id reports no children")
	}
	if id, ok := withID.ID(); !ok || id != "c1" {
		t.Errorf("ID() = (%q, %v), want (c1, true)", id, ok)
	}

	selected, err := (&model.CodingBuilder{UserSelected: ptr.To(false)}).Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	if !selected.HasChildren() {
		t.Errorf("coding with userSelected=false reports no children")
	}
	if selected.Equal(empty) {
		t.Errorf("userSelected=false equals absent userSelected")
	}
}
