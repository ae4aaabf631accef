package r4_test

import (
	"errors"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/gen/r4"
	"github.com/damedic/fhir-model-go/utils/ptr"
	"github.com/google/go-cmp/cmp"
)

func TestRequiredChoiceSet(t *testing.T) {
	b := r4.NewResearchElementDefinitionCharacteristicBuilder()
	b.Definition = concept("adults")

	c, err := b.Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	if !c.HasChildren() {
		t.Errorf("HasChildren() = false, want true")
	}
	if got, ok := c.Definition().(*r4.CodeableConcept); !ok || got != b.Definition {
		t.Errorf("Definition() = %v, want the staged concept", c.Definition())
	}
}

func TestRequiredChoiceUnset(t *testing.T) {
	_, err := r4.NewResearchElementDefinitionCharacteristicBuilder().Build()

	want := &model.MissingRequiredFieldError{Field: "definition"}
	if diff := cmp.Diff(want, err); diff != "" {
		t.Errorf("Build() error mismatch (-want +got):\n%s", diff)
	}
}

func TestRequiredChoiceTypedNil(t *testing.T) {
	b := r4.NewResearchElementDefinitionCharacteristicBuilder()
	b.Definition = (*r4.Expression)(nil)

	_, err := b.Build()

	var missing *model.MissingRequiredFieldError
	if !errors.As(err, &missing) || missing.Field != "definition" {
		t.Errorf("Build() = %v, want MissingRequiredFieldError for definition", err)
	}
}

func TestBuildFailsFast(t *testing.T) {
	tests := []struct {
		name    string
		builder func() *r4.ObservationBuilder
		want    error
	}{
		{
			name:    "valid",
			builder: heartRate,
		},
		{
			name: "missing status",
			builder: func() *r4.ObservationBuilder {
				b := heartRate()
				b.Status = nil
				return b
			},
			want: &model.MissingRequiredFieldError{Field: "status"},
		},
		{
			name: "missing code",
			builder: func() *r4.ObservationBuilder {
				b := heartRate()
				b.Code = nil
				return b
			},
			want: &model.MissingRequiredFieldError{Field: "code"},
		},
		{
			name: "first violation in declaration order",
			builder: func() *r4.ObservationBuilder {
				b := heartRate()
				b.Status = nil
				b.Code = nil
				return b
			},
			want: &model.MissingRequiredFieldError{Field: "status"},
		},
		{
			name: "absent list entry",
			builder: func() *r4.ObservationBuilder {
				b := heartRate()
				b.AddCategory(concept("vital-signs"), nil)
				return b
			},
			want: &model.MissingRequiredFieldError{Field: "category[1]"},
		},
		{
			name: "absent inherited extension",
			builder: func() *r4.ObservationBuilder {
				b := heartRate()
				b.AddExtension(nil)
				return b
			},
			want: &model.MissingRequiredFieldError{Field: "extension[0]"},
		},
		{
			name: "subject of wrong type",
			builder: func() *r4.ObservationBuilder {
				b := heartRate()
				b.Subject = reference("Practitioner/pr1")
				return b
			},
			want: &model.InvalidReferenceTargetTypeError{
				Field:    "subject",
				Declared: "Practitioner",
				Allowed:  []string{"Patient", "Group", "Device", "Location"},
			},
		},
		{
			name: "member of wrong type",
			builder: func() *r4.ObservationBuilder {
				b := heartRate()
				b.AddHasMember(reference("Observation/o2"), typedReference("Patient"))
				return b
			},
			want: &model.InvalidReferenceTargetTypeError{
				Field:    "hasMember[1]",
				Declared: "Patient",
				Allowed:  []string{"Observation", "QuestionnaireResponse", "MolecularSequence"},
			},
		},
		{
			name: "required checked before references",
			builder: func() *r4.ObservationBuilder {
				b := heartRate()
				b.Subject = reference("Practitioner/pr1")
				b.Status = nil
				return b
			},
			want: &model.MissingRequiredFieldError{Field: "status"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder().Build()
			if diff := cmp.Diff(tt.want, err); diff != "" {
				t.Errorf("Build() error mismatch (-want +got):\n%s", diff)
			}
			if tt.want != nil && !errors.Is(err, model.ErrValidation) {
				t.Errorf("errors.Is(%v, ErrValidation) = false", err)
			}
		})
	}
}

func TestEmptyRequiredList(t *testing.T) {
	b := r4.NewResearchElementDefinitionBuilder()
	b.Status = r4.NewCode("active")
	b.Type = r4.NewCode("population")

	_, err := b.Build()
	if diff := cmp.Diff(&model.EmptyRequiredListError{Field: "characteristic"}, err); diff != "" {
		t.Errorf("Build() error mismatch (-want +got):\n%s", diff)
	}

	b.AddCharacteristic(must((&r4.ResearchElementDefinitionCharacteristicBuilder{
		Definition: r4.NewCanonical("http://example.org/Library/adults"),
		Exclude:    r4.NewBoolean(false),
	}).Build()))
	if _, err := b.Build(); err != nil {
		t.Errorf("Build() with a characteristic returned error: %v", err)
	}
}

func TestReferenceInChoice(t *testing.T) {
	characteristic := must((&r4.ResearchElementDefinitionCharacteristicBuilder{Definition: concept("adults")}).Build())

	tests := []struct {
		name    string
		subject r4.ResearchElementDefinitionSubject
		want    error
	}{
		{name: "concept", subject: concept("patients")},
		{name: "allowed reference", subject: reference("Group/g1")},
		{name: "untyped reference", subject: reference("#g1")},
		{
			name:    "reference of wrong type",
			subject: reference("Patient/p1"),
			want: &model.InvalidReferenceTargetTypeError{
				Field:    "subject",
				Declared: "Patient",
				Allowed:  []string{"Group"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := r4.NewResearchElementDefinitionBuilder()
			b.Status = r4.NewCode("active")
			b.Type = r4.NewCode("population")
			b.Subject = tt.subject
			b.AddCharacteristic(characteristic)

			_, err := b.Build()
			if diff := cmp.Diff(tt.want, err); diff != "" {
				t.Errorf("Build() error mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPatientReferences(t *testing.T) {
	tests := []struct {
		name         string
		organization *r4.Reference
		practitioner []*r4.Reference
		link         *r4.Reference
		wantField    string
	}{
		{name: "literal", organization: reference("Organization/o1")},
		{name: "absolute literal", organization: reference("https://example.org/fhir/Organization/o1/_history/3")},
		{name: "explicit type", organization: typedReference("Organization")},
		{name: "contained", organization: reference("#org")},
		{name: "urn", organization: reference("urn:uuid:4a1b6f0e-9c6e-4c6b-9bb1-0c8f5cb7e111")},
		{name: "wrong literal", organization: reference("Practitioner/pr1"), wantField: "managingOrganization"},
		{
			name:         "every practitioner kind",
			practitioner: []*r4.Reference{reference("Organization/o1"), reference("Practitioner/pr1"), typedReference("PractitionerRole")},
		},
		{
			name:         "wrong practitioner",
			practitioner: []*r4.Reference{reference("Practitioner/pr1"), reference("Device/d1")},
			wantField:    "generalPractitioner[1]",
		},
		{name: "link to related person", link: reference("RelatedPerson/rp1")},
		{name: "link to organization", link: reference("Organization/o1"), wantField: "other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := r4.NewPatientBuilder()
			b.Active = r4.NewBoolean(true)
			b.ManagingOrganization = tt.organization
			b.GeneralPractitioner = tt.practitioner

			var err error
			if tt.link != nil {
				lb := r4.NewPatientLinkBuilder()
				lb.Other = tt.link
				lb.Type = r4.NewCode("seealso")
				var link *r4.PatientLink
				link, err = lb.Build()
				if err == nil {
					b.AddLink(link)
				}
			}
			if err == nil {
				_, err = b.Build()
			}

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Build() returned error: %v", err)
				}
				return
			}
			var invalid *model.InvalidReferenceTargetTypeError
			if !errors.As(err, &invalid) {
				t.Fatalf("Build() = %v, want InvalidReferenceTargetTypeError", err)
			}
			if invalid.Field != tt.wantField {
				t.Errorf("field = %q, want %q", invalid.Field, tt.wantField)
			}
		})
	}
}

func TestPatientLinkCardinality(t *testing.T) {
	link := must((&r4.PatientLinkBuilder{Other: reference("Patient/p2"), Type: r4.NewCode("seealso")}).Build())

	b := r4.NewPatientBuilder()
	b.Active = r4.NewBoolean(true)
	b.AddLink(link, link, link)
	if _, err := b.Build(); err != nil {
		t.Fatalf("Build() with 3 links returned error: %v", err)
	}

	b.AddLink(link)
	p, err := b.Build()
	if p != nil {
		t.Errorf("Build() with 4 links = %v, want nil", p)
	}
	var cardinality *model.CardinalityError
	if !errors.As(err, &cardinality) {
		t.Fatalf("Build() error = %v, want CardinalityError", err)
	}
	want := &model.CardinalityError{Field: "link", Count: 4, Cardinality: model.Cardinality{Min: 0, Max: 3}}
	if diff := cmp.Diff(want, cardinality); diff != "" {
		t.Errorf("CardinalityError mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyResource(t *testing.T) {
	_, err := r4.NewPatientBuilder().Build()
	if diff := cmp.Diff(&model.EmptyResourceError{ResourceType: "Patient"}, err); diff != "" {
		t.Errorf("Build() error mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		name string
		b    *r4.PatientBuilder
	}{
		{"id", &r4.PatientBuilder{DomainResourceBuilder: model.DomainResourceBuilder{ResourceBuilder: model.ResourceBuilder{ID: ptr.To("p1")}}}},
		{"language", &r4.PatientBuilder{DomainResourceBuilder: model.DomainResourceBuilder{ResourceBuilder: model.ResourceBuilder{Language: ptr.To("de")}}}},
		{"gender", &r4.PatientBuilder{Gender: r4.NewCode("unknown")}},
		{"deceased", &r4.PatientBuilder{Deceased: r4.NewBoolean(false)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.b.Build()
			if err != nil {
				t.Fatalf("Build() returned error: %v", err)
			}
			if !p.HasChildren() {
				t.Errorf("HasChildren() = false, want true")
			}
		})
	}
}

func TestEmptyElementsAreAllowed(t *testing.T) {
	period, err := r4.NewPeriodBuilder().Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	if period.HasChildren() {
		t.Errorf("empty period reports children")
	}

	s, err := r4.NewStringBuilder().Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	if s.HasChildren() {
		t.Errorf("empty string reports children")
	}
	if _, ok := s.Value(); ok {
		t.Errorf("empty string reports a value")
	}
}

func TestHasChildren(t *testing.T) {
	tests := []struct {
		name string
		e    model.Element
		want bool
	}{
		{"false boolean", r4.NewBoolean(false), true},
		{"empty string value", r4.NewString(""), true},
		{"zero integer", r4.NewInteger(0), true},
		{"decimal", r4.NewDecimal(apd.New(0, 0)), true},
		{"empty concept", concept(""), false},
		{"concept with coding", concept("", coding("s", "c")), true},
		{"identifier with id only", must((&r4.IdentifierBuilder{ElementBuilder: model.ElementBuilder{ID: ptr.To("i1")}}).Build()), true},
		{"component without value", component("a", nil), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.HasChildren(); got != tt.want {
				t.Errorf("HasChildren() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpressionRequiresLanguage(t *testing.T) {
	b := r4.NewExpressionBuilder()
	b.Expression = r4.NewString("Patient.active")

	_, err := b.Build()
	if diff := cmp.Diff(&model.MissingRequiredFieldError{Field: "language"}, err); diff != "" {
		t.Errorf("Build() error mismatch (-want +got):\n%s", diff)
	}

	b.Language = r4.NewCode("text/fhirpath")
	expr, err := b.Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	c, err := (&r4.ResearchElementDefinitionCharacteristicBuilder{Definition: expr}).Build()
	if err != nil {
		t.Fatalf("Build() with expression definition returned error: %v", err)
	}
	if c.Definition().TypeName() != "Expression" {
		t.Errorf("Definition().TypeName() = %q, want Expression", c.Definition().TypeName())
	}
}
