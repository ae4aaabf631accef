package r4_test

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/gen/r4"
	"github.com/damedic/fhir-model-go/utils/ptr"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func coding(system, code string) *model.Coding {
	return must((&model.CodingBuilder{System: ptr.To(system), Code: ptr.To(code)}).Build())
}

func concept(text string, codings ...*model.Coding) *r4.CodeableConcept {
	b := r4.NewCodeableConceptBuilder()
	b.AddCoding(codings...)
	if text != "" {
		b.Text = r4.NewString(text)
	}
	return must(b.Build())
}

func reference(literal string) *r4.Reference {
	return must((&r4.ReferenceBuilder{Reference: r4.NewString(literal)}).Build())
}

func typedReference(typ string) *r4.Reference {
	return must((&r4.ReferenceBuilder{Type: r4.NewUri(typ)}).Build())
}

func quantity(value int64, unit string) *r4.Quantity {
	return must((&r4.QuantityBuilder{
		Value: r4.NewDecimal(apd.New(value, 0)),
		Unit:  r4.NewString(unit),
	}).Build())
}

func component(text string, value r4.ObservationComponentValue) *r4.ObservationComponent {
	return must((&r4.ObservationComponentBuilder{Code: concept(text), Value: value}).Build())
}

// heartRate returns a builder for a complete observation.
func heartRate() *r4.ObservationBuilder {
	b := r4.NewObservationBuilder()
	b.ID = ptr.To("obs-1")
	b.Status = r4.NewCode("final")
	b.Code = concept("Heart rate", coding("http://loinc.org", "8867-4"))
	b.Subject = reference("Patient/p1")
	b.Effective = r4.NewDateTime("2024-03-01T10:00:00Z")
	b.Value = quantity(72, "beats/minute")
	b.AddComponent(
		component("a", r4.NewInteger(1)),
		component("b", nil),
	)
	return b
}
