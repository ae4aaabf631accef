package generate

import (
	"strings"
	"testing"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
	"github.com/damedic/fhir-model-go/model"
	"github.com/stretchr/testify/require"
)

func primitive(name, marshalName, goType string) ir.ResourceOrType {
	return ir.ResourceOrType{
		Name:        name,
		FileName:    strings.ToLower(name),
		IsPrimitive: true,
		Structs: []ir.Struct{{
			Name:        name,
			MarshalName: marshalName,
			IsPrimitive: true,
			Fields: []ir.StructField{{
				Name:          "Value",
				MarshalName:   "value",
				PossibleTypes: []ir.FieldType{{Name: goType, Code: goType}},
				Optional:      true,
				Cardinality:   model.Cardinality{Min: 0, Max: 1},
			}},
		}},
	}
}

func field(name, marshalName string, min, max int, types ...ir.FieldType) ir.StructField {
	c := model.Cardinality{Min: min, Max: max}
	return ir.StructField{
		Name:          name,
		MarshalName:   marshalName,
		PossibleTypes: types,
		Polymorph:     len(types) > 1,
		Multiple:      c.Repeated(),
		Optional:      min == 0,
		Cardinality:   c,
	}
}

func testTypes() []ir.ResourceOrType {
	str := ir.FieldType{Name: "String", Code: "string", IsPrimitive: true}
	boolean := ir.FieldType{Name: "Boolean", Code: "boolean", IsPrimitive: true}

	reference := ir.ResourceOrType{
		Name:     "Reference",
		FileName: "reference",
		Structs: []ir.Struct{{
			Name:        "Reference",
			MarshalName: "Reference",
			Fields: []ir.StructField{
				field("Reference", "reference", 0, 1, str),
				field("Type", "type", 0, 1, ir.FieldType{Name: "Uri", Code: "uri", IsPrimitive: true}),
			},
		}},
	}

	patient := ir.ResourceOrType{
		Name:       "Patient",
		FileName:   "patient",
		IsResource: true,
		Structs: []ir.Struct{
			{
				Name:             "Patient",
				MarshalName:      "Patient",
				IsResource:       true,
				IsDomainResource: true,
				DocComment:       "Demographics about a patient.",
				Fields: []ir.StructField{
					field("Active", "active", 0, 1, boolean),
					field("Deceased", "deceased", 0, 1, boolean, ir.FieldType{Name: "DateTime", Code: "dateTime", IsPrimitive: true}),
					field("GeneralPractitioner", "generalPractitioner", 0, model.Unbounded,
						ir.FieldType{Name: "Reference", Code: "Reference", TargetTypes: []string{"Organization", "Practitioner"}}),
					field("Contact", "contact", 0, 1, ir.FieldType{Name: "Extension", Code: "Extension"}, str),
					field("Focus", "focus", 0, model.Unbounded,
						ir.FieldType{Name: "Reference", Code: "Reference", TargetTypes: []string{"Patient", "Group"}}, str),
					field("Link", "link", 1, 3, ir.FieldType{Name: "PatientLink", Code: "PatientLink"}),
				},
			},
			{
				Name:        "PatientLink",
				MarshalName: "PatientLink",
				IsBackbone:  true,
				Fields: []ir.StructField{
					field("Other", "other", 1, 1, ir.FieldType{Name: "Reference", Code: "Reference", TargetTypes: []string{"Patient"}}),
				},
			},
		},
	}

	return []ir.ResourceOrType{
		primitive("Boolean", "boolean", "bool"),
		primitive("Decimal", "decimal", "string"),
		primitive("Integer", "integer", "int32"),
		reference,
		patient,
	}
}

func render(t *testing.T, name string) string {
	t.Helper()
	files := Generate("R4", "r4", testTypes(), Generators()...)
	src, err := files.Render(name)
	require.NoError(t, err)
	return src
}

func TestGenerateFiles(t *testing.T) {
	files := Generate("R4", "r4", testTypes(), Generators()...)
	require.Equal(t, []string{
		"r4/boolean",
		"r4/decimal",
		"r4/decimal_helpers",
		"r4/doc",
		"r4/integer",
		"r4/patient",
		"r4/reference",
	}, files.Names())

	_, err := files.Render("r4/missing")
	require.Error(t, err)
}

func TestGeneratePrimitive(t *testing.T) {
	src := render(t, "r4/boolean")

	for _, want := range []string{
		"// Code generated by github.com/damedic/fhir-model-go/internal/cmd/generate. DO NOT EDIT.",
		"package r4",
		"type Boolean struct {",
		"\tvalue     *bool",
		"\thashCache model.HashCache",
		"func (r *Boolean) TypeName() string {\n\treturn \"boolean\"\n}",
		"func (r *Boolean) Value() (bool, bool) {\n\treturn ptr.Deref(r.value), r.value != nil\n}",
		"func NewBoolean(v bool) *Boolean {\n\treturn &Boolean{value: &v}\n}",
		"model.AcceptValue(\"value\", r.value, v)",
		"h.OptBool(r.value)",
		"value:         ptr.Clone(b.Value),",
	} {
		require.Contains(t, src, want)
	}

	require.Contains(t, render(t, "r4/integer"), "model.HashOptInt(h, r.value)")
}

func TestGenerateDecimal(t *testing.T) {
	src := render(t, "r4/decimal")

	for _, want := range []string{
		"\tvalue     *apd.Decimal",
		"func NewDecimal(v *apd.Decimal) *Decimal {\n\treturn &Decimal{value: cloneDecimal(v)}\n}",
		"model.AcceptValue(\"value\", ptr.To(cloneDecimal(r.value)), v)",
		"equalDecimal(r.value, o.value)",
		"h.OptString(decimalText(r.value))",
	} {
		require.Contains(t, src, want)
	}

	helpers := render(t, "r4/decimal_helpers")
	require.Contains(t, helpers, "func cloneDecimal(d *apd.Decimal) *apd.Decimal {")
	require.Contains(t, helpers, "return a.String() == b.String()")
}

func TestGenerateResource(t *testing.T) {
	src := render(t, "r4/patient")

	for _, want := range []string{
		"// Demographics about a patient.\ntype Patient struct {\n\tmodel.DomainResourceFields\n",
		"var _ model.DomainResource = (*Patient)(nil)",
		"var _ model.BackboneElement = (*PatientLink)(nil)",
		"func (r *Patient) ResourceType() string {\n\treturn \"Patient\"\n}",
		"func (r *PatientLink) TypeName() string {\n\treturn \"PatientLink\"\n}",

		// closed and open choice unions
		"type PatientDeceased interface {\n\tmodel.Element\n\tisPatientDeceased()\n}",
		"func (r *DateTime) isPatientDeceased() {}",
		"type PatientContact interface {\n\tmodel.Element\n}",

		// builder
		"func (b *PatientBuilder) AddGeneralPractitioner(v ...*Reference) {",
		"if err := model.RequireNonEmpty(b.Link, \"link\"); err != nil {",
		"if err := model.RequireNoNilEntries(b.Link, \"link\"); err != nil {",
		"fields, err := b.DomainResourceBuilder.Freeze()",
		"if err := model.OptionalChoice(b.Deceased, \"deceased\", \"boolean\", \"dateTime\"); err != nil {",
		"if err := model.CheckReferenceTargetTypes(b.GeneralPractitioner, \"generalPractitioner\", \"Organization\", \"Practitioner\"); err != nil {",
		"if err := model.CheckCardinality(b.Link, \"link\", model.Cardinality{",
		"if !model.IsNil(b.Deceased) {\n\t\tr.deceased = b.Deceased\n\t}",

		// repeated choice
		"func (b *PatientBuilder) AddFocus(v ...PatientFocus) {",
		"func (r *Reference) isPatientFocus() {}",
		"if err := model.OptionalChoices(b.Focus, \"focus\", \"Reference\", \"string\"); err != nil {",
		"if err := model.CheckChoiceReferenceTargetTypes(b.Focus, \"focus\", \"Patient\", \"Group\"); err != nil {",
		"slices.Clone(b.Focus)",
		"if err := model.RequireChildren(r); err != nil {",
		"if err := model.RequireNonNil(b.Other, \"other\"); err != nil {",
		"if err := model.CheckReferenceTargetType(b.Other, \"other\", \"Patient\"); err != nil {",

		// accessors
		"func (r *Patient) GeneralPractitioner() []*Reference {\n\treturn slices.Clone(r.generalPractitioner)\n}",
		"func (r *Patient) Active() *Boolean {\n\treturn r.active\n}",

		// walking, comparing and hashing
		"r.AcceptDomainResourceFields(v)",
		"model.AcceptElements(\"generalPractitioner\", r.generalPractitioner, v)",
		"r.AcceptBackboneElementFields(v)",
		"return r.EqualDomainResourceFields(o.DomainResourceFields) &&",
		"h := model.NewHasher(\"Patient\")",
		"model.HashElements(h, r.link)",
		"return r.HasDomainResourceChildren() ||",
	} {
		require.Contains(t, src, want)
	}

	// entries of a repeated choice are never asserted to a single type
	require.NotContains(t, src, "b.Focus.(*Reference)")
	require.NotContains(t, src, "model.OptionalChoice(b.Focus")
	// optional cardinalities are enforced by the shape of the field
	require.NotContains(t, src, "model.CheckCardinality(b.GeneralPractitioner")
	// backbone elements may be empty
	require.Equal(t, 1, strings.Count(src, "model.RequireChildren"))
}

func TestGenerateLayout(t *testing.T) {
	boolean := render(t, "r4/boolean")
	require.Contains(t, boolean, "import (\n\t\"github.com/damedic/fhir-model-go/model\"\n\t\"github.com/damedic/fhir-model-go/utils/ptr\"\n)\n")
	// declarations are separated by a blank line, as gofmt leaves hand written code
	require.Contains(t, boolean, "}\n\n// NewBooleanBuilder returns an empty BooleanBuilder.\nfunc NewBooleanBuilder() *BooleanBuilder {")
	require.Contains(t, boolean, "}\n\nfunc (r *Boolean) Accept(")
	require.NotContains(t, boolean, "}\nfunc ")
	require.NotContains(t, boolean, "}\ntype ")
	require.NotContains(t, boolean, "\n\n\n")

	// a single import is not wrapped in parentheses
	require.Contains(t, render(t, "r4/reference"), "\nimport \"github.com/damedic/fhir-model-go/model\"\n\n")
	require.Contains(t, render(t, "r4/decimal_helpers"), "\nimport \"github.com/cockroachdb/apd/v3\"\n\n")
}

func TestGenerateReference(t *testing.T) {
	src := render(t, "r4/reference")

	require.Contains(t, src, "var _ model.TargetTyped = (*Reference)(nil)")
	require.Contains(t, src, "func (r *Reference) TargetType() (string, bool) {")
	require.Contains(t, src, "return model.ParseReferenceType(lit)")
	// keywords get a trailing underscore
	require.Contains(t, src, "\ttype_     *Uri")
}

func TestGeneratePackageDoc(t *testing.T) {
	src := render(t, "r4/doc")

	require.Contains(t, src, "// Package r4 provides generated models for FHIR release R4.")
	require.Contains(t, src, "// Resources: Patient.")
}

func TestPrivateName(t *testing.T) {
	tests := map[string]string{
		"active":              "active",
		"generalPractitioner": "generalPractitioner",
		"type":                "type_",
		"hashCache":           "hashCache_",
		"for":                 "for_",
	}
	for marshalName, want := range tests {
		require.Equal(t, want, privateName(ir.StructField{MarshalName: marshalName}), marshalName)
	}
}
