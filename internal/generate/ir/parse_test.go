package ir

import (
	"encoding/json"
	"os"
	"testing"

	coremodel "github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/internal/generate/model"
	"github.com/stretchr/testify/require"
)

func readBundle(t *testing.T) *model.Bundle {
	t.Helper()
	b, err := os.ReadFile("../testdata/bundle.json")
	require.NoError(t, err)
	var bundle model.Bundle
	require.NoError(t, json.Unmarshal(b, &bundle))
	return &bundle
}

func TestParse(t *testing.T) {
	require := require.New(t)

	rt, err := Parse(readBundle(t))
	require.NoError(err)
	require.Len(rt, 2)

	str := rt[0]
	require.Equal("String", str.Name)
	require.Equal("string", str.FileName)
	require.True(str.IsPrimitive)
	require.False(str.IsResource)
	require.Equal([]Struct{{
		Name:        "String",
		MarshalName: "string",
		IsPrimitive: true,
		BaseType:    "Element",
		DocComment:  "Base StructureDefinition for string Type",
		Fields: []StructField{{
			Name:          "Value",
			MarshalName:   "value",
			PossibleTypes: []FieldType{{Name: "string", Code: "string"}},
			Optional:      true,
			Cardinality:   coremodel.Cardinality{Min: 0, Max: 1},
			DocComment:    "The actual value",
		}},
	}}, str.Structs)

	patient := rt[1]
	require.Equal("Patient", patient.Name)
	require.Equal("patient", patient.FileName)
	require.True(patient.IsResource)
	require.Len(patient.Structs, 2)

	p := patient.Structs[0]
	require.True(p.IsDomainResource)
	require.Equal("DomainResource", p.BaseType)
	require.Equal("Demographics about a patient.\n\nTracking patient is the center of the healthcare process.", p.DocComment)

	var names []string
	for _, f := range p.Fields {
		names = append(names, f.MarshalName)
	}
	require.Equal([]string{"active", "deceased", "generalPractitioner", "link"}, names)

	deceased := p.Fields[1]
	require.True(deceased.Polymorph)
	require.Equal("Deceased", deceased.Name)
	require.Equal([]string{"boolean", "dateTime"}, deceased.ChoiceCodes())
	require.Equal("DateTime", deceased.PossibleTypes[1].Name)
	require.True(deceased.PossibleTypes[1].IsPrimitive)

	gp := p.Fields[2]
	require.True(gp.Multiple)
	require.True(gp.HasTargetTypes())
	require.Equal([]string{"Organization", "Practitioner"}, gp.PossibleTypes[0].TargetTypes)
	require.True(gp.Cardinality.Implied())

	link := p.Fields[3]
	require.Equal([]FieldType{{Name: "PatientLink", Code: "PatientLink"}}, link.PossibleTypes)
	require.True(link.Multiple)
	require.Equal(coremodel.Cardinality{Min: 0, Max: 3}, link.Cardinality)
	require.False(link.Cardinality.Implied())

	l := patient.Structs[1]
	require.Equal("PatientLink", l.Name)
	require.True(l.IsBackbone)
	require.False(l.IsResource)
	require.Equal("Link to another patient.", l.DocComment)
	require.Len(l.Fields, 2)

	other := l.Fields[0]
	require.True(other.Required())
	require.False(other.Multiple)
	require.Empty(other.PossibleTypes[0].TargetTypes, "Resource allows any target")
	require.False(other.HasTargetTypes())

	typ := l.Fields[1]
	require.Equal("Type", typ.Name)
	require.Equal("type", typ.MarshalName)
	require.Equal(FieldType{Name: "Code", Code: "code", IsPrimitive: true}, typ.PossibleTypes[0])
}

func TestParseFilter(t *testing.T) {
	rt, err := Parse(readBundle(t), "Patient")
	require.NoError(t, err)
	require.Len(t, rt, 1)
	require.Equal(t, "Patient", rt[0].Name)
	require.Len(t, FilterResources(rt), 1)
}

func TestParseInvalidCardinality(t *testing.T) {
	bundle := &model.Bundle{Entry: []model.BundleEntry{{Resource: &model.StructureDefinition{
		Name: "Broken",
		Kind: "complex-type",
		Type: "Broken",
		Snapshot: struct {
			Element []model.ElementDefinition `json:"element"`
		}{Element: []model.ElementDefinition{
			{Path: "Broken", Max: "*"},
			{Path: "Broken.value", Min: 2, Max: "1", Type: []model.ElementDefinitionType{{Code: "string"}}},
		}},
	}}}}

	_, err := Parse(bundle)
	require.ErrorContains(t, err, "parse Broken")
	require.ErrorContains(t, err, "Broken.value")
}

func TestMatchFieldType(t *testing.T) {
	tests := []struct {
		path string
		code string
		want FieldType
	}{
		{"boolean.value", "http://hl7.org/fhirpath/System.Boolean", FieldType{Name: "bool", Code: "bool"}},
		{"integer.value", "http://hl7.org/fhirpath/System.Integer", FieldType{Name: "int32", Code: "int32"}},
		{"integer64.value", "http://hl7.org/fhirpath/System.Integer", FieldType{Name: "int64", Code: "int64"}},
		{"positiveInt.value", "http://hl7.org/fhirpath/System.String", FieldType{Name: "uint32", Code: "uint32"}},
		{"date.value", "http://hl7.org/fhirpath/System.Date", FieldType{Name: "string", Code: "string"}},
		{"Bundle.entry.resource", "Resource", FieldType{Name: "Resource", Code: "Resource", IsNestedResource: true}},
		{"Patient.name", "HumanName", FieldType{Name: "HumanName", Code: "HumanName"}},
		{"Patient.birthDate", "date", FieldType{Name: "Date", Code: "date", IsPrimitive: true}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := matchFieldType(tt.path, model.ElementDefinitionType{Code: tt.code})
			require.Equal(t, tt.want, got)
		})
	}
}
