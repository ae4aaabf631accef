package generate

import (
	"slices"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

// ReferenceGenerator emits TargetType for the Reference data type,
// which lets builders check the target type of references.
type ReferenceGenerator struct {
	NoOpGenerator
}

func (g ReferenceGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	if rt.Name != "Reference" {
		return false
	}
	s := rt.Structs[0]
	has := func(name string) bool {
		return slices.ContainsFunc(s.Fields, func(sf ir.StructField) bool { return sf.MarshalName == name })
	}
	if !has("type") || !has("reference") {
		return false
	}

	f.Var().Id("_").Qual(modelPkg, "TargetTyped").Op("=").Parens(Op("*").Id("Reference")).Call(Nil())
	f.Line()

	f.Comment("TargetType returns the type of the referenced resource.")
	f.Comment("")
	f.Comment("The explicit type takes precedence. Otherwise the type is taken from a literal")
	f.Comment("reference like \"Patient/123\", contained and urn: references have none.")
	f.Func().Params(Id("r").Op("*").Id("Reference")).Id("TargetType").Params().Params(String(), Bool()).Block(
		If(Id("r").Op("==").Nil()).Block(Return(Lit(""), False())),
		If(Id("r").Dot("type_").Op("!=").Nil()).Block(
			If(List(Id("t"), Id("ok")).Op(":=").Id("r").Dot("type_").Dot("Value").Call(), Id("ok")).Block(
				Return(Id("t"), True()),
			),
		),
		If(Id("r").Dot("reference").Op("!=").Nil()).Block(
			If(List(Id("lit"), Id("ok")).Op(":=").Id("r").Dot("reference").Dot("Value").Call(), Id("ok")).Block(
				Return(Qual(modelPkg, "ParseReferenceType").Call(Id("lit"))),
			),
		),
		Return(Lit(""), False()),
	)
	f.Line()
	return true
}
