package generate

import (
	"slices"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

// PrimitiveGenerator emits constructors for primitives holding just a value,
// and the apd.Decimal helpers used by the Decimal primitive.
type PrimitiveGenerator struct {
	NoOpGenerator
}

func (g PrimitiveGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	if !rt.IsPrimitive {
		return false
	}
	s := rt.Structs[0]
	i := slices.IndexFunc(s.Fields, func(sf ir.StructField) bool { return sf.Name == "Value" })
	if i < 0 {
		return false
	}
	sf := s.Fields[i]

	var value *Statement
	if isDecimalValue(s, sf) {
		value = Id("cloneDecimal").Call(Id("v"))
	} else {
		value = Op("&").Id("v")
	}

	f.Commentf("New%s returns a %s holding v.", s.Name, s.MarshalName)
	f.Func().Id("New"+s.Name).Params(Id("v").Add(elemType(s, sf))).Op("*").Id(s.Name).Block(
		Return(Op("&").Id(s.Name).Values(Dict{
			Id("value"): value,
		})),
	)
	f.Line()
	return true
}

func (g PrimitiveGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	if !slices.ContainsFunc(rt, func(r ir.ResourceOrType) bool { return r.Name == "Decimal" }) {
		return
	}
	file := f("decimal_helpers", "")

	d := Op("*").Qual(apdPkg, "Decimal")

	file.Func().Id("cloneDecimal").Params(Id("d").Add(d.Clone())).Add(d.Clone()).Block(
		If(Id("d").Op("==").Nil()).Block(Return(Nil())),
		Return(New(Qual(apdPkg, "Decimal")).Dot("Set").Call(Id("d"))),
	)
	file.Line()

	file.Comment("equalDecimal compares the decimal text, so that precision is significant.")
	file.Func().Id("equalDecimal").Params(Id("a"), Id("b").Add(d.Clone())).Bool().Block(
		If(Id("a").Op("==").Nil().Op("||").Id("b").Op("==").Nil()).Block(Return(Id("a").Op("==").Id("b"))),
		Return(Id("a").Dot("String").Call().Op("==").Id("b").Dot("String").Call()),
	)
	file.Line()

	file.Func().Id("decimalText").Params(Id("d").Add(d.Clone())).Op("*").String().Block(
		If(Id("d").Op("==").Nil()).Block(Return(Nil())),
		Id("s").Op(":=").Id("d").Dot("String").Call(),
		Return(Op("&").Id("s")),
	)
}
