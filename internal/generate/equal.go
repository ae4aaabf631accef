package generate

import (
	"github.com/damedic/fhir-model-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

// EqualGenerator emits Equal and the memoized Hash.
// Both cover exactly the same fields.
type EqualGenerator struct {
	NoOpGenerator
}

func (g EqualGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	for _, s := range rt.Structs {
		implementEqual(f, s)
		implementHash(f, s)
	}
	return true
}

func implementEqual(f *File, s ir.Struct) {
	fields, _ := fieldGroup(s)

	f.Func().Params(Id("r").Op("*").Id(s.Name)).Id("Equal").Params(Id("other").Qual(modelPkg, "Element")).Bool().Block(
		List(Id("o"), Id("ok")).Op(":=").Id("other").Op(".").Parens(Op("*").Id(s.Name)),
		If(Op("!").Id("ok")).Block(Return(False())),
		If(Id("r").Op("==").Nil().Op("||").Id("o").Op("==").Nil()).Block(
			Return(Id("r").Op("==").Id("o")),
		),
		Return(
			Id("r").Dot(groupMethod(s, "Equal", "Fields")).Call(Id("o").Dot(fields)).Do(func(cond *Statement) {
				for _, sf := range s.Fields {
					cond.Op("&&").Line().Add(equalField(s, sf))
				}
			}),
		),
	)
	f.Line()
}

func equalField(s ir.Struct, sf ir.StructField) *Statement {
	a, b := Id("r").Dot(privateName(sf)), Id("o").Dot(privateName(sf))
	switch {
	case isDecimalValue(s, sf):
		return Id("equalDecimal").Call(a, b)
	case isGoValue(s, sf):
		return Qual(modelPkg, "EqualValues").Call(a, b)
	case sf.Multiple:
		return Qual(modelPkg, "EqualSlices").Call(a, b)
	default:
		return Qual(modelPkg, "Equal").Call(a, b)
	}
}

func implementHash(f *File, s ir.Struct) {
	f.Func().Params(Id("r").Op("*").Id(s.Name)).Id("Hash").Params().Uint64().Block(
		If(Id("r").Op("==").Nil()).Block(Return(Lit(0))),
		Return(Id("r").Dot("hashCache").Dot("Load").Call(
			Func().Params().Uint64().BlockFunc(func(g *Group) {
				g.Id("h").Op(":=").Qual(modelPkg, "NewHasher").Call(Lit(typeNameLit(s)))
				g.Id("r").Dot(groupMethod(s, "Hash", "Fields")).Call(Id("h"))
				for _, sf := range s.Fields {
					g.Add(hashField(s, sf))
				}
				g.Return(Id("h").Dot("Sum").Call())
			}),
		)),
	)
	f.Line()
}

func hashField(s ir.Struct, sf ir.StructField) *Statement {
	field := Id("r").Dot(privateName(sf))
	switch {
	case isDecimalValue(s, sf):
		return Id("h").Dot("OptString").Call(Id("decimalText").Call(field))
	case isGoValue(s, sf):
		switch sf.PossibleTypes[0].Name {
		case "string":
			return Id("h").Dot("OptString").Call(field)
		case "bool":
			return Id("h").Dot("OptBool").Call(field)
		default:
			return Qual(modelPkg, "HashOptInt").Call(Id("h"), field)
		}
	case sf.Multiple:
		return Qual(modelPkg, "HashElements").Call(Id("h"), field)
	default:
		return Id("h").Dot("Element").Call(field)
	}
}
