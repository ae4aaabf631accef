package generate

import (
	"github.com/damedic/fhir-model-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

// VisitorGenerator emits Accept, which walks the inherited fields
// followed by the declared fields in declaration order.
type VisitorGenerator struct {
	NoOpGenerator
}

func (g VisitorGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	for _, s := range rt.Structs {
		implementAccept(f, s)
	}
	return true
}

func implementAccept(f *File, s ir.Struct) {
	f.Func().Params(Id("r").Op("*").Id(s.Name)).Id("Accept").Params(
		Id("name").String(),
		Id("index").Int(),
		Id("v").Qual(modelPkg, "Visitor"),
	).Block(
		Qual(modelPkg, "Visit").Call(
			Id("name"), Id("index"), Id("r"), Id("v"),
			Func().Params(Id("v").Qual(modelPkg, "Visitor")).BlockFunc(func(g *Group) {
				g.Id("r").Dot(groupMethod(s, "Accept", "Fields")).Call(Id("v"))
				for _, sf := range s.Fields {
					g.Add(acceptField(s, sf))
				}
			}),
		),
	)
	f.Line()
}

func acceptField(s ir.Struct, sf ir.StructField) *Statement {
	field := Id("r").Dot(privateName(sf))
	name := Lit(sf.MarshalName)

	switch {
	case isDecimalValue(s, sf):
		// hand out a copy, apd.Decimal is mutable
		return If(field.Clone().Op("!=").Nil()).Block(
			Qual(modelPkg, "AcceptValue").Call(name, Qual(ptrPkg, "To").Call(Id("cloneDecimal").Call(field)), Id("v")),
		)
	case isGoValue(s, sf) && sf.Multiple:
		return Qual(modelPkg, "AcceptValues").Call(name, field, Id("v"))
	case isGoValue(s, sf):
		return Qual(modelPkg, "AcceptValue").Call(name, field, Id("v"))
	case sf.Multiple:
		return Qual(modelPkg, "AcceptElements").Call(name, field, Id("v"))
	default:
		return Qual(modelPkg, "AcceptElement").Call(name, field, Id("v"))
	}
}
