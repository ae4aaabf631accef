package generate

import (
	"github.com/damedic/fhir-model-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

// ImplElementGenerator emits TypeName and HasChildren, the parts of model.Element
// that do not walk or compare fields.
type ImplElementGenerator struct {
	NoOpGenerator
}

func (g ImplElementGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	for _, s := range rt.Structs {
		assertInterface(f, s)
		implementTypeName(f, s)
		implementHasChildren(f, s)
	}
	return true
}

func implementTypeName(f *File, s ir.Struct) {
	f.Func().Params(Id("r").Op("*").Id(s.Name)).Id("TypeName").Params().String().Block(
		Return(Lit(typeNameLit(s))),
	)
	f.Line()
}

func implementHasChildren(f *File, s ir.Struct) {
	f.Func().Params(Id("r").Op("*").Id(s.Name)).Id("HasChildren").Params().Bool().BlockFunc(func(g *Group) {
		cond := Id("r").Dot(groupMethod(s, "Has", "Children")).Call()
		for _, sf := range s.Fields {
			field := Id("r").Dot(privateName(sf))
			if sf.Multiple {
				cond.Op("||").Line().Len(field).Op(">").Lit(0)
			} else {
				cond.Op("||").Line().Add(field).Op("!=").Nil()
			}
		}
		g.Return(cond)
	})
	f.Line()
}
