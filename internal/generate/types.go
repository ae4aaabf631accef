package generate

import (
	"github.com/damedic/fhir-model-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

// TypesGenerator emits the element structs, their builders and the interfaces of polymorphic fields.
type TypesGenerator struct {
	NoOpGenerator
}

func (g TypesGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	for _, s := range rt.Structs {
		generateStruct(f, s)
		generateBuilderStruct(f, s)
		generateChoiceUnions(f, s)
	}
	return true
}

func generateStruct(f *File, s ir.Struct) {
	docComment(f.Group, s.DocComment)

	fields, _ := fieldGroup(s)
	f.Type().Id(s.Name).StructFunc(func(g *Group) {
		g.Qual(modelPkg, fields)
		for _, sf := range s.Fields {
			g.Id(privateName(sf)).Add(fieldType(s, sf))
		}
		g.Id("hashCache").Qual(modelPkg, "HashCache")
	})
	f.Line()
}

func generateBuilderStruct(f *File, s ir.Struct) {
	_, builder := fieldGroup(s)

	f.Commentf("%sBuilder stages the fields of %s.", s.Name, s.Name)
	f.Type().Id(s.Name + "Builder").StructFunc(func(g *Group) {
		g.Qual(modelPkg, builder)
		for _, sf := range s.Fields {
			docComment(g, sf.DocComment)
			g.Id(sf.Name).Add(fieldType(s, sf))
		}
	})
	f.Line()
}

func generateChoiceUnions(f *File, s ir.Struct) {
	for _, sf := range s.Fields {
		if !sf.Polymorph {
			continue
		}

		name := unionName(s, sf)
		if !closedUnion(sf) {
			f.Commentf("%s is any of %v.", name, sf.ChoiceCodes())
			f.Type().Id(name).Interface(Qual(modelPkg, "Element"))
			f.Line()
			continue
		}

		f.Commentf("%s is one of %v.", name, sf.ChoiceCodes())
		f.Type().Id(name).Interface(
			Qual(modelPkg, "Element"),
			Id("is"+name).Params(),
		)
		f.Line()
		for _, t := range sf.PossibleTypes {
			f.Func().Params(Id("r").Op("*").Id(t.Name)).Id("is" + name).Params().Block()
			f.Line()
		}
	}
}

// assertInterface emits a compile time check that a struct implements its model interface.
func assertInterface(f *File, s ir.Struct) {
	f.Var().Id("_").Qual(modelPkg, interfaceFor(s)).Op("=").Parens(Op("*").Id(s.Name)).Call(Nil())
	f.Line()
}

func typeNameLit(s ir.Struct) string {
	if s.IsBackbone || s.MarshalName == "" {
		return s.Name
	}
	return s.MarshalName
}
