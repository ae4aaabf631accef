package generate

import (
	"github.com/damedic/fhir-model-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

// BuilderGenerator emits the builder factory, append helpers, Build and ToBuilder.
//
// Build checks, in this order: required fields and absent entries of repeated fields,
// the inherited fields, choice types, reference target types, cardinalities and
// finally, for resources, that the resource is not empty.
type BuilderGenerator struct {
	NoOpGenerator
}

func (g BuilderGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	for _, s := range rt.Structs {
		generateNewBuilder(f, s)
		generateAddFuncs(f, s)
		generateBuild(f, s)
		generateToBuilder(f, s)
	}
	return true
}

func generateNewBuilder(f *File, s ir.Struct) {
	f.Commentf("New%sBuilder returns an empty %sBuilder.", s.Name, s.Name)
	f.Func().Id("New" + s.Name + "Builder").Params().Op("*").Id(s.Name + "Builder").Block(
		Return(Op("&").Id(s.Name + "Builder").Values()),
	)
	f.Line()
}

func generateAddFuncs(f *File, s ir.Struct) {
	for _, sf := range s.Fields {
		if !sf.Multiple {
			continue
		}
		f.Commentf("Add%s appends to %s.", sf.Name, sf.Name)
		f.Func().Params(Id("b").Op("*").Id(s.Name+"Builder")).Id("Add"+sf.Name).
			Params(Id("v").Op("...").Add(elemType(s, sf))).Block(
			Id("b").Dot(sf.Name).Op("=").Append(Id("b").Dot(sf.Name), Id("v").Op("...")),
		)
		f.Line()
	}
}

func returnOnErr(call *Statement) *Statement {
	return If(Err().Op(":=").Add(call), Err().Op("!=").Nil()).Block(
		Return(Nil(), Err()),
	)
}

func generateBuild(f *File, s ir.Struct) {
	fields, builder := fieldGroup(s)

	f.Commentf("Build validates the staged fields and returns the %s.", s.Name)
	f.Func().Params(Id("b").Op("*").Id(s.Name+"Builder")).Id("Build").Params().
		Params(Op("*").Id(s.Name), Error()).BlockFunc(func(g *Group) {
		// required fields and absent entries
		for _, sf := range s.Fields {
			field := Id("b").Dot(sf.Name)
			switch {
			case sf.Multiple:
				if sf.Required() {
					g.Add(returnOnErr(Qual(modelPkg, "RequireNonEmpty").Call(field, Lit(sf.MarshalName))))
				}
				g.Add(returnOnErr(Qual(modelPkg, "RequireNoNilEntries").Call(field.Clone(), Lit(sf.MarshalName))))
			case sf.Required():
				g.Add(returnOnErr(Qual(modelPkg, "RequireNonNil").Call(field, Lit(sf.MarshalName))))
			}
		}

		g.List(Id("fields"), Err()).Op(":=").Id("b").Dot(builder).Dot("Freeze").Call()
		g.If(Err().Op("!=").Nil()).Block(
			Return(Nil(), Err()),
		)

		// choice types, a required repeated field is already known to be non-empty
		for _, sf := range s.Fields {
			if !sf.Polymorph {
				continue
			}
			check := "OptionalChoice"
			switch {
			case sf.Multiple:
				check = "OptionalChoices"
			case sf.Required():
				check = "RequireChoice"
			}
			g.Add(returnOnErr(Qual(modelPkg, check).Call(
				append([]Code{Id("b").Dot(sf.Name), Lit(sf.MarshalName)}, stringLits(sf.ChoiceCodes())...)...,
			)))
		}

		// reference target types
		for _, sf := range s.Fields {
			if !sf.HasTargetTypes() {
				continue
			}
			switch {
			case sf.Polymorph && sf.Multiple:
				for _, t := range sf.PossibleTypes {
					if !t.IsReference() || len(t.TargetTypes) == 0 {
						continue
					}
					g.Add(returnOnErr(Qual(modelPkg, "CheckChoiceReferenceTargetTypes").Call(
						append([]Code{Id("b").Dot(sf.Name), Lit(sf.MarshalName)}, stringLits(t.TargetTypes)...)...,
					)))
				}
			case sf.Polymorph:
				for _, t := range sf.PossibleTypes {
					if !t.IsReference() || len(t.TargetTypes) == 0 {
						continue
					}
					g.If(List(Id("ref"), Id("ok")).Op(":=").Id("b").Dot(sf.Name).Op(".").Parens(Op("*").Id("Reference")), Id("ok")).Block(
						returnOnErr(Qual(modelPkg, "CheckReferenceTargetType").Call(
							append([]Code{Id("ref"), Lit(sf.MarshalName)}, stringLits(t.TargetTypes)...)...,
						)),
					)
				}
			case sf.Multiple:
				g.Add(returnOnErr(Qual(modelPkg, "CheckReferenceTargetTypes").Call(
					append([]Code{Id("b").Dot(sf.Name), Lit(sf.MarshalName)}, stringLits(sf.PossibleTypes[0].TargetTypes)...)...,
				)))
			default:
				g.Add(returnOnErr(Qual(modelPkg, "CheckReferenceTargetType").Call(
					append([]Code{Id("b").Dot(sf.Name), Lit(sf.MarshalName)}, stringLits(sf.PossibleTypes[0].TargetTypes)...)...,
				)))
			}
		}

		// explicitly declared cardinalities
		for _, sf := range s.Fields {
			if !sf.Multiple || sf.Cardinality.Implied() {
				continue
			}
			g.Add(returnOnErr(Qual(modelPkg, "CheckCardinality").Call(
				Id("b").Dot(sf.Name),
				Lit(sf.MarshalName),
				Qual(modelPkg, "Cardinality").Values(Dict{
					Id("Min"): Lit(sf.Cardinality.Min),
					Id("Max"): Lit(sf.Cardinality.Max),
				}),
			)))
		}

		g.Id("r").Op(":=").Op("&").Id(s.Name).Values(DictFunc(func(d Dict) {
			d[Id(fields)] = Id("fields")
			for _, sf := range s.Fields {
				if sf.Polymorph && !sf.Multiple {
					continue
				}
				d[Id(privateName(sf))] = copyValue(s, sf, Id("b").Dot(sf.Name))
			}
		}))
		for _, sf := range s.Fields {
			if !sf.Polymorph || sf.Multiple {
				continue
			}
			g.If(Op("!").Qual(modelPkg, "IsNil").Call(Id("b").Dot(sf.Name))).Block(
				Id("r").Dot(privateName(sf)).Op("=").Id("b").Dot(sf.Name),
			)
		}

		if s.IsResource {
			g.Add(returnOnErr(Qual(modelPkg, "RequireChildren").Call(Id("r"))))
		}
		g.Return(Id("r"), Nil())
	})
	f.Line()
}

// copyValue returns an expression copying a field value, so that builder and element never share storage.
func copyValue(s ir.Struct, sf ir.StructField, v *Statement) *Statement {
	switch {
	case sf.Multiple:
		return Qual("slices", "Clone").Call(v)
	case isDecimalValue(s, sf):
		return Id("cloneDecimal").Call(v)
	case isGoValue(s, sf):
		return Qual(ptrPkg, "Clone").Call(v)
	default:
		return v
	}
}

func generateToBuilder(f *File, s ir.Struct) {
	fields, builder := fieldGroup(s)

	f.Comment("ToBuilder returns a builder holding copies of the fields.")
	f.Func().Params(Id("r").Op("*").Id(s.Name)).Id("ToBuilder").Params().Op("*").Id(s.Name + "Builder").Block(
		Return(Op("&").Id(s.Name + "Builder").Values(DictFunc(func(d Dict) {
			d[Id(builder)] = Id("r").Dot(fields).Dot("ToBuilder").Call()
			for _, sf := range s.Fields {
				d[Id(sf.Name)] = copyValue(s, sf, Id("r").Dot(privateName(sf)))
			}
		}))),
	)
	f.Line()
}
